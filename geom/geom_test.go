// SPDX-License-Identifier: MIT

package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simkit/geom"
)

// TestSortByAngle_SquareIsCCW shuffles the unit square and expects a CCW
// simple polygon starting from the vertex with the smallest polar angle.
func TestSortByAngle_SquareIsCCW(t *testing.T) {
	pts := []geom.Point{{1, 1}, {0, 0}, {0, 1}, {1, 0}}
	geom.SortByAngle(pts)

	require.Equal(t, []geom.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, pts)
	require.InDelta(t, 1.0, geom.Polygon(pts).Area(), 1e-12)
}

func TestDedupe_KeepsFirst(t *testing.T) {
	pts := []geom.Point{{2, 4}, {2.001, 4}, {0, 0}, {2, 3.999}}
	got := geom.Dedupe(pts, 1e-2)
	require.Equal(t, []geom.Point{{2, 4}, {0, 0}}, got)
}

func TestCentroid(t *testing.T) {
	require.Equal(t, geom.Point{}, geom.Centroid(nil))
	require.Equal(t, geom.Point{X: 1, Y: 2}, geom.Centroid([]geom.Point{{0, 0}, {2, 4}}))
}

func TestBounds(t *testing.T) {
	b := geom.Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 5}
	require.True(t, b.Valid())
	require.True(t, b.Contains(geom.Point{X: 10.005, Y: 5}, 1e-2))
	require.False(t, b.Contains(geom.Point{X: 11, Y: 1}, 1e-2))

	require.False(t, geom.Bounds{MinX: 1, MaxX: 0}.Valid())
	require.False(t, geom.Bounds{MaxX: math.Inf(1)}.Valid())
}

func TestPolygon_ClosedAndArea(t *testing.T) {
	tri := geom.Polygon{{0, 0}, {0, 2}, {2, 0}} // clockwise
	require.InDelta(t, -2.0, tri.Area(), 1e-12)
	require.Equal(t, geom.Polyline{{0, 0}, {0, 2}, {2, 0}, {0, 0}}, tri.Closed())
	require.Nil(t, geom.Polygon(nil).Closed())
}

func TestPoint_Finite(t *testing.T) {
	require.True(t, geom.Point{X: 1, Y: -1}.Finite())
	require.False(t, geom.Point{X: math.NaN()}.Finite())
	require.InDelta(t, 5.0, geom.Point{}.Dist(geom.Point{X: 3, Y: 4}), 1e-12)
}
