// SPDX-License-Identifier: MIT

package matrix

import (
	"sort"

	"github.com/katalvlaran/simkit/geom"
)

var presets = map[string]Matrix2x2{
	"identity":  {A: 1, D: 1},
	"rotate90":  {B: -1, C: 1},
	"rotate180": {A: -1, D: -1},
	"rotate270": {B: 1, C: -1},
	"reflect-x": {A: 1, D: -1},
	"reflect-y": {A: -1, D: 1},
	"scale2":    {A: 2, D: 2},
	"shear-x":   {A: 1, B: 1, D: 1},
	"shear-y":   {A: 1, C: 1, D: 1},
	"project-x": {A: 1},
}

// Preset returns the named starting matrix.
func Preset(name string) (Matrix2x2, error) {
	m, ok := presets[name]
	if !ok {
		return Matrix2x2{}, matrixErrorf(opPreset+"("+name+")", ErrNotFound)
	}

	return m, nil
}

// PresetNames lists the preset identifiers in lexical order.
func PresetNames() []string {
	out := make([]string, 0, len(presets))
	for k := range presets {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// UnitSquare returns the CCW unit square, the default shape of the
// transformation playground.
func UnitSquare() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}
