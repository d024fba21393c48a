// SPDX-License-Identifier: MIT

package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simkit/catalog"
	"github.com/katalvlaran/simkit/gate"
)

func TestDefaultCatalog(t *testing.T) {
	c := catalog.Default()
	assert.Equal(t, 9, c.Len())

	th, err := c.Threshold("riemann-sums")
	require.NoError(t, err)
	assert.Equal(t, 4, th)

	sim, ok := c.Lookup("unit-circle")
	require.True(t, ok)
	assert.Equal(t, "trig", sim.Component)
	require.Len(t, sim.QuizQuestions, 1)

	var q struct {
		Prompt string `yaml:"prompt"`
		Answer int    `yaml:"answer"`
	}
	require.NoError(t, sim.QuizQuestions[0].Decode(&q))
	assert.Equal(t, 2, q.Answer)
	assert.Contains(t, q.Prompt, "tan")

	assert.Equal(t, []string{"derivative-explorer", "exponential-growth"}, c.ByComponent("function"))
	assert.Equal(t, "derivative-explorer", c.IDs()[0])
}

func TestUnknownID(t *testing.T) {
	c := catalog.Default()
	_, err := c.Threshold("nope")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	_, err = c.NewGate("nope")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestNewGateUsesThreshold(t *testing.T) {
	c := catalog.Default()
	g, err := c.NewGate("descriptive-statistics")
	require.NoError(t, err)
	defer g.Close()

	snap := g.Snapshot()
	assert.Equal(t, gate.Exploring, snap.State)
	assert.Equal(t, 5, snap.Threshold)
}

func TestLoadRejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", catalog.ErrDecode},
		{"not yaml", "simulations: [", catalog.ErrDecode},
		{"unknown field", `
simulations:
  - id: a
    title: A
    component: lp
    explorationThreshold: 1
    colour: red
`, catalog.ErrDecode},
		{"no simulations", "simulations: []", catalog.ErrInvalid},
		{"zero threshold", `
simulations:
  - id: a
    title: A
    component: lp
    explorationThreshold: 0
`, catalog.ErrInvalid},
		{"duplicate id", `
simulations:
  - id: a
    title: A
    component: lp
    explorationThreshold: 1
  - id: a
    title: B
    component: trig
    explorationThreshold: 2
`, catalog.ErrInvalid},
		{"unknown component", `
simulations:
  - id: a
    title: A
    component: geometry
    explorationThreshold: 1
`, catalog.ErrInvalid},
		{"missing title", `
simulations:
  - id: a
    component: lp
    explorationThreshold: 1
`, catalog.ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadPassesQuizThrough(t *testing.T) {
	doc := `
simulations:
  - id: custom
    title: Custom
    component: vector
    explorationThreshold: 2
    quizQuestions:
      - {anything: [1, 2, 3], nested: {deep: true}}
      - just a string
`
	c, err := catalog.Load(strings.NewReader(doc))
	require.NoError(t, err)
	sim, ok := c.Lookup("custom")
	require.True(t, ok)
	require.Len(t, sim.QuizQuestions, 2)
	assert.Equal(t, "just a string", sim.QuizQuestions[1].Value)
}
