// SPDX-License-Identifier: MIT

package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simkit/gate"
)

// Operation name constants for error wrapping.
const (
	opLoad      = "Load"
	opThreshold = "Threshold"
	opNewGate   = "NewGate"
)

//go:embed default.yaml
var defaultYAML []byte

var validate = validator.New()

// Simulation is one catalog entry.
type Simulation struct {
	ID                   string      `yaml:"id" validate:"required"`
	Title                string      `yaml:"title" validate:"required"`
	Component            string      `yaml:"component" validate:"required,oneof=function riemann lp matrix vector cplx stats trig"`
	ExplorationThreshold int         `yaml:"explorationThreshold" validate:"gte=1"`
	QuizQuestions        []yaml.Node `yaml:"quizQuestions"`
}

type document struct {
	Simulations []Simulation `yaml:"simulations" validate:"required,min=1,unique=ID,dive"`
}

// Catalog is an immutable, validated set of simulations.
type Catalog struct {
	byID  map[string]Simulation
	order []string
}

// Load decodes and validates a catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, catalogErrorf(opLoad, fmt.Errorf("%w: empty document", ErrDecode))
		}
		return nil, catalogErrorf(opLoad, fmt.Errorf("%w: %v", ErrDecode, err))
	}
	if err := validate.Struct(doc); err != nil {
		return nil, catalogErrorf(opLoad, fmt.Errorf("%w: %v", ErrInvalid, err))
	}

	c := &Catalog{byID: make(map[string]Simulation, len(doc.Simulations))}
	for _, s := range doc.Simulations {
		c.byID[s.ID] = s
		c.order = append(c.order, s.ID)
	}

	return c, nil
}

// Default returns the embedded catalog. It panics if the embedded file is
// invalid, which is a build defect.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(defaultYAML))
	if err != nil {
		panic(err)
	}

	return c
}

// IDs returns simulation ids in document order.
func (c *Catalog) IDs() []string { return append([]string(nil), c.order...) }

// Len returns the number of simulations.
func (c *Catalog) Len() int { return len(c.order) }

// Lookup returns the simulation with id.
func (c *Catalog) Lookup(id string) (Simulation, bool) {
	s, ok := c.byID[id]

	return s, ok
}

// ByComponent returns the ids of every simulation backed by component,
// sorted.
func (c *Catalog) ByComponent(component string) []string {
	var out []string
	for id, s := range c.byID {
		if s.Component == component {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// Threshold returns the exploration threshold for id.
func (c *Catalog) Threshold(id string) (int, error) {
	s, ok := c.byID[id]
	if !ok {
		return 0, fmt.Errorf("%s: %q: %w", opThreshold, id, ErrNotFound)
	}

	return s.ExplorationThreshold, nil
}

// NewGate returns a fresh progression gate for id using its threshold.
func (c *Catalog) NewGate(id string, opts ...gate.Option) (*gate.Gate, error) {
	th, err := c.Threshold(id)
	if err != nil {
		return nil, catalogErrorf(opNewGate, err)
	}

	return gate.New(th, opts...)
}
