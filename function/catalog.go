// SPDX-License-Identifier: MIT
// Package: simkit/function
//
// catalog.go - the static (f, f′, F) table.
//
// Contract:
//   - Every ID constant between idFirst and idLast has exactly one entry.
//   - f′ is the exact symbolic derivative, F an exact antiderivative (F′ = f).
//   - Entries are pure; the table is never mutated after init.

package function

import "math"

// Family groups catalog entries for menus.
type Family int

const (
	// Polynomial functions: x, x², x³, x³−3x.
	Polynomial Family = iota
	// Trigonometric functions: sin, cos.
	Trigonometric
	// Exponential functions: eˣ, e⁻ˣ.
	Exponential
)

// String returns the lower-case family name.
func (f Family) String() string {
	switch f {
	case Polynomial:
		return "polynomial"
	case Trigonometric:
		return "trigonometric"
	case Exponential:
		return "exponential"
	default:
		return "unknown"
	}
}

// ID identifies one catalog function. The zero value is not a valid ID.
type ID int

const (
	idInvalid ID = iota
	// Linear is f(x) = x.
	Linear
	// Square is f(x) = x².
	Square
	// Cube is f(x) = x³.
	Cube
	// CubicWave is f(x) = x³ − 3x.
	CubicWave
	// Sine is f(x) = sin x.
	Sine
	// Cosine is f(x) = cos x.
	Cosine
	// Exp is f(x) = eˣ.
	Exp
	// ExpDecay is f(x) = e⁻ˣ.
	ExpDecay
	idEnd
)

type entry struct {
	name   string // expression id used by the catalog collaborator
	label  string // human-readable expression
	family Family
	f      func(float64) float64
	df     func(float64) float64
	F      func(float64) float64
}

var table = [idEnd]entry{
	Linear: {
		name: "linear", label: "x", family: Polynomial,
		f:  func(x float64) float64 { return x },
		df: func(float64) float64 { return 1 },
		F:  func(x float64) float64 { return x * x / 2 },
	},
	Square: {
		name: "square", label: "x²", family: Polynomial,
		f:  func(x float64) float64 { return x * x },
		df: func(x float64) float64 { return 2 * x },
		F:  func(x float64) float64 { return x * x * x / 3 },
	},
	Cube: {
		name: "cube", label: "x³", family: Polynomial,
		f:  func(x float64) float64 { return x * x * x },
		df: func(x float64) float64 { return 3 * x * x },
		F:  func(x float64) float64 { return x * x * x * x / 4 },
	},
	CubicWave: {
		name: "cubic-wave", label: "x³ − 3x", family: Polynomial,
		f:  func(x float64) float64 { return x*x*x - 3*x },
		df: func(x float64) float64 { return 3*x*x - 3 },
		F:  func(x float64) float64 { return x*x*x*x/4 - 1.5*x*x },
	},
	Sine: {
		name: "sin", label: "sin x", family: Trigonometric,
		f:  math.Sin,
		df: math.Cos,
		F:  func(x float64) float64 { return -math.Cos(x) },
	},
	Cosine: {
		name: "cos", label: "cos x", family: Trigonometric,
		f:  math.Cos,
		df: func(x float64) float64 { return -math.Sin(x) },
		F:  math.Sin,
	},
	Exp: {
		name: "exp", label: "eˣ", family: Exponential,
		f:  math.Exp,
		df: math.Exp,
		F:  math.Exp,
	},
	ExpDecay: {
		name: "exp-decay", label: "e⁻ˣ", family: Exponential,
		f:  func(x float64) float64 { return math.Exp(-x) },
		df: func(x float64) float64 { return -math.Exp(-x) },
		F:  func(x float64) float64 { return -math.Exp(-x) },
	},
}

// Valid reports whether id names a catalog entry.
func (id ID) Valid() bool { return id > idInvalid && id < idEnd }

// String returns the expression id, or "unknown" for invalid IDs.
func (id ID) String() string {
	if !id.Valid() {
		return "unknown"
	}

	return table[id].name
}

// Label returns the human-readable expression, e.g. "x³ − 3x".
func (id ID) Label() string {
	if !id.Valid() {
		return ""
	}

	return table[id].label
}

// Family returns the family of id. Invalid IDs report -1.
func (id ID) Family() Family {
	if !id.Valid() {
		return Family(-1)
	}

	return table[id].family
}

// Funcs returns f and its antiderivative F for id. ok is false for invalid
// IDs, which is the only failure Apply and Antiderivative report.
func (id ID) Funcs() (f, F func(float64) float64, ok bool) {
	if !id.Valid() {
		return nil, nil, false
	}

	return table[id].f, table[id].F, true
}

// All returns every catalog ID in declaration order.
func All() []ID {
	out := make([]ID, 0, idEnd-1)
	for id := idInvalid + 1; id < idEnd; id++ {
		out = append(out, id)
	}

	return out
}

// ByFamily returns the catalog IDs of family fam in declaration order.
func ByFamily(fam Family) []ID {
	var out []ID
	for _, id := range All() {
		if table[id].family == fam {
			out = append(out, id)
		}
	}

	return out
}

// Lookup maps an expression id such as "square" or "sin" to its ID.
func Lookup(name string) (ID, error) {
	for _, id := range All() {
		if table[id].name == name {
			return id, nil
		}
	}

	return idInvalid, functionErrorf("Lookup("+name+")", ErrNotFound)
}
