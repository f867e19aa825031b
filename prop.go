// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package prop composes propositional expressions under three valued
// (Kleene) truth.
//
// A Prop is an immutable value holding a rendered name, a z.Truth and
// a z.Origin.  Atomic propositions are made with New; the connective
// methods Not, And, Or, Xor, Implies and Iff each return a new Prop
// and never modify their operands, so expressions compose by plain
// function composition:
//
//  p := prop.New("p", z.Unknown)
//  q := prop.New("q", z.True)
//  e := p.Or(q).Iff(p.Implies(q.Not()))
//
// Names of derived propositions parenthesize an operand exactly when
// the operand's connective binds strictly looser than the one being
// applied.  Iff always parenthesizes both operands.
//
// Two propositions with equal names are unrelated values; no variable
// unification is done.
package prop

import (
	"fmt"

	"github.com/irifrance/prop/z"
)

// Type Prop is a proposition.  The zero value is an atomic
// proposition with empty name and unknown truth.
type Prop struct {
	name   string
	truth  z.Truth
	origin z.Origin
}

// New creates an atomic proposition.  A truth outside of the three
// z.Truth states is taken as z.Unknown.
func New(name string, t z.Truth) Prop {
	if !t.Valid() {
		t = z.Unknown
	}
	return Prop{name: name, truth: t, origin: z.Atomic}
}

// Name returns the rendered name of p.
func (p Prop) Name() string {
	return p.name
}

// Truth returns the truth of p.
func (p Prop) Truth() z.Truth {
	return p.truth
}

// Origin returns the origin of p.
func (p Prop) Origin() z.Origin {
	return p.origin
}

// Render returns the name of p as an operand of c: parenthesized iff
// p was derived from a connective binding strictly looser than c.
func (p Prop) Render(c z.Conn) string {
	if p.origin.Looser(c) {
		return "(" + p.name + ")"
	}
	return p.name
}

// IsAxiom returns whether p is atomic.
func (p Prop) IsAxiom() bool {
	return p.origin.IsAtomic()
}

// IsTautology returns whether p is definitely true.
func (p Prop) IsTautology() bool {
	return p.truth == z.True
}

// IsContradiction returns whether p is definitely false.
func (p Prop) IsContradiction() bool {
	return p.truth == z.False
}

func (p Prop) String() string {
	return p.name
}

// GoString implements fmt.GoStringer, for %#v.
func (p Prop) GoString() string {
	return fmt.Sprintf("prop.Prop{Name:%q, Truth:%s, Origin:%s}", p.name, p.truth, p.origin)
}

// Type Dump is a plain view of a Prop for diagnostic output.
type Dump struct {
	Name          string   `json:"name" yaml:"name"`
	Truth         z.Truth  `json:"truth" yaml:"truth"`
	Origin        z.Origin `json:"origin" yaml:"origin"`
	Axiom         bool     `json:"axiom" yaml:"axiom"`
	Tautology     bool     `json:"tautology" yaml:"tautology"`
	Contradiction bool     `json:"contradiction" yaml:"contradiction"`
}

// Dump returns the diagnostic view of p.
func (p Prop) Dump() Dump {
	return Dump{
		Name:          p.name,
		Truth:         p.truth,
		Origin:        p.origin,
		Axiom:         p.IsAxiom(),
		Tautology:     p.IsTautology(),
		Contradiction: p.IsContradiction()}
}
