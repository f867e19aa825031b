// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"github.com/irifrance/prop"
	"github.com/irifrance/prop/z"
)

// Type Row is one line of a truth table.  For unary connectives B is
// z.Unknown and unused.
type Row struct {
	A, B z.Truth
	G    z.Truth
	Name string
}

// Table returns the truth table of c, with operands named "a" and "b".
// Rows follow the order of z.Truths, with a varying slowest.  Table
// has 3 rows for z.Not and 9 otherwise.
func Table(c z.Conn) []Row {
	if c.Arity() == 1 {
		rows := make([]Row, 0, len(z.Truths))
		for _, a := range z.Truths {
			g := prop.Apply(c, prop.New("a", a))
			rows = append(rows, Row{A: a, G: g.Truth(), Name: g.Name()})
		}
		return rows
	}
	rows := make([]Row, 0, len(z.Truths)*len(z.Truths))
	for _, a := range z.Truths {
		for _, b := range z.Truths {
			g := prop.Apply(c, prop.New("a", a), prop.New("b", b))
			rows = append(rows, Row{A: a, B: b, G: g.Truth(), Name: g.Name()})
		}
	}
	return rows
}

// Eval returns the truth of c applied to ts.
func Eval(c z.Conn, ts ...z.Truth) z.Truth {
	ps := make([]prop.Prop, len(ts))
	for i, t := range ts {
		ps[i] = prop.New("", t)
	}
	return prop.Apply(c, ps...).Truth()
}

// Classical returns the two valued boolean function which c agrees
// with on definite inputs.
func Classical(c z.Conn) func(a, b bool) bool {
	switch c {
	case z.Not:
		return func(a, _ bool) bool { return !a }
	case z.And:
		return func(a, b bool) bool { return a && b }
	case z.Or:
		return func(a, b bool) bool { return a || b }
	case z.Xor:
		return func(a, b bool) bool { return a != b }
	case z.Implies:
		return func(a, b bool) bool { return a || !b }
	case z.Iff:
		return func(a, b bool) bool { return a == b }
	}
	panic("logic: invalid connective " + c.String())
}

// IsClassical returns whether c restricted to definite inputs
// coincides with Classical(c) and yields definite results.
func IsClassical(c z.Conn) bool {
	f := Classical(c)
	for _, r := range Table(c) {
		a, aok := r.A.Bool()
		b, bok := r.B.Bool()
		if !aok || (c.Arity() == 2 && !bok) {
			continue
		}
		g, gok := r.G.Bool()
		if !gok || g != f(a, b) {
			return false
		}
	}
	return true
}

// IsMonotone returns whether refining an unknown input of c to a
// definite value never changes a definite result of c.  Kleene
// connectives are all monotone in this sense.
func IsMonotone(c z.Conn) bool {
	for _, r := range Table(c) {
		if !r.G.IsDefinite() {
			continue
		}
		for _, a := range refine(r.A) {
			bs := []z.Truth{r.B}
			if c.Arity() == 2 {
				bs = refine(r.B)
			}
			for _, b := range bs {
				var g z.Truth
				if c.Arity() == 1 {
					g = Eval(c, a)
				} else {
					g = Eval(c, a, b)
				}
				if g != r.G {
					return false
				}
			}
		}
	}
	return true
}

func refine(t z.Truth) []z.Truth {
	if t.IsDefinite() {
		return []z.Truth{t}
	}
	return []z.Truth{z.True, z.False, z.Unknown}
}
