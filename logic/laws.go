// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"fmt"

	"github.com/irifrance/prop"
	"github.com/irifrance/prop/z"
)

// Type Law is an identity between two expressions over the atoms a and
// b.  The law holds if both sides have the same truth for every
// assignment of truth states to a and b, optionally restricted to
// definite assignments.
type Law struct {
	Name string
	// Definite restricts the check to assignments of True and False.
	Definite bool
	Lhs, Rhs func(a, b prop.Prop) prop.Prop
}

// Type Counter is an assignment under which a law fails.
type Counter struct {
	A, B     z.Truth
	Lhs, Rhs prop.Prop
}

func (c Counter) String() string {
	return fmt.Sprintf("a=%s b=%s: %s is %s, %s is %s",
		c.A, c.B, c.Lhs.Name(), c.Lhs.Truth(), c.Rhs.Name(), c.Rhs.Truth())
}

// Check evaluates l over all assignments, returning true if it holds
// and otherwise false with the first failing assignment.
func (l *Law) Check() (bool, Counter) {
	for _, ta := range z.Truths {
		for _, tb := range z.Truths {
			if l.Definite && !(ta.IsDefinite() && tb.IsDefinite()) {
				continue
			}
			a, b := prop.New("a", ta), prop.New("b", tb)
			lhs, rhs := l.Lhs(a, b), l.Rhs(a, b)
			if lhs.Truth() != rhs.Truth() {
				return false, Counter{A: ta, B: tb, Lhs: lhs, Rhs: rhs}
			}
		}
	}
	return true, Counter{}
}

func constant(t z.Truth) func(a, b prop.Prop) prop.Prop {
	return func(a, b prop.Prop) prop.Prop {
		return prop.New(t.Letter(), t)
	}
}

// Laws returns the standard laws.  Under three valued truth some of
// them fail, notably excluded middle and non-contradiction when a is
// unknown.
func Laws() []*Law {
	return []*Law{
		{Name: "and commutes",
			Lhs: func(a, b prop.Prop) prop.Prop { return a.And(b) },
			Rhs: func(a, b prop.Prop) prop.Prop { return b.And(a) }},
		{Name: "or commutes",
			Lhs: func(a, b prop.Prop) prop.Prop { return a.Or(b) },
			Rhs: func(a, b prop.Prop) prop.Prop { return b.Or(a) }},
		{Name: "xor commutes",
			Lhs: func(a, b prop.Prop) prop.Prop { return a.Xor(b) },
			Rhs: func(a, b prop.Prop) prop.Prop { return b.Xor(a) }},
		{Name: "iff commutes",
			Lhs: func(a, b prop.Prop) prop.Prop { return a.Iff(b) },
			Rhs: func(a, b prop.Prop) prop.Prop { return b.Iff(a) }},
		{Name: "double negation",
			Lhs: func(a, b prop.Prop) prop.Prop { return a.Not().Not() },
			Rhs: func(a, b prop.Prop) prop.Prop { return a }},
		{Name: "de morgan and",
			Lhs: func(a, b prop.Prop) prop.Prop { return a.And(b).Not() },
			Rhs: func(a, b prop.Prop) prop.Prop { return a.Not().Or(b.Not()) }},
		{Name: "de morgan or",
			Lhs: func(a, b prop.Prop) prop.Prop { return a.Or(b).Not() },
			Rhs: func(a, b prop.Prop) prop.Prop { return a.Not().And(b.Not()) }},
		{Name: "xor self cancels", Definite: true,
			Lhs: func(a, b prop.Prop) prop.Prop { return a.Xor(a) },
			Rhs: constant(z.False)},
		{Name: "iff is not xor",
			Lhs: func(a, b prop.Prop) prop.Prop { return a.Iff(b) },
			Rhs: func(a, b prop.Prop) prop.Prop { return a.Xor(b).Not() }},
		{Name: "implies is converse",
			Lhs: func(a, b prop.Prop) prop.Prop { return a.Implies(b) },
			Rhs: func(a, b prop.Prop) prop.Prop { return b.Not().Or(a) }},
		{Name: "excluded middle",
			Lhs: func(a, b prop.Prop) prop.Prop { return a.Or(a.Not()) },
			Rhs: constant(z.True)},
		{Name: "non-contradiction",
			Lhs: func(a, b prop.Prop) prop.Prop { return a.And(a.Not()) },
			Rhs: constant(z.False)}}
}
