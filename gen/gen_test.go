// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"
	"testing"

	"github.com/irifrance/prop/z"
)

func depth(name string) int {
	d, m := 0, 0
	for _, c := range name {
		switch c {
		case '(':
			d++
			if d > m {
				m = d
			}
		case ')':
			d--
		}
	}
	return m
}

func TestGenDeterministic(t *testing.T) {
	a := New(rand.NewSource(7), nil)
	b := New(rand.NewSource(7), nil)
	for i := 0; i < 100; i++ {
		p, q := a.Prop(4), b.Prop(4)
		if p != q {
			t.Errorf("non deterministic: %s vs %s", p, q)
		}
	}
}

func TestGenAtoms(t *testing.T) {
	g := New(rand.NewSource(1), []string{"x"})
	for i := 0; i < 50; i++ {
		p := g.Prop(0)
		if !p.IsAxiom() || p.Name() != "x" {
			t.Errorf("depth 0 gave %#v", p)
		}
	}
}

func TestGenDerived(t *testing.T) {
	g := New(rand.NewSource(3), nil)
	for i := 0; i < 200; i++ {
		p := g.Derived(1 + i%4)
		if p.IsAxiom() {
			t.Errorf("derived is axiom: %#v", p)
		}
	}
}

func TestGenProperties(t *testing.T) {
	g := New(rand.NewSource(11), nil)
	for i := 0; i < 500; i++ {
		p, q := g.Prop(3), g.Prop(3)
		if p.And(q).Truth() != q.And(p).Truth() {
			t.Errorf("and commutes %s, %s", p, q)
		}
		if p.Or(q).Truth() != q.Or(p).Truth() {
			t.Errorf("or commutes %s, %s", p, q)
		}
		if p.Xor(q).Truth() != q.Xor(p).Truth() {
			t.Errorf("xor commutes %s, %s", p, q)
		}
		if p.Not().Not().Truth() != p.Truth() {
			t.Errorf("double negation %s", p)
		}
		if p.Truth().IsDefinite() && p.Xor(p).Truth() != z.False {
			t.Errorf("xor self %s", p)
		}
	}
}

func TestGenDepthBound(t *testing.T) {
	g := New(rand.NewSource(5), nil)
	g.SetDeep(1)
	for i := 0; i < 100; i++ {
		p := g.Prop(2)
		// each level adds at most two parens of nesting, for iff.
		if d := depth(p.Name()); d > 4 {
			t.Errorf("too deep %q: %d", p.Name(), d)
		}
	}
}

func TestGenNeverDeep(t *testing.T) {
	g := New(rand.NewSource(5), nil)
	g.SetDeep(0)
	for i := 0; i < 100; i++ {
		if p := g.Prop(3); !p.IsAxiom() {
			t.Errorf("SetDeep(0) gave derived %q", p.Name())
		}
	}
}

func TestSeed(t *testing.T) {
	Seed(9)
	p := Rand(3)
	Seed(9)
	q := Rand(3)
	if p != q {
		t.Errorf("seed not deterministic: %s vs %s", p, q)
	}
}
