// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"
	"sync"

	"github.com/irifrance/prop"
	"github.com/irifrance/prop/z"
)

// DefaultAtoms are the atom names used when none are given.
var DefaultAtoms = []string{"p", "q", "r", "s"}

// rng backs Rand and is reset by Seed.
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

// Seed reseeds the generator used by Rand.
func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// Rand returns a random proposition of depth at most d using the
// package generator and DefaultAtoms.
func Rand(d int) prop.Prop {
	mu.Lock()
	defer mu.Unlock()
	g := &Gen{rand: rng, atoms: DefaultAtoms, pDeep: 0.8}
	return g.Prop(d)
}

// Type Gen generates random propositions.  A Gen is not safe for
// concurrent use.
type Gen struct {
	rand  *rand.Rand
	atoms []string
	pDeep float64
}

// New creates a generator drawing from src.  Atoms are named from
// atoms, or DefaultAtoms if atoms is empty.
func New(src rand.Source, atoms []string) *Gen {
	if len(atoms) == 0 {
		atoms = DefaultAtoms
	}
	return &Gen{rand: rand.New(src), atoms: atoms, pDeep: 0.8}
}

// SetDeep sets the probability with which a level above 0 applies
// a connective rather than stopping at an atom.  The default is 0.8;
// 0 always yields an atom and 1 always a connective.
func (g *Gen) SetDeep(p float64) {
	g.pDeep = p
}

// Truth returns a random truth state.
func (g *Gen) Truth() z.Truth {
	return z.Truths[g.rand.Intn(len(z.Truths))]
}

// Conn returns a random connective.
func (g *Gen) Conn() z.Conn {
	return z.Conns[g.rand.Intn(len(z.Conns))]
}

// Atom returns a fresh atomic proposition with a random name from
// the generator's atoms and a random truth.  Atoms with equal names
// are independent.
func (g *Gen) Atom() prop.Prop {
	return prop.New(g.atoms[g.rand.Intn(len(g.atoms))], g.Truth())
}

// Prop returns a random proposition with at most d levels of
// connectives.  If d <= 0, the result is an atom.
func (g *Gen) Prop(d int) prop.Prop {
	if d <= 0 || g.rand.Float64() >= g.pDeep {
		return g.Atom()
	}
	c := g.Conn()
	if c.Arity() == 1 {
		return prop.Apply(c, g.Prop(d-1))
	}
	return prop.Apply(c, g.Prop(d-1), g.Prop(d-1))
}

// Derived is like Prop but the result is always produced by a
// connective, for d >= 1.
func (g *Gen) Derived(d int) prop.Prop {
	if d <= 0 {
		return g.Atom()
	}
	c := g.Conn()
	if c.Arity() == 1 {
		return prop.Apply(c, g.Prop(d-1))
	}
	return prop.Apply(c, g.Prop(d-1), g.Prop(d-1))
}
