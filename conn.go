// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package prop

import "github.com/irifrance/prop/z"

func derive(c z.Conn, name string, t z.Truth) Prop {
	return Prop{name: name, truth: t, origin: z.Derived(c)}
}

// Not returns "~p".
func (p Prop) Not() Prop {
	return derive(z.Not, "~"+p.Render(z.Not), p.truth.Not())
}

// And returns "p^q", which is false if either is false, true if
// both are true and unknown otherwise.
func (p Prop) And(q Prop) Prop {
	return derive(z.And, p.Render(z.And)+"^"+q.Render(z.And), p.truth.And(q.truth))
}

// Or returns "pvq", which is true if either is true, false if both
// are false and unknown otherwise.
func (p Prop) Or(q Prop) Prop {
	return derive(z.Or, p.Render(z.Or)+"v"+q.Render(z.Or), p.truth.Or(q.truth))
}

// Xor returns "p(+)q", with the truth of (p or q) and not (p and q).
func (p Prop) Xor(q Prop) Prop {
	t := p.Or(q).And(p.And(q).Not()).truth
	return derive(z.Xor, p.Render(z.Xor)+"(+)"+q.Render(z.Xor), t)
}

// Implies returns "p->q", with the truth of p or not q.
//
// Note this is the converse of material implication: p->q has the
// truth of q implies p.
func (p Prop) Implies(q Prop) Prop {
	t := p.Or(q.Not()).truth
	return derive(z.Implies, p.Render(z.Implies)+"->"+q.Render(z.Implies), t)
}

// Iff returns "(p)<->(q)", with the truth of (p and q) or (not p and
// not q).  Both operands are always parenthesized.
func (p Prop) Iff(q Prop) Prop {
	t := p.And(q).Or(p.Not().And(q.Not())).truth
	return derive(z.Iff, "("+p.Render(z.Iff)+")<->("+q.Render(z.Iff)+")", t)
}

// Apply applies c to ps: one operand for z.Not, two otherwise.  Apply
// panics if the number of operands does not match c.Arity() or c is
// not a valid connective.
func Apply(c z.Conn, ps ...Prop) Prop {
	if len(ps) != c.Arity() {
		panic("prop: wrong number of operands for " + c.String())
	}
	switch c {
	case z.Not:
		return ps[0].Not()
	case z.And:
		return ps[0].And(ps[1])
	case z.Or:
		return ps[0].Or(ps[1])
	case z.Xor:
		return ps[0].Xor(ps[1])
	case z.Implies:
		return ps[0].Implies(ps[1])
	case z.Iff:
		return ps[0].Iff(ps[1])
	}
	panic("prop: invalid connective " + c.String())
}
