// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import (
	"errors"
	"testing"
)

func TestConnPrec(t *testing.T) {
	want := map[Conn]int{Not: 1, And: 2, Or: 3, Xor: 4, Implies: 5, Iff: 6}
	for c, p := range want {
		if c.Prec() != p {
			t.Errorf("%s prec %d want %d", c, c.Prec(), p)
		}
	}
	for i, c := range Conns {
		for j, d := range Conns {
			if c.Looser(d) != (i > j) {
				t.Errorf("%s looser %s", c, d)
			}
		}
	}
}

func TestConnSymbols(t *testing.T) {
	want := map[Conn]string{Not: "~", And: "^", Or: "v", Xor: "(+)", Implies: "->", Iff: "<->"}
	for c, s := range want {
		if c.Symbol() != s {
			t.Errorf("%s symbol %q want %q", c, c.Symbol(), s)
		}
	}
	if Not.Arity() != 1 || Iff.Arity() != 2 {
		t.Errorf("arity")
	}
}

func TestParseConn(t *testing.T) {
	for _, c := range Conns {
		for _, s := range []string{c.String(), c.Symbol()} {
			d, err := ParseConn(s)
			if err != nil || d != c {
				t.Errorf("parse %q: got %s, %v", s, d, err)
			}
		}
	}
	if c, _ := ParseConn("IF"); c != Implies {
		t.Errorf("if alias")
	}
	if _, err := ParseConn("nand"); !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
	if Conn(0).Valid() || Conn(7).Valid() {
		t.Errorf("valid out of range")
	}
}

func TestOrigin(t *testing.T) {
	var zero Origin
	if zero != Atomic || !zero.IsAtomic() {
		t.Errorf("zero origin not atomic")
	}
	if _, ok := Atomic.Conn(); ok {
		t.Errorf("atomic has conn")
	}
	for _, c := range Conns {
		o := Derived(c)
		if o.IsAtomic() {
			t.Errorf("derived %s atomic", c)
		}
		if d, ok := o.Conn(); !ok || d != c {
			t.Errorf("derived %s conn %s", c, d)
		}
		if Atomic.Looser(c) {
			t.Errorf("atomic looser than %s", c)
		}
		var u Origin
		if err := u.UnmarshalText([]byte(o.String())); err != nil || u != o {
			t.Errorf("text round trip %s: %s %v", o, u, err)
		}
	}
	if !Derived(Or).Looser(And) || Derived(And).Looser(And) || Derived(And).Looser(Or) {
		t.Errorf("origin looser")
	}
}
