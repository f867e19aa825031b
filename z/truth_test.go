// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import (
	"errors"
	"testing"
)

func TestTruthNot(t *testing.T) {
	want := map[Truth]Truth{True: False, False: True, Unknown: Unknown}
	for a, w := range want {
		if a.Not() != w {
			t.Errorf("not %s: got %s want %s", a, a.Not(), w)
		}
		if a.Not().Not() != a {
			t.Errorf("double negation %s", a)
		}
	}
}

func TestTruthAndOr(t *testing.T) {
	T, F, U := True, False, Unknown
	ands := [][3]Truth{
		{T, T, T}, {T, F, F}, {T, U, U},
		{F, T, F}, {F, F, F}, {F, U, F},
		{U, T, U}, {U, F, F}, {U, U, U}}
	ors := [][3]Truth{
		{T, T, T}, {T, F, T}, {T, U, T},
		{F, T, T}, {F, F, F}, {F, U, U},
		{U, T, T}, {U, F, U}, {U, U, U}}
	for _, r := range ands {
		if g := r[0].And(r[1]); g != r[2] {
			t.Errorf("%s and %s: got %s want %s", r[0], r[1], g, r[2])
		}
	}
	for _, r := range ors {
		if g := r[0].Or(r[1]); g != r[2] {
			t.Errorf("%s or %s: got %s want %s", r[0], r[1], g, r[2])
		}
	}
}

func TestTruthBool(t *testing.T) {
	if b, ok := True.Bool(); !b || !ok {
		t.Errorf("true")
	}
	if b, ok := False.Bool(); b || !ok {
		t.Errorf("false")
	}
	if _, ok := Unknown.Bool(); ok {
		t.Errorf("unknown definite")
	}
	if Lift(true) != True || Lift(false) != False {
		t.Errorf("lift")
	}
	if Unknown.IsDefinite() || !True.IsDefinite() || !False.IsDefinite() {
		t.Errorf("definite")
	}
	for _, a := range Truths {
		if !a.Valid() {
			t.Errorf("%s not valid", a)
		}
	}
	if Truth(2).Valid() || Truth(-2).Valid() {
		t.Errorf("out of range valid")
	}
	var zero Truth
	if zero != Unknown {
		t.Errorf("zero value %s", zero)
	}
}

func TestParseTruth(t *testing.T) {
	for _, a := range Truths {
		for _, s := range []string{a.String(), a.Letter()} {
			b, err := ParseTruth(s)
			if err != nil {
				t.Errorf("parse %q: %v", s, err)
				continue
			}
			if a != b {
				t.Errorf("parse %q: got %s", s, b)
			}
		}
	}
	if _, err := ParseTruth("maybe"); !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
	var u Truth
	if err := u.UnmarshalText([]byte("FALSE")); err != nil || u != False {
		t.Errorf("unmarshal: %s %v", u, err)
	}
}
