// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse is wrapped by all parse errors in this package.
var ErrParse = errors.New("z: parse error")

// Type Truth is a lifted boolean: True, False or Unknown.
//
// The zero value is Unknown.  Only the three constants are valid; the
// methods below panic on any other value.  Use Valid to check values
// of unknown provenance.
type Truth int8

const (
	Unknown Truth = 0
	True    Truth = 1
	False   Truth = -1
)

// Truths lists every truth state, in table order.
var Truths = [...]Truth{True, False, Unknown}

// Valid returns whether t is one of True, False or Unknown.
func (t Truth) Valid() bool {
	return t == True || t == False || t == Unknown
}

// Lift returns the Truth for b.
func Lift(b bool) Truth {
	if b {
		return True
	}
	return False
}

// IsDefinite returns whether t is True or False.
func (t Truth) IsDefinite() bool {
	return t == True || t == False
}

// Bool returns the boolean value of t and whether t is definite.
func (t Truth) Bool() (bool, bool) {
	switch t {
	case True:
		return true, true
	case False:
		return false, true
	case Unknown:
		return false, false
	}
	panic(fmt.Sprintf("invalid truth %d", t))
}

// Not returns the Kleene negation of t.
//
//  True -> False
//  False -> True
//  Unknown -> Unknown
func (t Truth) Not() Truth {
	switch t {
	case True:
		return False
	case False:
		return True
	case Unknown:
		return Unknown
	}
	panic(fmt.Sprintf("invalid truth %d", t))
}

// And returns the Kleene conjunction of t and u.  False dominates,
// then Unknown.
func (t Truth) And(u Truth) Truth {
	switch t {
	case True:
		switch u {
		case True:
			return True
		case False:
			return False
		case Unknown:
			return Unknown
		}
	case False:
		switch u {
		case True, False, Unknown:
			return False
		}
	case Unknown:
		switch u {
		case True:
			return Unknown
		case False:
			return False
		case Unknown:
			return Unknown
		}
	}
	panic(fmt.Sprintf("invalid truths %d, %d", t, u))
}

// Or returns the Kleene disjunction of t and u.  True dominates,
// then Unknown.
func (t Truth) Or(u Truth) Truth {
	switch t {
	case True:
		switch u {
		case True, False, Unknown:
			return True
		}
	case False:
		switch u {
		case True:
			return True
		case False:
			return False
		case Unknown:
			return Unknown
		}
	case Unknown:
		switch u {
		case True:
			return True
		case False:
			return Unknown
		case Unknown:
			return Unknown
		}
	}
	panic(fmt.Sprintf("invalid truths %d, %d", t, u))
}

func (t Truth) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	case Unknown:
		return "unknown"
	}
	return fmt.Sprintf("Truth(%d)", int8(t))
}

// Letter returns "T", "F" or "U".
func (t Truth) Letter() string {
	switch t {
	case True:
		return "T"
	case False:
		return "F"
	case Unknown:
		return "U"
	}
	return "?"
}

// ParseTruth parses s as a Truth.  It accepts the forms produced by
// String and Letter, in any case, and also "1", "0", "?" and "".
func ParseTruth(s string) (Truth, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1":
		return True, nil
	case "false", "f", "0":
		return False, nil
	case "unknown", "u", "?", "":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("%w: invalid truth %q", ErrParse, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Truth) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Truth) UnmarshalText(b []byte) error {
	v, err := ParseTruth(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
