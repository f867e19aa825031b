// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import (
	"fmt"
	"strings"
)

// Type Conn is a propositional connective.  The set of connectives
// is closed; their values are their precedence ranks, tightest first.
type Conn uint8

const (
	Not     Conn = 1 + iota // ~
	And                     // ^
	Or                      // v
	Xor                     // (+)
	Implies                 // ->
	Iff                     // <->
)

// Conns lists every connective, tightest first.
var Conns = [...]Conn{Not, And, Or, Xor, Implies, Iff}

var connSyms = [...]string{"", "~", "^", "v", "(+)", "->", "<->"}

var connNames = [...]string{"", "not", "and", "or", "xor", "implies", "iff"}

// Valid returns whether c is one of the six connectives.
func (c Conn) Valid() bool {
	return c >= Not && c <= Iff
}

// Prec returns the precedence rank of c: 1 for Not through 6 for
// Iff.  Smaller binds tighter.
func (c Conn) Prec() int {
	return int(c)
}

// Looser returns whether c binds strictly looser than d.
func (c Conn) Looser(d Conn) bool {
	return c.Prec() > d.Prec()
}

// Arity returns 1 for Not and 2 otherwise.
func (c Conn) Arity() int {
	if c == Not {
		return 1
	}
	return 2
}

// Symbol returns the symbol used to render c.
func (c Conn) Symbol() string {
	if !c.Valid() {
		return "?"
	}
	return connSyms[c]
}

func (c Conn) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Conn(%d)", uint8(c))
	}
	return connNames[c]
}

// ParseConn parses a connective by name ("and", "iff", ...) or by
// symbol ("^", "<->", ...).  Names are case insensitive; "if" and
// "cond" are accepted for Implies.
func ParseConn(s string) (Conn, error) {
	t := strings.TrimSpace(s)
	for _, c := range Conns {
		if t == connSyms[c] || strings.EqualFold(t, connNames[c]) {
			return c, nil
		}
	}
	switch strings.ToLower(t) {
	case "if", "cond", "=>":
		return Implies, nil
	case "bicond", "<=>":
		return Iff, nil
	case "!", "¬":
		return Not, nil
	}
	return 0, fmt.Errorf("%w: invalid connective %q", ErrParse, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Conn) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("z: invalid connective %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Conn) UnmarshalText(b []byte) error {
	v, err := ParseConn(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
