// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

// Type Origin tags how a proposition came to be: it is either atomic,
// or derived by a connective.
//
// The zero value is Atomic.
type Origin struct {
	derived bool
	conn    Conn
}

// Atomic is the origin of propositions built directly by a caller.
var Atomic = Origin{}

// Derived returns the origin of a proposition produced by c.
func Derived(c Conn) Origin {
	return Origin{derived: true, conn: c}
}

// IsAtomic returns whether o is Atomic.
func (o Origin) IsAtomic() bool {
	return !o.derived
}

// Conn returns the connective which produced o, and false if o is
// Atomic.
func (o Origin) Conn() (Conn, bool) {
	return o.conn, o.derived
}

// Looser returns whether o is derived from a connective binding
// strictly looser than c.  Atomic origins are never looser.
func (o Origin) Looser(c Conn) bool {
	return o.derived && o.conn.Looser(c)
}

func (o Origin) String() string {
	if !o.derived {
		return "atomic"
	}
	return o.conn.String()
}

// MarshalText implements encoding.TextMarshaler.
func (o Origin) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Origin) UnmarshalText(b []byte) error {
	if string(b) == "atomic" {
		*o = Atomic
		return nil
	}
	c, err := ParseConn(string(b))
	if err != nil {
		return err
	}
	*o = Derived(c)
	return nil
}
