// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/irifrance/prop"
	"github.com/irifrance/prop/gen"
	"github.com/irifrance/prop/logic"
	"github.com/irifrance/prop/z"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type demoOut struct {
	POrQ      prop.Dump `json:"p_or_q" yaml:"p_or_q"`
	IfPThenQ  prop.Dump `json:"if_p_then_q" yaml:"if_p_then_q"`
	Taut      prop.Dump `json:"taut" yaml:"taut"`
	Tautology bool      `json:"tautology" yaml:"tautology"`
}

func (a *app) runDemo(cmd *cobra.Command, args []string) error {
	em, err := newEmitter(a.format)
	if err != nil {
		return err
	}
	p := prop.New("p", z.Unknown)
	q := prop.New("q", z.True)
	pOrQ := p.Or(q)
	ifPThenQ := p.Implies(q.Not())
	taut := pOrQ.Iff(ifPThenQ)
	a.log.Debug("built demo", zap.String("taut", taut.Name()), zap.Stringer("truth", taut.Truth()))

	v := demoOut{
		POrQ:      pOrQ.Dump(),
		IfPThenQ:  ifPThenQ.Dump(),
		Taut:      taut.Dump(),
		Tautology: taut.IsTautology()}
	return em(cmd.OutOrStdout(), v, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%#v, %#v\n%#v\n%t\n", pOrQ, ifPThenQ, taut, taut.IsTautology())
		return err
	})
}

type tableOut struct {
	Conn z.Conn    `json:"conn" yaml:"conn"`
	Expr string    `json:"expr" yaml:"expr"`
	Rows []rowOut  `json:"rows" yaml:"rows"`
	Info tableInfo `json:"info" yaml:"info"`
}

type rowOut struct {
	A z.Truth  `json:"a" yaml:"a"`
	B *z.Truth `json:"b,omitempty" yaml:"b,omitempty"`
	G z.Truth  `json:"result" yaml:"result"`
}

type tableInfo struct {
	Classical bool `json:"classical" yaml:"classical"`
	Monotone  bool `json:"monotone" yaml:"monotone"`
}

func (a *app) runTable(cmd *cobra.Command, args []string) error {
	em, err := newEmitter(a.format)
	if err != nil {
		return err
	}
	conns := z.Conns[:]
	if len(args) == 1 {
		c, err := z.ParseConn(args[0])
		if err != nil {
			return err
		}
		conns = []z.Conn{c}
	}
	outs := make([]tableOut, 0, len(conns))
	for _, c := range conns {
		rows := logic.Table(c)
		t := tableOut{
			Conn: c,
			Expr: rows[0].Name,
			Info: tableInfo{Classical: logic.IsClassical(c), Monotone: logic.IsMonotone(c)}}
		for _, r := range rows {
			ro := rowOut{A: r.A, G: r.G}
			if c.Arity() == 2 {
				b := r.B
				ro.B = &b
			}
			t.Rows = append(t.Rows, ro)
		}
		a.log.Debug("tabulated", zap.Stringer("conn", c), zap.Int("rows", len(rows)))
		outs = append(outs, t)
	}
	return em(cmd.OutOrStdout(), outs, func(w io.Writer) error {
		for i, t := range outs {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeTable(w, t)
		}
		return nil
	})
}

func writeTable(w io.Writer, t tableOut) {
	if t.Conn.Arity() == 1 {
		fmt.Fprintf(w, "a | %s\n", t.Expr)
	} else {
		fmt.Fprintf(w, "a b | %s\n", t.Expr)
	}
	for _, r := range t.Rows {
		if r.B == nil {
			fmt.Fprintf(w, "%s | %s\n", r.A.Letter(), r.G.Letter())
			continue
		}
		fmt.Fprintf(w, "%s %s | %s\n", r.A.Letter(), r.B.Letter(), r.G.Letter())
	}
}

type lawOut struct {
	Name    string `json:"name" yaml:"name"`
	Holds   bool   `json:"holds" yaml:"holds"`
	Counter string `json:"counter,omitempty" yaml:"counter,omitempty"`
}

func (a *app) runLaws(cmd *cobra.Command, args []string) error {
	em, err := newEmitter(a.format)
	if err != nil {
		return err
	}
	var outs []lawOut
	for _, l := range logic.Laws() {
		ok, ctr := l.Check()
		o := lawOut{Name: l.Name, Holds: ok}
		if !ok {
			o.Counter = ctr.String()
		}
		outs = append(outs, o)
	}
	return em(cmd.OutOrStdout(), outs, func(w io.Writer) error {
		for _, o := range outs {
			if o.Holds {
				fmt.Fprintf(w, "ok   %s\n", o.Name)
				continue
			}
			fmt.Fprintf(w, "FAIL %s: %s\n", o.Name, o.Counter)
		}
		return nil
	})
}

func (a *app) runRand(cmd *cobra.Command, args []string) error {
	em, err := newEmitter(a.format)
	if err != nil {
		return err
	}
	if a.depth < 0 || a.count < 0 {
		return fmt.Errorf("depth and count must not be negative")
	}
	a.log.Debug("generating", zap.Int64("seed", a.seed), zap.Int("depth", a.depth), zap.Int("count", a.count))
	g := gen.New(rand.NewSource(a.seed), nil)
	dumps := make([]prop.Dump, 0, a.count)
	for i := 0; i < a.count; i++ {
		dumps = append(dumps, g.Prop(a.depth).Dump())
	}
	return em(cmd.OutOrStdout(), dumps, func(w io.Writer) error {
		for _, d := range dumps {
			var flags []string
			if d.Axiom {
				flags = append(flags, "axiom")
			}
			if d.Tautology {
				flags = append(flags, "tautology")
			}
			if d.Contradiction {
				flags = append(flags, "contradiction")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Name, d.Truth, d.Origin, strings.Join(flags, ","))
		}
		return nil
	})
}
