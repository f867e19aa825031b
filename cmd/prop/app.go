// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"

	"github.com/irifrance/prop/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	out    io.Writer
	errOut io.Writer
	log    *zap.Logger

	format string
	debug  bool

	depth int
	seed  int64
	count int
}

func newApp(out, errOut io.Writer) *app {
	a := &app{out: out, errOut: errOut, log: zap.NewNop()}
	if l, err := newLogger(config.LogLevel(), errOut); err == nil {
		a.log = l
	}
	return a
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

// report logs err, or writes it to errOut when the logger is
// disabled, as it is when the configured log level is invalid.
func (a *app) report(err error) {
	if a.log.Core().Enabled(zapcore.ErrorLevel) {
		a.log.Error("command failed", zap.Error(err))
		return
	}
	fmt.Fprintf(a.errOut, "prop: %v\n", err)
}

func (a *app) root() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prop",
		Short: "Compose and inspect three valued propositions",
		Long: `prop builds propositions from the connectives not, and, or,
xor, implies and iff under three valued (Kleene) truth and prints
their names, truth and origin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := config.LogLevel()
			if a.debug {
				level = "debug"
			}
			l, err := newLogger(level, a.errOut)
			if err != nil {
				return err
			}
			a.log = l
			if _, err := newEmitter(a.format); err != nil {
				return err
			}
			a.log.Debug("starting", zap.String("command", cmd.Name()), zap.String("format", a.format))
			return nil
		},
	}
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", config.Format(), "output format (text, yaml, json)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "log at debug level")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Build the p, q example expression and print it",
		Args:  cobra.NoArgs,
		RunE:  a.runDemo,
	}
	tableCmd := &cobra.Command{
		Use:   "table [connective]",
		Short: "Print the truth table of a connective, or of all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runTable,
	}
	lawsCmd := &cobra.Command{
		Use:   "laws",
		Short: "Check which algebraic laws hold under three valued truth",
		Args:  cobra.NoArgs,
		RunE:  a.runLaws,
	}
	randCmd := &cobra.Command{
		Use:   "rand",
		Short: "Print random propositions",
		Args:  cobra.NoArgs,
		RunE:  a.runRand,
	}
	randCmd.Flags().IntVar(&a.depth, "depth", config.Depth(), "maximum connective depth")
	randCmd.Flags().Int64Var(&a.seed, "seed", config.Seed(), "random seed")
	randCmd.Flags().IntVar(&a.count, "count", 5, "number of propositions")

	rootCmd.AddCommand(demoCmd, tableCmd, lawsCmd, randCmd)
	return rootCmd
}
