// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"os"

	"github.com/irifrance/prop/internal/config"
)

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "prop: loading config: %v\n", err)
		os.Exit(1)
	}
	a := newApp(os.Stdout, os.Stderr)
	err := a.root().Execute()
	if err != nil {
		a.report(err)
	}
	_ = a.log.Sync()
	if err != nil {
		os.Exit(1)
	}
}
