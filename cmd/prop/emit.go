// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// emitter writes v to w.  text is used for the text format.
type emitter func(w io.Writer, v interface{}, text func(io.Writer) error) error

func newEmitter(format string) (emitter, error) {
	switch format {
	case "text", "":
		return func(w io.Writer, _ interface{}, text func(io.Writer) error) error {
			return text(w)
		}, nil
	case "yaml":
		return func(w io.Writer, v interface{}, _ func(io.Writer) error) error {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(v); err != nil {
				return err
			}
			return enc.Close()
		}, nil
	case "json":
		return func(w io.Writer, v interface{}, _ func(io.Writer) error) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		}, nil
	}
	return nil, fmt.Errorf("unknown format %q (want text, yaml or json)", format)
}
