// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package config holds the environment configuration of the prop
// command.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file named by PROP_ENV (or .env by default).
// A missing file is not an error.  Variables already set in the
// environment take precedence over the file.
func Load() error {
	envFile := os.Getenv("PROP_ENV")
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err != nil {
		return nil
	}
	return godotenv.Load(envFile)
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("PROP_LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// Format returns the output format (text, yaml, json).
// Defaults to "text" if not set.
func Format() string {
	f := os.Getenv("PROP_FORMAT")
	if f == "" {
		return "text"
	}
	return f
}

// Seed returns the seed for random propositions.
// Defaults to 1 if not set.
func Seed() int64 {
	s, err := strconv.ParseInt(os.Getenv("PROP_SEED"), 10, 64)
	if err != nil {
		return 1
	}
	return s
}

// Depth returns the depth of random propositions.
// Defaults to 3 if not set or negative.
func Depth() int {
	d, err := strconv.Atoi(os.Getenv("PROP_DEPTH"))
	if err != nil || d < 0 {
		return 3
	}
	return d
}
