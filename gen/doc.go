// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains generators of random propositions.
//
// Generators are deterministic for a given rand.Source, which makes
// them suitable for property tests.
package gen
