// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package logic tabulates the connectives of package prop over all
// truth states and checks which algebraic laws hold for them.
//
// Every result is computed by applying prop connectives to atomic
// propositions, never from an independent table.
package logic
