// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z contains the basic value types shared by the proposition
// packages: three valued truth, connectives and the origin tag of a
// proposition.
package z
