// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package poll defines the vocabulary of bounded condition waits: the
// Predicate checked by a polling loop, the Outcome the loop reports,
// and the Policy governing how often the predicate is evaluated.
//
// The polling loop itself lives in the root package, on the Checker
// type. A generic interface for interval policies is provided, Policy,
// along with useful policy generating functions (Every, Steps) and a
// built-in default.
package poll
