// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient classifies low-level errors as transient or
// non-transient. Retry classifiers and wait predicates use it to decide
// whether a failure is worth another attempt, and it is equally useful
// for bucketing error metrics.
//
// Package transient is extremely lightweight, as it depends only on the
// standard library packages "errors" and "syscall", so it doesn't bring
// any significant dependencies when imported as a standalone package.
package transient
