// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package attempt contains the core type Execution, which describes the
// state of a single wait or retry invocation.
//
// Execution is both the output type of the engines in the root package
// and the input type for the callbacks they invoke: poll interval
// policies, retry deciders and waiters, and event handlers. You will
// typically not allocate Execution instances yourself, but will instead
// work with the ones handed out by the polling and retry loops.
package attempt
