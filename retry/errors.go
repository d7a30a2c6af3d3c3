// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import "fmt"

// An ExhaustedError is returned by the Executor when every attempt the
// policy allowed has failed with a retryable error. It wraps the error
// from the final attempt, so errors.Is and errors.As reach through to
// the terminal cause.
//
// A failure classified as non-retryable is never wrapped in an
// ExhaustedError: it propagates unchanged from the attempt in which it
// occurred.
type ExhaustedError struct {
	// Attempts is the total number of attempts made, including the
	// initial one.
	Attempts int
	// Err is the error produced by the final attempt. It is never
	// nil.
	Err error
}

// Error implements the error interface.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("abide/retry: %d attempts exhausted: %v", e.Attempts, e.Err)
}

// Unwrap returns the error from the final attempt.
func (e *ExhaustedError) Unwrap() error {
	return e.Err
}
