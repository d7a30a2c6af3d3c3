// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"errors"

	"github.com/abidelabs/abide/transient"
)

// A Disposition is a Classifier's verdict on a failed attempt: the
// failure kind either permits another attempt or it does not.
type Disposition int

const (
	// Retryable marks a failure kind for which another attempt is
	// permitted, subject to the policy's remaining retry budget.
	Retryable Disposition = iota
	// NonRetryable marks a failure kind that must propagate to the
	// caller on first occurrence, without consuming the remaining
	// retry budget.
	NonRetryable
)

var dispositionNames = []string{"Retryable", "NonRetryable"}

// String returns the name of the disposition.
func (d Disposition) String() string {
	if d < Retryable || int(d) >= len(dispositionNames) {
		return "Disposition(unknown)"
	}
	return dispositionNames[d]
}

// A Classifier sorts failed attempts into retryable and non-retryable
// kinds. It is consulted before the retry budget: a NonRetryable
// verdict ends the run immediately.
//
// Implementations of Classifier must be safe for concurrent use by
// multiple goroutines.
//
// Use the built-in classifiers RetryAll and Transient, or the
// constructors IsKind and AsKind; or implement your own, optionally
// via the ClassifierFunc adapter.
type Classifier interface {
	Classify(err error) Disposition
}

// The ClassifierFunc type is an adapter to allow the use of ordinary
// functions as classifiers.
//
// Every ClassifierFunc must be safe for concurrent use by multiple
// goroutines.
type ClassifierFunc func(err error) Disposition

// Classify calls f(err).
func (f ClassifierFunc) Classify(err error) Disposition {
	return f(err)
}

// RetryAll is a classifier that considers every failure retryable.
// It reproduces the classic test-harness behavior of retrying any
// exception, and is the classifier used by DefaultPolicy.
var RetryAll ClassifierFunc = func(error) Disposition {
	return Retryable
}

// Transient is a classifier that considers a failure retryable exactly
// when package transient categorizes it as transient: client-side
// timeouts, refused connections, connection resets, and broken pipes.
// Everything else is non-retryable.
var Transient ClassifierFunc = func(err error) Disposition {
	if transient.Is(err) {
		return Retryable
	}
	return NonRetryable
}

// IsKind constructs a classifier that considers a failure retryable if
// the error matches any of the given targets in the errors.Is sense,
// and non-retryable otherwise.
//
// IsKind is how a fixed set of retryable error kinds is expressed:
//
//	c := retry.IsKind(io.ErrUnexpectedEOF, context.DeadlineExceeded)
func IsKind(targets ...error) ClassifierFunc {
	ts := make([]error, len(targets))
	copy(ts, targets)
	return func(err error) Disposition {
		for _, t := range ts {
			if errors.Is(err, t) {
				return Retryable
			}
		}
		return NonRetryable
	}
}

// AsKind constructs a classifier that considers a failure retryable if
// the error matches the type parameter in the errors.As sense, and
// non-retryable otherwise.
//
//	c := retry.AsKind[*net.OpError]()
func AsKind[T error]() ClassifierFunc {
	return func(err error) Disposition {
		var t T
		if errors.As(err, &t) {
			return Retryable
		}
		return NonRetryable
	}
}

// Or composes two classifiers into a new classifier that reports
// Retryable if either of the two reports Retryable.
//
// Short-circuit logic is used, so g is not consulted if f already
// considers the failure retryable.
func (f ClassifierFunc) Or(g ClassifierFunc) ClassifierFunc {
	return func(err error) Disposition {
		if f(err) == Retryable {
			return Retryable
		}
		return g(err)
	}
}
