// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package abide

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Checker or an Executor to
// extend them with custom functionality, for example telemetry or
// screenshot capture on failed attempts.
type Event int

const (
	// BeforeExecutionStart identifies the event that occurs before a
	// wait or retry invocation starts.
	//
	// When an engine fires BeforeExecutionStart, the execution is
	// non-nil and carries its ID, but its start time is not yet set.
	BeforeExecutionStart Event = iota
	// BeforeAttempt identifies the event that occurs before each
	// predicate evaluation or operation invocation.
	BeforeAttempt
	// AfterAttemptTimeout identifies the event that occurs after an
	// attempt failed with an error categorized as a timeout.
	//
	// When an engine fires AfterAttemptTimeout, the execution's Err
	// field is set to the timeout error. AfterAttemptTimeout always
	// fires before AfterAttempt for the same attempt.
	AfterAttemptTimeout
	// AfterAttempt identifies the event that occurs after each
	// attempt is concluded, regardless of how it concluded. The
	// execution's Err field holds the attempt's error, if any.
	AfterAttempt
	// AfterAttemptError identifies the event that occurs after an
	// attempt produced an error: the predicate returned one during a
	// wait, or the operation failed during a retry run. It fires
	// after AfterAttempt and before the engine decides what to do
	// about the failure.
	AfterAttemptError
	// AfterWaitTimeout identifies the event that occurs when a wait
	// reaches its deadline without the condition being satisfied. It
	// fires once, immediately before the Checker reports the TimedOut
	// outcome. Retry runs never fire it.
	AfterWaitTimeout
	// AfterExecutionEnd identifies the event that occurs after the
	// invocation ends. The execution's end time is set.
	AfterExecutionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeAttempt",
	"AfterAttemptTimeout",
	"AfterAttempt",
	"AfterAttemptError",
	"AfterWaitTimeout",
	"AfterExecutionEnd",
}

// Events returns a slice containing all events which can occur during
// a wait or retry invocation, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeAttempt,
		AfterAttemptTimeout,
		AfterAttempt,
		AfterAttemptError,
		AfterWaitTimeout,
		AfterExecutionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
