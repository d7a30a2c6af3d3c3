// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"errors"
	"syscall"
)

// A Category is the transience category of an error, as reported by
// Categorize.
//
// Category Not means the error gives no reason to believe a future
// attempt will fare better. Every other category marks the error as
// transient: the failed operation or check has some prospect of
// succeeding if tried again.
type Category int

const (
	// Not indicates any non-transient error.
	Not Category = iota
	// Timeout indicates a client-side timeout. The system under test
	// may be going through a temporary period of slowness, or a later
	// attempt with a longer deadline may succeed.
	//
	// Categorize returns Timeout if the error, or any error it wraps,
	// has a Timeout() method reporting true.
	Timeout
	// ConnRefused indicates the remote end refused the connection
	// (POSIX ECONNREFUSED).
	//
	// A refused connection is common while the service under test is
	// still starting: nothing is listening on the port yet, but
	// something will be shortly. For that reason it is treated as
	// transient even though it can also be a permanent condition.
	ConnRefused
	// ConnReset indicates an established connection was torn down by
	// the remote end (POSIX ECONNRESET).
	//
	// Resets show up when a service restarts mid-response or when a
	// load balancer cycles its backends, both of which tend to clear
	// up quickly.
	ConnReset
	// BrokenPipe indicates a write on a connection the remote end had
	// already closed (POSIX EPIPE). Like ConnReset it usually points
	// at a restart in progress.
	BrokenPipe
)

var names = []string{"Not", "Timeout", "ConnRefused", "ConnReset", "BrokenPipe"}

// String returns the category name.
func (c Category) String() string {
	if c < Not || int(c) >= len(names) {
		return "Category(unknown)"
	}
	return names[c]
}

// Categorize reports the transience category of err. A nil error, and
// any error that does not look transient, produce Not.
//
// Categorize unwraps err looking for causes, so wrapping an error with
// fmt.Errorf and %w does not hide its transience. It deliberately does
// not consult Temporary() methods, whose semantics are too loose to
// base a retry decision on.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var t timeouter
	if errors.As(err, &t) && t.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNREFUSED:
			return ConnRefused
		case syscall.ECONNRESET:
			return ConnReset
		case syscall.EPIPE:
			return BrokenPipe
		}
	}

	return Not
}

// Is reports whether err is transient, i.e. whether Categorize returns
// anything other than Not.
func Is(err error) bool {
	return Categorize(err) != Not
}

type timeouter interface {
	Timeout() bool
}
