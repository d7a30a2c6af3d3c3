// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispositionString(t *testing.T) {
	assert.Equal(t, "Retryable", Retryable.String())
	assert.Equal(t, "NonRetryable", NonRetryable.String())
	assert.Equal(t, "Disposition(unknown)", Disposition(99).String())
	assert.Equal(t, "Disposition(unknown)", Disposition(-1).String())
}

func TestRetryAll(t *testing.T) {
	assert.Equal(t, Retryable, RetryAll.Classify(nil))
	assert.Equal(t, Retryable, RetryAll.Classify(errors.New("anything")))
	assert.Equal(t, Retryable, RetryAll.Classify(syscall.EACCES))
}

func TestTransientClassifier(t *testing.T) {
	t.Run("retryable", func(t *testing.T) {
		errs := []error{
			syscall.ECONNREFUSED,
			syscall.ECONNRESET,
			syscall.EPIPE,
			timeoutErr{},
			fmt.Errorf("dialing: %w", syscall.ECONNREFUSED),
		}
		for i, err := range errs {
			assert.Equal(t, Retryable, Transient.Classify(err), fmt.Sprintf("errs[%d]=%v", i, err))
		}
	})
	t.Run("non-retryable", func(t *testing.T) {
		errs := []error{
			nil,
			errors.New("invalid credentials"),
			io.EOF,
		}
		for i, err := range errs {
			assert.Equal(t, NonRetryable, Transient.Classify(err), fmt.Sprintf("errs[%d]=%v", i, err))
		}
	})
}

func TestIsKind(t *testing.T) {
	c := IsKind(io.ErrUnexpectedEOF, io.EOF)
	assert.Equal(t, Retryable, c.Classify(io.EOF))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("read: %w", io.ErrUnexpectedEOF)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
	t.Run("empty target list", func(t *testing.T) {
		assert.Equal(t, NonRetryable, IsKind().Classify(io.EOF))
	})
}

func TestAsKind(t *testing.T) {
	c := AsKind[*net.OpError]()
	opErr := &net.OpError{Op: "dial", Err: errors.New("boom")}
	assert.Equal(t, Retryable, c.Classify(opErr))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("wrapped: %w", opErr)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

func TestClassifierFuncOr(t *testing.T) {
	retryable := ClassifierFunc(func(error) Disposition { return Retryable })
	nonRetryable := ClassifierFunc(func(error) Disposition { return NonRetryable })
	err := errors.New("boom")
	assert.Equal(t, Retryable, retryable.Or(nonRetryable)(err))
	assert.Equal(t, Retryable, nonRetryable.Or(retryable)(err))
	assert.Equal(t, NonRetryable, nonRetryable.Or(nonRetryable)(err))
	t.Run("short circuit", func(t *testing.T) {
		called := false
		spy := ClassifierFunc(func(error) Disposition { called = true; return Retryable })
		assert.Equal(t, Retryable, retryable.Or(spy)(err))
		assert.False(t, called)
	})
}
