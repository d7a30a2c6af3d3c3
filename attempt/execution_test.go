// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package attempt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("assigns unique IDs", func(t *testing.T) {
		e1 := New(context.Background())
		e2 := New(context.Background())
		assert.NotEqual(t, ulid.ULID{}, e1.ID)
		assert.NotEqual(t, e1.ID, e2.ID)
	})
	t.Run("nil context", func(t *testing.T) {
		e := New(nil)
		require.NotNil(t, e.Context())
		assert.NoError(t, e.Context().Err())
	})
	t.Run("keeps the given context", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "v")
		e := New(ctx)
		assert.Equal(t, "v", e.Context().Value(key{}))
	})
}

func TestExecutionContext(t *testing.T) {
	// A zero-value execution still has a usable context.
	var e Execution
	require.NotNil(t, e.Context())
}

func TestExecutionDuration(t *testing.T) {
	now := time.Now()
	t.Run("not started", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), (&Execution{}).Duration())
	})
	t.Run("in flight", func(t *testing.T) {
		e := &Execution{Start: now.Add(-time.Second)}
		assert.GreaterOrEqual(t, e.Duration(), time.Second)
	})
	t.Run("ended", func(t *testing.T) {
		e := &Execution{Start: now, End: now.Add(250 * time.Millisecond)}
		assert.Equal(t, 250*time.Millisecond, e.Duration())
	})
}

func TestExecutionStartedEnded(t *testing.T) {
	now := time.Now()
	e := &Execution{}
	assert.False(t, e.Started())
	assert.False(t, e.Ended())
	e.Start = now
	assert.True(t, e.Started())
	assert.False(t, e.Ended())
	e.End = now
	assert.True(t, e.Ended())
}

func TestExecutionTimeout(t *testing.T) {
	assert.False(t, (&Execution{}).Timeout())
	assert.False(t, (&Execution{Err: errors.New("boom")}).Timeout())
	assert.True(t, (&Execution{Err: timeoutErr{}}).Timeout())
}

func TestExecutionValue(t *testing.T) {
	type key struct{}
	type otherKey struct{}
	e := &Execution{}
	assert.Nil(t, e.Value(key{}))
	e.SetValue(key{}, 42)
	assert.Equal(t, 42, e.Value(key{}))
	assert.Nil(t, e.Value(otherKey{}))
	e.SetValue(key{}, 43)
	assert.Equal(t, 43, e.Value(key{}))
}

type timeoutErr struct{}

func (timeoutErr) Error() string { return "deadline exceeded" }
func (timeoutErr) Timeout() bool { return true }
