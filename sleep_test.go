// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package abide

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSleep(t *testing.T) {
	t.Run("full delay", func(t *testing.T) {
		start := time.Now()
		err := sleep(context.Background(), 20*time.Millisecond)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})
	t.Run("zero delay", func(t *testing.T) {
		require.NoError(t, sleep(context.Background(), 0))
	})
	t.Run("negative delay", func(t *testing.T) {
		require.NoError(t, sleep(context.Background(), -time.Second))
	})
	t.Run("zero delay with done context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Same(t, context.Canceled, sleep(ctx, 0))
	})
	t.Run("context done during delay", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()
		start := time.Now()
		err := sleep(ctx, time.Hour)
		assert.Same(t, context.Canceled, err)
		assert.Less(t, time.Since(start), time.Hour)
	})
	t.Run("deadline during delay", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		err := sleep(ctx, time.Hour)
		assert.Same(t, context.DeadlineExceeded, err)
	})
}
