// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package abide

import (
	"context"
	"time"
)

// sleep blocks the calling goroutine for d, racing the delay against
// ctx. It returns nil when the full delay elapsed, and the context's
// error when ctx was done first. A non-positive delay returns
// immediately, still reporting a context already done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
