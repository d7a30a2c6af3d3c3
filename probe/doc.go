// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package probe builds condition predicates and retryable operations
// over an HTTP client, so waits like "the service answers on /health"
// and operations like "POST this payload, retrying 503s" can be
// expressed as one-liners and handed to the engines in the root
// package.
//
// The package consumes the HTTP client; it does not reimplement one.
// Requests go through a go-resty client the caller may supply and
// configure freely.
package probe
