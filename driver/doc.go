// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package driver defines the browser automation capability consumed by
// the waiting engines: a small Driver interface for element state and
// navigation, plus predicate constructors (Visible, Hidden, Enabled,
// TextContains, URLChanged, ...) that turn a Driver into closures a
// Checker can poll.
//
// The package does not automate a browser itself. Adapters for
// playwright-go and chromedp live in the playwright and chromedp
// subpackages; any other automation stack can participate by
// implementing Driver.
package driver
