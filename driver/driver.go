// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package driver

import (
	"context"
	"strings"

	"github.com/abidelabs/abide/poll"
)

// A Driver is the browser automation capability the waiting engines
// poll through: locate an element by selector, read its state, and
// navigate. The interface is deliberately small; anything resembling a
// page object or a site-specific flow belongs in the caller, not here.
//
// Implementations must be safe for the access pattern of the predicates
// built over them: a single polling loop calls at most one method at a
// time, but group waits may poll several predicates over the same
// Driver concurrently.
//
// Adapters for playwright-go and chromedp live in the subpackages of
// this package.
type Driver interface {
	// Navigate loads the given URL in the browser.
	Navigate(ctx context.Context, url string) error
	// URL returns the current page URL.
	URL(ctx context.Context) (string, error)
	// Title returns the current page title.
	Title(ctx context.Context) (string, error)
	// Visible reports whether the element matched by selector exists
	// and is visible.
	Visible(ctx context.Context, selector string) (bool, error)
	// Enabled reports whether the element matched by selector exists
	// and is enabled.
	Enabled(ctx context.Context, selector string) (bool, error)
	// Text returns the text content of the element matched by
	// selector.
	Text(ctx context.Context, selector string) (string, error)
}

// Visible returns a predicate satisfied when the element matched by
// selector is visible.
func Visible(d Driver, selector string) poll.Predicate {
	return func(ctx context.Context) (bool, error) {
		return d.Visible(ctx, selector)
	}
}

// Hidden returns a predicate satisfied when the element matched by
// selector is absent or not visible. Driver errors still count as
// "not satisfied yet", so a check that races a page load does not end
// the wait.
func Hidden(d Driver, selector string) poll.Predicate {
	return poll.Not(Visible(d, selector))
}

// Enabled returns a predicate satisfied when the element matched by
// selector is enabled.
func Enabled(d Driver, selector string) poll.Predicate {
	return func(ctx context.Context) (bool, error) {
		return d.Enabled(ctx, selector)
	}
}

// TextContains returns a predicate satisfied when the text content of
// the element matched by selector contains substr.
func TextContains(d Driver, selector, substr string) poll.Predicate {
	return func(ctx context.Context) (bool, error) {
		text, err := d.Text(ctx, selector)
		if err != nil {
			return false, err
		}
		return strings.Contains(text, substr), nil
	}
}

// URLChanged returns a predicate satisfied when the page URL differs
// from the given one. Capture the URL before triggering a navigation,
// then wait on this predicate to observe it completing.
func URLChanged(d Driver, from string) poll.Predicate {
	return func(ctx context.Context) (bool, error) {
		url, err := d.URL(ctx)
		if err != nil {
			return false, err
		}
		return url != from, nil
	}
}

// URLContains returns a predicate satisfied when the page URL contains
// substr.
func URLContains(d Driver, substr string) poll.Predicate {
	return func(ctx context.Context) (bool, error) {
		url, err := d.URL(ctx)
		if err != nil {
			return false, err
		}
		return strings.Contains(url, substr), nil
	}
}

// TitleContains returns a predicate satisfied when the page title
// contains substr.
func TitleContains(d Driver, substr string) poll.Predicate {
	return func(ctx context.Context) (bool, error) {
		title, err := d.Title(ctx)
		if err != nil {
			return false, err
		}
		return strings.Contains(title, substr), nil
	}
}
