// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package chromedp adapts a chromedp browser tab to the driver.Driver
// interface, so conditions over a DevTools-automated browser can be
// polled by a Checker.
//
// Element state is sampled with single JavaScript evaluations rather
// than chromedp's own waiting query actions, which block until the
// element appears. Sampling returns immediately with the current
// state, which is what a polling loop wants.
package chromedp

import (
	"context"
	"fmt"

	"github.com/abidelabs/abide/driver"
	"github.com/chromedp/chromedp"
)

// Tab wraps a chromedp tab context as a driver.Driver.
//
// A chromedp tab is addressed through the context created by
// chromedp.NewContext, so Tab runs its actions against that stored
// context. The context passed to each method is not consulted;
// cancelling the tab context tears the whole tab down.
type Tab struct {
	ctx context.Context
}

// New returns a driver.Driver backed by the chromedp context tabCtx,
// which must come from chromedp.NewContext.
func New(tabCtx context.Context) *Tab {
	if tabCtx == nil {
		panic("driver/chromedp: nil tab context")
	}
	return &Tab{ctx: tabCtx}
}

var _ driver.Driver = (*Tab)(nil)

// Navigate loads the given URL in the tab.
func (t *Tab) Navigate(_ context.Context, url string) error {
	return chromedp.Run(t.ctx, chromedp.Navigate(url))
}

// URL returns the current page URL.
func (t *Tab) URL(_ context.Context) (string, error) {
	var url string
	if err := chromedp.Run(t.ctx, chromedp.Location(&url)); err != nil {
		return "", err
	}
	return url, nil
}

// Title returns the current page title.
func (t *Tab) Title(_ context.Context) (string, error) {
	var title string
	if err := chromedp.Run(t.ctx, chromedp.Title(&title)); err != nil {
		return "", err
	}
	return title, nil
}

// Visible reports whether the element matched by selector exists and
// is rendered: not display:none, not visibility:hidden, and occupying
// at least one client rect.
func (t *Tab) Visible(_ context.Context, selector string) (bool, error) {
	expr := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		if (!el) return false;
		const s = window.getComputedStyle(el);
		return s.display !== 'none' && s.visibility !== 'hidden' && el.getClientRects().length > 0;
	})()`, selector)
	var visible bool
	if err := chromedp.Run(t.ctx, chromedp.Evaluate(expr, &visible)); err != nil {
		return false, err
	}
	return visible, nil
}

// Enabled reports whether the element matched by selector exists and
// does not carry the disabled property.
func (t *Tab) Enabled(_ context.Context, selector string) (bool, error) {
	expr := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		return !!el && !el.disabled;
	})()`, selector)
	var enabled bool
	if err := chromedp.Run(t.ctx, chromedp.Evaluate(expr, &enabled)); err != nil {
		return false, err
	}
	return enabled, nil
}

// Text returns the text content of the element matched by selector,
// or an error if no element matches.
func (t *Tab) Text(_ context.Context, selector string) (string, error) {
	expr := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		return {found: !!el, text: el ? el.textContent : ''};
	})()`, selector)
	var res struct {
		Found bool   `json:"found"`
		Text  string `json:"text"`
	}
	if err := chromedp.Run(t.ctx, chromedp.Evaluate(expr, &res)); err != nil {
		return "", err
	}
	if !res.Found {
		return "", fmt.Errorf("driver/chromedp: no element matches %q", selector)
	}
	return res.Text, nil
}
