// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package playwright adapts a playwright-go page to the driver.Driver
// interface, so conditions over a Playwright-automated browser can be
// polled by a Checker.
//
// Playwright has waiting machinery of its own; the point of going
// through abide instead is a uniform wait vocabulary across browser
// conditions, HTTP probes, and arbitrary predicates, with shared
// policies, logging, and event handlers.
package playwright

import (
	"context"

	"github.com/abidelabs/abide/driver"
	"github.com/playwright-community/playwright-go"
)

// Page wraps a playwright.Page as a driver.Driver.
//
// The playwright-go API does not accept contexts, so the context
// passed to each method is not consulted; the polling loop's deadline
// still bounds the overall wait. Each state query is issued with a
// short Playwright-side timeout so a single check cannot stall a
// polling loop for long.
type Page struct {
	page playwright.Page
}

// New returns a driver.Driver backed by the given Playwright page.
func New(page playwright.Page) *Page {
	if page == nil {
		panic("driver/playwright: nil page")
	}
	return &Page{page: page}
}

var _ driver.Driver = (*Page)(nil)

// queryTimeout bounds individual element state queries. Checks are
// meant to sample current state and return; waiting is the polling
// loop's job.
const queryTimeout = 1000.0 // milliseconds

// Navigate loads the given URL and waits for the load event.
func (p *Page) Navigate(_ context.Context, url string) error {
	_, err := p.page.Goto(url)
	return err
}

// URL returns the current page URL.
func (p *Page) URL(_ context.Context) (string, error) {
	return p.page.URL(), nil
}

// Title returns the current page title.
func (p *Page) Title(_ context.Context) (string, error) {
	return p.page.Title()
}

// Visible reports whether the element matched by selector is visible.
// A selector matching nothing reports false rather than an error.
func (p *Page) Visible(_ context.Context, selector string) (bool, error) {
	return p.page.Locator(selector).IsVisible()
}

// Enabled reports whether the element matched by selector is enabled.
func (p *Page) Enabled(_ context.Context, selector string) (bool, error) {
	return p.page.Locator(selector).IsEnabled(playwright.LocatorIsEnabledOptions{
		Timeout: playwright.Float(queryTimeout),
	})
}

// Text returns the text content of the element matched by selector.
func (p *Page) Text(_ context.Context, selector string) (string, error) {
	text, err := p.page.Locator(selector).TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(queryTimeout),
	})
	if err != nil {
		return "", err
	}
	return text, nil
}
