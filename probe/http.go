// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package probe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abidelabs/abide"
	"github.com/abidelabs/abide/poll"
	"github.com/abidelabs/abide/retry"
	"github.com/abidelabs/abide/transient"
	"github.com/go-resty/resty/v2"
)

// HTTP builds condition predicates and retryable operations over an
// HTTP endpoint. It owns no policy of its own: the closures it hands
// out are run by a Checker or an Executor, which decide how often and
// how long to try.
//
// HTTP is safe for concurrent use by multiple goroutines, as the
// underlying resty client is.
type HTTP struct {
	client *resty.Client
	base   string
}

// NewHTTP returns an HTTP probe that issues requests through client,
// resolving relative paths against baseURL. A nil client gets a fresh
// resty.New(); an empty baseURL leaves paths untouched.
func NewHTTP(client *resty.Client, baseURL string) *HTTP {
	if client == nil {
		client = resty.New()
	}
	return &HTTP{
		client: client,
		base:   strings.TrimSuffix(baseURL, "/"),
	}
}

// Client returns the underlying resty client, for installing
// middleware or tuning transport settings.
func (h *HTTP) Client() *resty.Client {
	return h.client
}

func (h *HTTP) url(path string) string {
	if h.base == "" {
		return path
	}
	return h.base + "/" + strings.TrimPrefix(path, "/")
}

// A StatusError reports a response with an unwanted HTTP status. It is
// the error operations built by HTTP produce for non-2xx responses,
// and the error the Retryable classifier sorts by status code.
type StatusError struct {
	// StatusCode is the numeric HTTP status code of the response.
	StatusCode int
	// Status is the full status line, e.g. "503 Service Unavailable".
	Status string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("probe: unexpected status %s", e.Status)
}

// Reachable returns a predicate that is satisfied when a GET of path
// yields any 2xx response. A non-2xx response counts as "not yet";
// transport errors are reported to the polling loop, which logs and
// swallows them.
//
// Reachable is the typical readiness check for a service that is
// still starting.
func (h *HTTP) Reachable(path string) poll.Predicate {
	return func(ctx context.Context) (bool, error) {
		resp, err := h.client.R().SetContext(ctx).Get(h.url(path))
		if err != nil {
			return false, err
		}
		return resp.IsSuccess(), nil
	}
}

// Status returns a predicate that is satisfied when a GET of path
// yields a response with one of the given status codes.
func (h *HTTP) Status(path string, codes ...int) poll.Predicate {
	cs := make([]int, len(codes))
	copy(cs, codes)
	return func(ctx context.Context) (bool, error) {
		resp, err := h.client.R().SetContext(ctx).Get(h.url(path))
		if err != nil {
			return false, err
		}
		for _, c := range cs {
			if resp.StatusCode() == c {
				return true, nil
			}
		}
		return false, nil
	}
}

// BodyContains returns a predicate that is satisfied when a GET of
// path yields a 2xx response whose body contains substr.
func (h *HTTP) BodyContains(path, substr string) poll.Predicate {
	return func(ctx context.Context) (bool, error) {
		resp, err := h.client.R().SetContext(ctx).Get(h.url(path))
		if err != nil {
			return false, err
		}
		return resp.IsSuccess() && strings.Contains(resp.String(), substr), nil
	}
}

// Get returns an operation that issues a GET to path and fails with a
// *StatusError on any non-2xx response.
func (h *HTTP) Get(path string) abide.Operation {
	return func(ctx context.Context) error {
		resp, err := h.client.R().SetContext(ctx).Get(h.url(path))
		return responseErr(resp, err)
	}
}

// Post returns an operation that issues a POST to path with the given
// content type and body, failing with a *StatusError on any non-2xx
// response. The body may be anything resty accepts: a string, []byte,
// io.Reader, or a value to be marshalled per the content type.
func (h *HTTP) Post(path, contentType string, body any) abide.Operation {
	return func(ctx context.Context) error {
		resp, err := h.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", contentType).
			SetBody(body).
			Post(h.url(path))
		return responseErr(resp, err)
	}
}

// Put returns an operation that issues a PUT to path with the given
// content type and body, failing with a *StatusError on any non-2xx
// response.
func (h *HTTP) Put(path, contentType string, body any) abide.Operation {
	return func(ctx context.Context) error {
		resp, err := h.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", contentType).
			SetBody(body).
			Put(h.url(path))
		return responseErr(resp, err)
	}
}

// Delete returns an operation that issues a DELETE to path and fails
// with a *StatusError on any non-2xx response.
func (h *HTTP) Delete(path string) abide.Operation {
	return func(ctx context.Context) error {
		resp, err := h.client.R().SetContext(ctx).Delete(h.url(path))
		return responseErr(resp, err)
	}
}

func responseErr(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return &StatusError{StatusCode: resp.StatusCode(), Status: resp.Status()}
	}
	return nil
}

// Retryable constructs a retry classifier for HTTP operations. A
// *StatusError is retryable exactly when its status code is in codes;
// any other status propagates immediately. Failures that are not
// status errors are retryable when package transient considers them
// transient, so connection resets and timeouts get another attempt
// while, say, a malformed URL does not.
func Retryable(codes ...int) retry.ClassifierFunc {
	cs := make([]int, len(codes))
	copy(cs, codes)
	return func(err error) retry.Disposition {
		var se *StatusError
		if errors.As(err, &se) {
			for _, c := range cs {
				if se.StatusCode == c {
					return retry.Retryable
				}
			}
			return retry.NonRetryable
		}
		if transient.Is(err) {
			return retry.Retryable
		}
		return retry.NonRetryable
	}
}

// DefaultRetryable is a classifier suitable for common HTTP use: it
// retries 429 (Too Many Requests), 502 (Bad Gateway), 503 (Service
// Unavailable), and 504 (Gateway Timeout), plus transient transport
// errors.
var DefaultRetryable = Retryable(429, 502, 503, 504)
