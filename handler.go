// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package abide

import (
	"github.com/abidelabs/abide/attempt"
)

// A HandlerGroup is a group of event handler chains which can be
// installed in a Checker or an Executor. The same group may be shared
// by both engines.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the event handler
// chain for a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("abide: nil handler")
	}
	if evt < BeforeExecutionStart || evt >= eventSentinel {
		panic("abide: invalid event")
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

func (g *HandlerGroup) run(evt Event, e *attempt.Execution) {
	i := int(evt)
	if i < len(g.handlers) {
		for _, h := range g.handlers[i] {
			h.Handle(evt, e)
		}
	}
}

// A Handler handles the occurrence of an event during a wait or retry
// invocation.
type Handler interface {
	Handle(Event, *attempt.Execution)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers. If f is a function with the appropriate
// signature, HandlerFunc(f) is a Handler that calls f.
type HandlerFunc func(Event, *attempt.Execution)

// Handle calls f(evt, e).
func (f HandlerFunc) Handle(evt Event, e *attempt.Execution) {
	f(evt, e)
}
