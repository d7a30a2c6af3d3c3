// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package abide

import (
	"fmt"
	"testing"

	"github.com/abidelabs/abide/attempt"
	"github.com/stretchr/testify/assert"
)

func TestHandlerGroup(t *testing.T) {
	var evts []string
	var execs []*attempt.Execution
	h1 := &testHandler{seq: 1, evts: &evts, execs: &execs}
	h2 := &testHandler{seq: 2, evts: &evts, execs: &execs}
	g := &HandlerGroup{}
	t.Run("PushBack", func(t *testing.T) {
		assert.Panics(t, func() { g.PushBack(BeforeExecutionStart, nil) })
		assert.Panics(t, func() { g.PushBack(Event(123), h1) })
		assert.Panics(t, func() { g.PushBack(Event(-1), h1) })
		g.PushBack(BeforeExecutionStart, h1)
		g.PushBack(BeforeExecutionStart, h2)
		g.PushBack(AfterAttempt, h1)
	})
	t.Run("run", func(t *testing.T) {
		e1 := &attempt.Execution{Attempt: 1}
		e2 := &attempt.Execution{Attempt: 2}
		assert.Empty(t, evts)
		assert.Empty(t, execs)
		g.run(AfterWaitTimeout, e1)
		assert.Empty(t, evts)
		assert.Empty(t, execs)
		g.run(BeforeExecutionStart, e1)
		assert.Equal(t, []string{"1.BeforeExecutionStart", "2.BeforeExecutionStart"}, evts)
		assert.Equal(t, []*attempt.Execution{e1, e1}, execs)
		evts = evts[:0]
		execs = execs[:0]
		g.run(AfterAttempt, e2)
		assert.Equal(t, []string{"1.AfterAttempt"}, evts)
		assert.Equal(t, []*attempt.Execution{e2}, execs)
	})
	t.Run("run empty group", func(t *testing.T) {
		empty := &HandlerGroup{}
		assert.NotPanics(t, func() { empty.run(AfterAttempt, e()) })
	})
}

func TestHandlerFunc(t *testing.T) {
	var gotEvt Event
	var gotExec *attempt.Execution
	f := HandlerFunc(func(evt Event, e *attempt.Execution) {
		gotEvt = evt
		gotExec = e
	})
	e1 := e()
	f.Handle(AfterAttemptError, e1)
	assert.Equal(t, AfterAttemptError, gotEvt)
	assert.Same(t, e1, gotExec)
}

// e returns a fresh execution for handler plumbing tests.
func e() *attempt.Execution {
	return attempt.New(nil)
}

type testHandler struct {
	seq   int
	evts  *[]string
	execs *[]*attempt.Execution
}

func (h *testHandler) Handle(evt Event, e *attempt.Execution) {
	*h.evts = append(*h.evts, fmt.Sprintf("%d.%s", h.seq, evt))
	*h.execs = append(*h.execs, e)
}
