// Package bridge carries incoming MIDI messages from the native library's
// realtime delivery thread to a caller-registered handler. The native
// thread's lifetime is owned entirely by the native library, so the only
// synchronization point is the guarded handler slot: delivery holds it
// shared for one invocation, registration and teardown hold it
// exclusively. Closing the slot therefore waits out any in-flight
// delivery and blocks all future ones.
package bridge

import (
	"fmt"
	"sync"

	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// Slot is the callback registration for a single input port. At most one
// handler is active at a time; Set atomically replaces it.
type Slot struct {
	mu     sync.RWMutex
	fn     contracts.Handler
	closed bool
	logger contracts.Logger
}

// NewSlot creates an empty slot. Messages delivered while no handler is
// registered are silently dropped.
func NewSlot(logger contracts.Logger) *Slot {
	return &Slot{logger: logger}
}

// Set installs fn as the active handler, replacing any previous one. It
// serializes with delivery, so no message is ever observed by two handler
// generations. Setting a nil handler is equivalent to Clear.
func (s *Slot) Set(fn contracts.Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.fn = fn
}

// Clear removes the active handler.
func (s *Slot) Clear() {
	s.Set(nil)
}

// Close makes the slot terminal. It blocks until any in-flight delivery
// has returned; afterwards no handler state is reachable from the native
// thread. Close is idempotent.
func (s *Slot) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.fn = nil
}

// Deliver invokes the active handler with m. It runs on the native
// library's delivery thread and must never let a handler failure unwind
// into native code: panics are recovered and reported through the logger,
// and delivery continues normally for subsequent messages. With no
// handler registered, or after Close, the message is dropped.
func (s *Slot) Deliver(m contracts.Message) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed || s.fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("MIDI handler panicked; message dropped",
				s.logger.Field().String("panic", fmt.Sprint(r)),
				s.logger.Field().Int("bytes", len(m.Data)))
		}
	}()
	s.fn(m)
}
