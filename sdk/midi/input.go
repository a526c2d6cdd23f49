package midi

import (
	gomidi "gitlab.com/gomidi/midi/v2"

	"github.com/leandrodaf/rtmidi/internal/bridge"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// input is a MIDI input handle. Incoming messages arrive on a realtime
// thread owned by the native library; the bridge slot is the only state
// that thread can reach, and closing the handle closes the slot before
// the native device is freed.
type input struct {
	port
	slot        *bridge.Slot
	id          uintptr
	callbackSet bool
}

func (i *input) SetCallback(h contracts.Handler) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.guard(); err != nil {
		return err
	}
	if h == nil {
		return i.cancelCallbackLocked()
	}

	i.slot.Set(i.wrap(h))
	if !i.callbackSet {
		if err := i.dev.SetCallback(i.id); err != nil {
			i.slot.Clear()
			return err
		}
		i.callbackSet = true
	}
	i.log.Debug("MIDI callback registered")
	return nil
}

// wrap adds per-message debug logging around the caller's handler.
func (i *input) wrap(h contracts.Handler) contracts.Handler {
	return func(m contracts.Message) {
		i.log.Debug("MIDI message received",
			i.log.Field().Float64("delta", m.Delta),
			i.log.Field().String("message", gomidi.Message(m.Data).String()))
		h(m)
	}
}

func (i *input) CancelCallback() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.guard(); err != nil {
		return err
	}
	return i.cancelCallbackLocked()
}

func (i *input) cancelCallbackLocked() error {
	if !i.callbackSet {
		i.slot.Clear()
		return nil
	}
	// Remove the native callback first so no new delivery starts, then
	// clear the slot.
	if err := i.dev.CancelCallback(); err != nil {
		return err
	}
	i.callbackSet = false
	i.slot.Clear()
	return nil
}

func (i *input) IgnoreTypes(sysex, timing, activeSense bool) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.guard(); err != nil {
		return err
	}
	return i.dev.IgnoreTypes(sysex, timing, activeSense)
}

func (i *input) Message() (contracts.Message, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.guard(); err != nil {
		return contracts.Message{}, err
	}
	delta, data, err := i.dev.PopMessage()
	if err != nil {
		return contracts.Message{}, err
	}
	return contracts.Message{Delta: delta, Data: data}, nil
}

// Close tears down the handle. Teardown order matters: cancel the native
// callback so no new delivery starts, close the bridge slot (which waits
// for any in-flight handler invocation to return), close the native port,
// free the device (joining the native delivery thread), and only then
// drop the dispatch registration.
func (i *input) Close() error {
	i.closeOnce.Do(func() {
		i.mu.Lock()
		defer i.mu.Unlock()
		i.closed = true

		if i.callbackSet {
			if err := i.dev.CancelCallback(); err != nil {
				i.closeErr = err
			}
			i.callbackSet = false
		}
		i.slot.Close()

		if err := i.dev.ClosePort(); err != nil && i.closeErr == nil {
			i.closeErr = err
		}
		i.dev.Destroy()
		bridge.Unregister(i.id)
		i.log.Debug("MIDI input closed")
	})
	return i.closeErr
}
