// Package midi provides safe handles over the native realtime MIDI
// library: port enumeration, input with queued or callback delivery,
// output, and virtual port creation.
package midi

import (
	"github.com/leandrodaf/rtmidi/internal/bridge"
	"github.com/leandrodaf/rtmidi/internal/midi/midinative"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

const (
	defaultInputClientName  = "RtMidi Input Client"
	defaultOutputClientName = "RtMidi Output Client"
	defaultQueueSizeLimit   = 100
)

// NewInput creates a MIDI input handle with the specified options.
//
// Returns:
//   - contracts.In: an input port handle.
//   - error: an error, if any occurred while initializing the native device.
func NewInput(opts ...contracts.Option) (contracts.In, error) {
	options := applyDefaultOptions(defaultInputClientName, opts...)

	dev, err := midinative.CreateIn(options.API, options.ClientName, options.QueueSizeLimit)
	if err != nil {
		return nil, err
	}
	options.Logger.Info("MIDI input client created",
		options.Logger.Field().String("client", options.ClientName))

	slot := bridge.NewSlot(options.Logger)
	return &input{
		port: port{dev: dev, log: options.Logger},
		slot: slot,
		id:   bridge.Register(slot),
	}, nil
}

// NewOutput creates a MIDI output handle with the specified options.
//
// Returns:
//   - contracts.Out: an output port handle.
//   - error: an error, if any occurred while initializing the native device.
func NewOutput(opts ...contracts.Option) (contracts.Out, error) {
	options := applyDefaultOptions(defaultOutputClientName, opts...)

	dev, err := midinative.CreateOut(options.API, options.ClientName)
	if err != nil {
		return nil, err
	}
	options.Logger.Info("MIDI output client created",
		options.Logger.Field().String("client", options.ClientName))

	return &output{port: port{dev: dev, log: options.Logger}}, nil
}

// CompiledAPIs enumerates the backends compiled into the native library.
func CompiledAPIs() []contracts.API {
	return midinative.CompiledAPIs()
}

// APIDisplayName returns the native human-readable name for a backend.
func APIDisplayName(api contracts.API) string {
	return midinative.APIDisplayName(api)
}
