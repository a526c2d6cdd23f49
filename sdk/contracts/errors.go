package contracts

import (
	"errors"
	"fmt"
	"strings"
)

// Error definitions for MIDI port and native backend failures. Native
// failures are translated into this closed set at the FFI boundary; use
// errors.Is to test against the sentinels.
var (
	// ErrNoDevicesFound indicates that no MIDI ports are available.
	ErrNoDevicesFound = errors.New("no MIDI devices found")
	// ErrInvalidPort indicates a port number out of range.
	ErrInvalidPort = errors.New("invalid MIDI port")
	// ErrNullDevice indicates an operation on an invalid native device.
	ErrNullDevice = errors.New("invalid use of null MIDI device")
	// ErrInvalidParameter indicates malformed message bytes or arguments.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDriver indicates a native backend failure; the wrapped message
	// carries the backend's description.
	ErrDriver = errors.New("MIDI driver error")
	// ErrUnspecified covers native failures with no recognizable cause.
	ErrUnspecified = errors.New("unspecified MIDI error")
	// ErrPortClosed indicates an operation on a closed port handle.
	ErrPortClosed = errors.New("MIDI port is closed")
	// ErrUnsupportedPlatform indicates a build without native MIDI support.
	ErrUnsupportedPlatform = errors.New("MIDI is not supported in this build")
)

// Backend prefixes the native library uses in its error messages, e.g.
// "MidiInAlsa::openPort: ...".
var driverPrefixes = []string{"midiin", "midiout", "alsa", "jack", "core", "winmm"}

// FromNative translates a native error message into the error taxonomy.
// The native C interface reports failures as a flag plus a descriptive
// string, so classification keys on the message vocabulary the library
// actually emits. The original text is preserved in the wrapped error.
func FromNative(msg string) error {
	if msg == "" {
		return ErrUnspecified
	}
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "no midi") && strings.Contains(lower, "found"):
		return fmt.Errorf("%w: %s", ErrNoDevicesFound, msg)
	case strings.Contains(lower, "portnumber") || strings.Contains(lower, "port number"):
		return fmt.Errorf("%w: %s", ErrInvalidPort, msg)
	case strings.Contains(lower, "null"):
		return fmt.Errorf("%w: %s", ErrNullDevice, msg)
	case strings.Contains(lower, "invalid parameter") ||
		(strings.Contains(lower, "argument") && strings.Contains(lower, "invalid")):
		return fmt.Errorf("%w: %s", ErrInvalidParameter, msg)
	}
	for _, p := range driverPrefixes {
		if strings.Contains(lower, p) {
			return fmt.Errorf("%w: %s", ErrDriver, msg)
		}
	}
	return fmt.Errorf("%w: %s", ErrUnspecified, msg)
}
