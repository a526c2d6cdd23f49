package midi

import (
	"fmt"

	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// validateMessage checks raw MIDI wire bytes before any native call is
// made. It enforces the framing the wire format requires: a leading
// status byte, 7-bit data bytes, and EOX termination for system
// exclusive messages.
func validateMessage(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty message", contracts.ErrInvalidParameter)
	}
	if data[0] < 0x80 {
		return fmt.Errorf("%w: missing status byte (0x%02X)", contracts.ErrInvalidParameter, data[0])
	}

	if data[0] == 0xF0 {
		if len(data) < 2 || data[len(data)-1] != 0xF7 {
			return fmt.Errorf("%w: unterminated system exclusive message", contracts.ErrInvalidParameter)
		}
		for _, b := range data[1 : len(data)-1] {
			if b >= 0x80 {
				return fmt.Errorf("%w: status byte 0x%02X inside system exclusive payload", contracts.ErrInvalidParameter, b)
			}
		}
		return nil
	}

	for _, b := range data[1:] {
		if b >= 0x80 {
			return fmt.Errorf("%w: data byte 0x%02X has high bit set", contracts.ErrInvalidParameter, b)
		}
	}
	return nil
}
