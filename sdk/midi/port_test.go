package midi

import (
	"errors"
	"testing"

	"github.com/leandrodaf/rtmidi/internal/bridge"
	"github.com/leandrodaf/rtmidi/internal/logger"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// Handles below are constructed directly in the closed state, so no
// native device is ever touched.

func closedInput() *input {
	return &input{
		port: port{log: logger.NewNopLogger(), closed: true},
		slot: bridge.NewSlot(logger.NewNopLogger()),
	}
}

func closedOutput() *output {
	return &output{port: port{log: logger.NewNopLogger(), closed: true}}
}

func TestClosedInputOperations(t *testing.T) {
	in := closedInput()

	ops := map[string]func() error{
		"OpenPort":        func() error { return in.OpenPort(0, "test") },
		"OpenVirtualPort": func() error { return in.OpenVirtualPort("test") },
		"SetCallback":     func() error { return in.SetCallback(func(contracts.Message) {}) },
		"CancelCallback":  func() error { return in.CancelCallback() },
		"IgnoreTypes":     func() error { return in.IgnoreTypes(false, false, false) },
		"PortCount": func() error {
			_, err := in.PortCount()
			return err
		},
		"PortName": func() error {
			_, err := in.PortName(0)
			return err
		},
		"Ports": func() error {
			_, err := in.Ports()
			return err
		},
		"API": func() error {
			_, err := in.API()
			return err
		},
		"Message": func() error {
			_, err := in.Message()
			return err
		},
	}

	for name, op := range ops {
		if err := op(); !errors.Is(err, contracts.ErrPortClosed) {
			t.Errorf("%s on closed input = %v, want ErrPortClosed", name, err)
		}
	}
}

func TestClosedOutputSend(t *testing.T) {
	out := closedOutput()

	if err := out.Send([]byte{0x90, 60, 100}); !errors.Is(err, contracts.ErrPortClosed) {
		t.Fatalf("Send on closed output = %v, want ErrPortClosed", err)
	}

	// Validation runs before the closed check: malformed bytes report
	// the malformation even on a closed handle.
	if err := out.Send(nil); !errors.Is(err, contracts.ErrInvalidParameter) {
		t.Fatalf("Send(nil) = %v, want ErrInvalidParameter", err)
	}
}

func TestSendMalformedPerformsNoNativeCall(t *testing.T) {
	// dev is nil: any native call would dereference it and panic, so a
	// clean validation error proves the native layer was never reached.
	out := &output{port: port{log: logger.NewNopLogger()}}

	for _, data := range [][]byte{nil, {}, {0x40}, {0x90, 0x85, 100}} {
		if err := out.Send(data); !errors.Is(err, contracts.ErrInvalidParameter) {
			t.Errorf("Send(%v) = %v, want ErrInvalidParameter", data, err)
		}
	}
}
