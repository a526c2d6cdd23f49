package midi

import (
	"errors"
	"testing"

	"github.com/leandrodaf/rtmidi/internal/bridge"
	"github.com/leandrodaf/rtmidi/internal/logger"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// fakeDevice records the native calls the handles make.
type fakeDevice struct {
	calls        []string
	closePortErr error
	portCount    uint
}

func (f *fakeDevice) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeDevice) OpenPort(port uint, name string) error { f.record("OpenPort"); return nil }
func (f *fakeDevice) OpenVirtualPort(name string) error     { f.record("OpenVirtualPort"); return nil }
func (f *fakeDevice) ClosePort() error                      { f.record("ClosePort"); return f.closePortErr }
func (f *fakeDevice) PortCount() (uint, error)              { return f.portCount, nil }
func (f *fakeDevice) PortName(port uint) (string, error)    { return "Fake Port", nil }
func (f *fakeDevice) CurrentAPI() (contracts.API, error)    { return contracts.APIDummy, nil }
func (f *fakeDevice) SetCallback(id uintptr) error          { f.record("SetCallback"); return nil }
func (f *fakeDevice) CancelCallback() error                 { f.record("CancelCallback"); return nil }
func (f *fakeDevice) IgnoreTypes(sysex, timing, activeSense bool) error {
	return nil
}
func (f *fakeDevice) PopMessage() (float64, []byte, error) { return 0, nil, nil }
func (f *fakeDevice) Send(data []byte) error               { f.record("Send"); return nil }
func (f *fakeDevice) Destroy()                             { f.record("Destroy") }

func (f *fakeDevice) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func newFakeInput(dev *fakeDevice) *input {
	slot := bridge.NewSlot(logger.NewNopLogger())
	return &input{
		port: port{dev: dev, log: logger.NewNopLogger()},
		slot: slot,
		id:   bridge.Register(slot),
	}
}

func TestOutputDoubleCloseReturnsFirstResult(t *testing.T) {
	closeErr := errors.New("backend rejected close")
	dev := &fakeDevice{closePortErr: closeErr}
	out := &output{port: port{dev: dev, log: logger.NewNopLogger()}}

	if err := out.Close(); !errors.Is(err, closeErr) {
		t.Fatalf("first Close = %v, want %v", err, closeErr)
	}
	if err := out.Close(); !errors.Is(err, closeErr) {
		t.Fatalf("second Close = %v, want the cached first result %v", err, closeErr)
	}
	if n := dev.count("ClosePort"); n != 1 {
		t.Fatalf("ClosePort called %d times, want 1", n)
	}
	if n := dev.count("Destroy"); n != 1 {
		t.Fatalf("Destroy called %d times, want 1", n)
	}
}

func TestInputCloseTeardownOrder(t *testing.T) {
	dev := &fakeDevice{}
	in := newFakeInput(dev)

	var got int
	if err := in.SetCallback(func(contracts.Message) { got++ }); err != nil {
		t.Fatalf("SetCallback: %v", err)
	}
	bridge.Dispatch(in.id, contracts.Message{Data: []byte{0x90, 60, 100}})
	if got != 1 {
		t.Fatalf("handler saw %d messages before close, want 1", got)
	}

	if err := in.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	want := []string{"SetCallback", "CancelCallback", "ClosePort", "Destroy"}
	if len(dev.calls) != len(want) {
		t.Fatalf("native calls = %v, want %v", dev.calls, want)
	}
	for i, name := range want {
		if dev.calls[i] != name {
			t.Fatalf("native calls = %v, want %v", dev.calls, want)
		}
	}

	// No delivery can reach the handler once Close has returned.
	bridge.Dispatch(in.id, contracts.Message{Data: []byte{0x90, 60, 100}})
	if got != 1 {
		t.Fatalf("handler saw %d messages after close, want 1", got)
	}

	if err := in.Close(); err != nil {
		t.Fatalf("second Close = %v, want nil", err)
	}
	if n := dev.count("Destroy"); n != 1 {
		t.Fatalf("Destroy called %d times after double close, want 1", n)
	}
}

func TestOpenPortInvalidIndex(t *testing.T) {
	dev := &fakeDevice{portCount: 2}
	out := &output{port: port{dev: dev, log: logger.NewNopLogger()}}

	if err := out.OpenPort(5, "test"); !errors.Is(err, contracts.ErrInvalidPort) {
		t.Fatalf("OpenPort(5) with 2 ports = %v, want ErrInvalidPort", err)
	}
	if n := dev.count("OpenPort"); n != 0 {
		t.Fatalf("native OpenPort called %d times for an invalid index, want 0", n)
	}
}

func TestPortsEnumeration(t *testing.T) {
	dev := &fakeDevice{portCount: 3}
	out := &output{port: port{dev: dev, log: logger.NewNopLogger()}}

	names, err := out.Ports()
	if err != nil {
		t.Fatalf("Ports: %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("Ports returned %d names, want 3", len(names))
	}
}
