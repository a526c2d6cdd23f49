//go:build !cgo

package midinative

import "github.com/leandrodaf/rtmidi/sdk/contracts"

// Stub implementation for builds without cgo; every operation reports
// that native MIDI support is unavailable.

type Device struct{}

func CreateIn(api contracts.API, clientName string, queueSizeLimit uint) (*Device, error) {
	return nil, contracts.ErrUnsupportedPlatform
}

func CreateOut(api contracts.API, clientName string) (*Device, error) {
	return nil, contracts.ErrUnsupportedPlatform
}

func (d *Device) OpenPort(port uint, name string) error { return contracts.ErrUnsupportedPlatform }

func (d *Device) OpenVirtualPort(name string) error { return contracts.ErrUnsupportedPlatform }

func (d *Device) ClosePort() error { return contracts.ErrUnsupportedPlatform }

func (d *Device) PortCount() (uint, error) { return 0, contracts.ErrUnsupportedPlatform }

func (d *Device) PortName(port uint) (string, error) { return "", contracts.ErrUnsupportedPlatform }

func (d *Device) CurrentAPI() (contracts.API, error) {
	return contracts.APIUnspecified, contracts.ErrUnsupportedPlatform
}

func (d *Device) SetCallback(id uintptr) error { return contracts.ErrUnsupportedPlatform }

func (d *Device) CancelCallback() error { return contracts.ErrUnsupportedPlatform }

func (d *Device) IgnoreTypes(sysex, timing, activeSense bool) error {
	return contracts.ErrUnsupportedPlatform
}

func (d *Device) PopMessage() (float64, []byte, error) {
	return 0, nil, contracts.ErrUnsupportedPlatform
}

func (d *Device) Send(data []byte) error { return contracts.ErrUnsupportedPlatform }

func (d *Device) Destroy() {}

func CompiledAPIs() []contracts.API { return nil }

func APIDisplayName(api contracts.API) string { return api.String() }
