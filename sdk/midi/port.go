package midi

import (
	"fmt"
	"sync"

	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// nativeDevice is the surface the handles drive, satisfied by
// *midinative.Device. Tests substitute a fake.
type nativeDevice interface {
	OpenPort(port uint, name string) error
	OpenVirtualPort(name string) error
	ClosePort() error
	PortCount() (uint, error)
	PortName(port uint) (string, error)
	CurrentAPI() (contracts.API, error)
	SetCallback(id uintptr) error
	CancelCallback() error
	IgnoreTypes(sysex, timing, activeSense bool) error
	PopMessage() (float64, []byte, error)
	Send(data []byte) error
	Destroy()
}

// port holds the state shared by input and output handles: the native
// device, the handle mutex, and the closed flag. The native device has
// single-owner semantics, so the handle is not copied after creation.
type port struct {
	mu        sync.Mutex
	dev       nativeDevice
	log       contracts.Logger
	closed    bool
	closeOnce sync.Once
	closeErr  error
}

// guard must be called with the mutex held.
func (p *port) guard() error {
	if p.closed {
		return contracts.ErrPortClosed
	}
	return nil
}

func (p *port) OpenPort(portNumber uint, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.guard(); err != nil {
		return err
	}

	// Port numbering is system-assigned and changes as devices come and
	// go, so the index is validated against the current count.
	count, err := p.dev.PortCount()
	if err != nil {
		return err
	}
	if portNumber >= count {
		return fmt.Errorf("%w: port %d of %d", contracts.ErrInvalidPort, portNumber, count)
	}

	if err := p.dev.OpenPort(portNumber, name); err != nil {
		p.log.Error("Failed to open MIDI port",
			p.log.Field().Uint("port", portNumber),
			p.log.Field().Error("error", err))
		return err
	}
	p.log.Info("MIDI port opened", p.log.Field().Uint("port", portNumber))
	return nil
}

func (p *port) OpenVirtualPort(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.guard(); err != nil {
		return err
	}
	if err := p.dev.OpenVirtualPort(name); err != nil {
		return err
	}
	p.log.Info("Virtual MIDI port opened", p.log.Field().String("name", name))
	return nil
}

func (p *port) PortCount() (uint, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.guard(); err != nil {
		return 0, err
	}
	return p.dev.PortCount()
}

func (p *port) PortName(portNumber uint) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.guard(); err != nil {
		return "", err
	}
	return p.dev.PortName(portNumber)
}

func (p *port) Ports() ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.guard(); err != nil {
		return nil, err
	}

	count, err := p.dev.PortCount()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for i := uint(0); i < count; i++ {
		name, err := p.dev.PortName(i)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func (p *port) API() (contracts.API, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.guard(); err != nil {
		return contracts.APIUnspecified, err
	}
	return p.dev.CurrentAPI()
}

// Close releases the native resources of an output handle. Input handles
// shadow this with their callback teardown.
func (p *port) Close() error {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.closed = true
		if err := p.dev.ClosePort(); err != nil {
			p.closeErr = err
		}
		p.dev.Destroy()
		p.log.Debug("MIDI port closed")
	})
	return p.closeErr
}
