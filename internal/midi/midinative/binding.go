//go:build cgo

// Package midinative wraps the RtMidi C interface. It is the single choke
// point where native failure signals are translated into the error
// taxonomy; no other package touches the FFI boundary.
package midinative

/*
#cgo LDFLAGS: -lrtmidi
#cgo linux LDFLAGS: -lasound -pthread
#cgo windows LDFLAGS: -luuid -lksuser -lwinmm -lole32
#cgo darwin LDFLAGS: -framework CoreServices -framework CoreAudio -framework CoreMIDI -framework CoreFoundation

#include <stdlib.h>
#include <stdint.h>
#include <rtmidi/rtmidi_c.h>

extern void goInputCallback(double ts, unsigned char *msg, size_t msgsz, void *arg);

static inline void inputTrampoline(double ts, const unsigned char *msg, size_t msgsz, void *arg) {
	goInputCallback(ts, (unsigned char *)msg, msgsz, arg);
}

static inline void installInputCallback(RtMidiInPtr in, uintptr_t id) {
	rtmidi_in_set_callback(in, inputTrampoline, (void *)id);
}
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// Device owns one native MIDI device, input or output. The native
// resource is destroyed exactly once via Destroy.
type Device struct {
	in       C.RtMidiInPtr
	out      C.RtMidiOutPtr
	ptr      C.RtMidiPtr
	freeOnce sync.Once
}

// check translates the device's status flag and message after a native
// call. Every native entry point reports failure this way.
func (d *Device) check() error {
	if d.ptr.ok {
		return nil
	}
	return contracts.FromNative(C.GoString(d.ptr.msg))
}

// CreateIn constructs a native MIDI input device.
func CreateIn(api contracts.API, clientName string, queueSizeLimit uint) (*Device, error) {
	name := C.CString(clientName)
	defer C.free(unsafe.Pointer(name))
	in := C.rtmidi_in_create(C.enum_RtMidiApi(api), name, C.uint(queueSizeLimit))
	d := &Device{in: in, ptr: C.RtMidiPtr(in)}
	if err := d.check(); err != nil {
		C.rtmidi_in_free(in)
		return nil, err
	}
	return d, nil
}

// CreateOut constructs a native MIDI output device.
func CreateOut(api contracts.API, clientName string) (*Device, error) {
	name := C.CString(clientName)
	defer C.free(unsafe.Pointer(name))
	out := C.rtmidi_out_create(C.enum_RtMidiApi(api), name)
	d := &Device{out: out, ptr: C.RtMidiPtr(out)}
	if err := d.check(); err != nil {
		C.rtmidi_out_free(out)
		return nil, err
	}
	return d, nil
}

// OpenPort opens a connection to the given port number.
func (d *Device) OpenPort(port uint, name string) error {
	p := C.CString(name)
	defer C.free(unsafe.Pointer(p))
	C.rtmidi_open_port(d.ptr, C.uint(port), p)
	return d.check()
}

// OpenVirtualPort creates a virtual port with the given name.
func (d *Device) OpenVirtualPort(name string) error {
	p := C.CString(name)
	defer C.free(unsafe.Pointer(p))
	C.rtmidi_open_virtual_port(d.ptr, p)
	return d.check()
}

// ClosePort closes an open connection, if one exists.
func (d *Device) ClosePort() error {
	C.rtmidi_close_port(d.ptr)
	return d.check()
}

// PortCount returns the number of available ports for this direction.
func (d *Device) PortCount() (uint, error) {
	n := C.rtmidi_get_port_count(d.ptr)
	if err := d.check(); err != nil {
		return 0, err
	}
	return uint(n), nil
}

// PortName returns the identifier of the given port number, using the
// two-call buffer-length protocol of the C interface.
func (d *Device) PortName(port uint) (string, error) {
	bufLen := C.int(0)
	C.rtmidi_get_port_name(d.ptr, C.uint(port), nil, &bufLen)
	if err := d.check(); err != nil {
		return "", err
	}
	if bufLen < 1 {
		return "", nil
	}

	buf := make([]byte, int(bufLen))
	p := (*C.char)(unsafe.Pointer(&buf[0]))
	C.rtmidi_get_port_name(d.ptr, C.uint(port), p, &bufLen)
	if err := d.check(); err != nil {
		return "", err
	}
	return string(buf[:bufLen-1]), nil
}

// CurrentAPI reports the backend the native library selected.
func (d *Device) CurrentAPI() (contracts.API, error) {
	var api C.enum_RtMidiApi
	if d.in != nil {
		api = C.rtmidi_in_get_current_api(d.ptr)
	} else {
		api = C.rtmidi_out_get_current_api(d.ptr)
	}
	if err := d.check(); err != nil {
		return contracts.APIUnspecified, err
	}
	return contracts.API(api), nil
}

// SetCallback installs the native callback, routing messages to the
// bridge slot registered under id. Only the id crosses the boundary.
func (d *Device) SetCallback(id uintptr) error {
	C.installInputCallback(d.in, C.uintptr_t(id))
	return d.check()
}

// CancelCallback removes the native callback, if one is installed.
func (d *Device) CancelCallback() error {
	C.rtmidi_in_cancel_callback(d.in)
	return d.check()
}

// IgnoreTypes controls native-side filtering of sysex, timing and active
// sensing messages.
func (d *Device) IgnoreTypes(sysex, timing, activeSense bool) error {
	C.rtmidi_in_ignore_types(d.in, C._Bool(sysex), C._Bool(timing), C._Bool(activeSense))
	return d.check()
}

// PopMessage returns the next queued input message and its delta time in
// seconds. A zero-length result means the queue was empty.
func (d *Device) PopMessage() (float64, []byte, error) {
	buf := make([]C.uchar, queueMessageCap)
	size := C.size_t(len(buf))
	delta := C.rtmidi_in_get_message(d.in, &buf[0], &size)
	if err := d.check(); err != nil {
		return 0, nil, err
	}
	if err := checkQueuedSize(int(size), len(buf)); err != nil {
		return 0, nil, err
	}
	data := make([]byte, int(size))
	for i, c := range buf[:size] {
		data[i] = byte(c)
	}
	return float64(delta), data, nil
}

// Send writes one message to the open output port.
func (d *Device) Send(data []byte) error {
	p := C.CBytes(data)
	defer C.free(p)
	C.rtmidi_out_send_message(d.out, (*C.uchar)(p), C.int(len(data)))
	return d.check()
}

// Destroy frees the native device. Freeing an input device joins the
// native delivery thread for that port. Idempotent.
func (d *Device) Destroy() {
	d.freeOnce.Do(func() {
		if d.in != nil {
			C.rtmidi_in_free(d.in)
		}
		if d.out != nil {
			C.rtmidi_out_free(d.out)
		}
	})
}

// CompiledAPIs enumerates the backends compiled into the linked library.
func CompiledAPIs() []contracts.API {
	n := C.rtmidi_get_compiled_api(nil, 0)
	if n <= 0 {
		return nil
	}
	capis := make([]C.enum_RtMidiApi, int(n))
	C.rtmidi_get_compiled_api(&capis[0], C.uint(n))
	apis := make([]contracts.API, 0, int(n))
	for _, capi := range capis {
		apis = append(apis, contracts.API(capi))
	}
	return apis
}

// APIDisplayName returns the native human-readable name for a backend.
func APIDisplayName(api contracts.API) string {
	return C.GoString(C.rtmidi_api_display_name(C.enum_RtMidiApi(api)))
}
