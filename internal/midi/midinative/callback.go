//go:build cgo

package midinative

// The //export entry point lives in its own file: a preamble alongside an
// exported function may only contain declarations.

/*
#include <stddef.h>
*/
import "C"

import (
	"unsafe"

	"github.com/leandrodaf/rtmidi/internal/bridge"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// goInputCallback is invoked by the trampoline on the native delivery
// thread. The message bytes are copied out of the native buffer before
// dispatch, so no handler can ever retain native memory.
//
//export goInputCallback
func goInputCallback(ts C.double, msg *C.uchar, msgsz C.size_t, arg unsafe.Pointer) {
	data := C.GoBytes(unsafe.Pointer(msg), C.int(msgsz))
	bridge.Dispatch(uintptr(arg), contracts.Message{Delta: float64(ts), Data: data})
}
