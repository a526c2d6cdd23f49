package midinative

import (
	"fmt"

	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// queueMessageCap bounds a single queued message; sysex payloads can be
// large, so this matches the native library's own maximum sysex buffer.
const queueMessageCap = 64 * 1024

// checkQueuedSize guards retrieval of a queued message. When a message is
// larger than the supplied buffer the native layer skips the copy but
// still reports the true size, so the buffer contents are not the
// message and slicing to the reported size would run past the buffer.
func checkQueuedSize(size, bufLen int) error {
	if size > bufLen {
		return fmt.Errorf("%w: queued message of %d bytes exceeds the %d byte retrieval buffer",
			contracts.ErrDriver, size, bufLen)
	}
	return nil
}
