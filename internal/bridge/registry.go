package bridge

import (
	"sync"

	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// The dispatch registry maps small integer ids to slots. The id is what
// crosses the FFI boundary as the callback's user-data pointer; a Go
// pointer must never be handed to native code.
var (
	regMu  sync.RWMutex
	nextID uintptr
	slots  = map[uintptr]*Slot{}
)

// Register adds s to the registry and returns its dispatch id.
func Register(s *Slot) uintptr {
	regMu.Lock()
	defer regMu.Unlock()
	nextID++
	slots[nextID] = s
	return nextID
}

// Unregister removes the slot with the given id. Call only after the
// native callback has been cancelled and the slot closed; a dispatch for
// an unregistered id is dropped.
func Unregister(id uintptr) {
	regMu.Lock()
	defer regMu.Unlock()
	delete(slots, id)
}

// Dispatch routes a message to the slot registered under id.
func Dispatch(id uintptr, m contracts.Message) {
	regMu.RLock()
	s := slots[id]
	regMu.RUnlock()
	if s != nil {
		s.Deliver(m)
	}
}
