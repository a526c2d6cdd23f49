package midinative

import (
	"errors"
	"testing"

	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

func TestCheckQueuedSize(t *testing.T) {
	if err := checkQueuedSize(3, queueMessageCap); err != nil {
		t.Fatalf("checkQueuedSize(3) = %v, want nil", err)
	}
	if err := checkQueuedSize(queueMessageCap, queueMessageCap); err != nil {
		t.Fatalf("checkQueuedSize(cap) = %v, want nil", err)
	}

	// A coalesced sysex can outgrow the retrieval buffer; the reported
	// size must not be trusted for slicing.
	err := checkQueuedSize(queueMessageCap+1, queueMessageCap)
	if !errors.Is(err, contracts.ErrDriver) {
		t.Fatalf("checkQueuedSize(cap+1) = %v, want ErrDriver", err)
	}
}
