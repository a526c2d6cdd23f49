package contracts

// Message is a single MIDI message as delivered by the native library.
type Message struct {
	Delta float64 // Delta is the time in seconds since the previous message.
	Data  []byte  // Data holds the raw MIDI wire bytes (status + data bytes).
}

// Handler receives incoming MIDI messages. It is invoked on a realtime
// thread owned by the native library, concurrently with the caller's own
// code. The Message is an owned copy; the handler may retain it. A handler
// must not call methods on the input port it is registered with.
type Handler func(Message)

// Port defines the operations shared by input and output ports.
type Port interface {
	// OpenPort opens a connection to the MIDI port with the given
	// enumeration number. The name labels the connection.
	OpenPort(port uint, name string) error
	// OpenVirtualPort creates a virtual port to which other software
	// clients can connect (CoreMIDI, JACK and ALSA only).
	OpenVirtualPort(name string) error
	// Close releases the native resources. It is idempotent and
	// irreversible; every other operation on a closed port returns
	// ErrPortClosed. Closing an input port blocks until any in-flight
	// handler invocation has returned.
	Close() error
	// PortCount returns the number of ports currently available.
	PortCount() (uint, error)
	// PortName returns the identifier of the given port number.
	PortName(port uint) (string, error)
	// Ports lists the names of all available ports, indexed by port number.
	Ports() ([]string, error)
	// API reports the backend the native library selected for this port.
	API() (API, error)
}

// In is a realtime MIDI input port. Incoming messages are either queued
// for retrieval with Message or delivered immediately to a registered
// Handler.
type In interface {
	Port
	// SetCallback registers h as the receiver for incoming messages,
	// atomically replacing any previous handler. Register the callback
	// immediately after opening the port to avoid messages accumulating
	// in the queue. A nil handler is equivalent to CancelCallback.
	SetCallback(h Handler) error
	// CancelCallback removes the registered handler. Subsequent messages
	// are written to the queue again.
	CancelCallback() error
	// IgnoreTypes controls whether system exclusive, timing and active
	// sensing messages are dropped during input. All three are ignored
	// by default.
	IgnoreTypes(sysex, timing, activeSense bool) error
	// Message pops the next queued message. It returns immediately; an
	// empty Data slice means no message was available.
	Message() (Message, error)
}

// Out is a MIDI output port. Messages are sent immediately; no timing
// functionality is provided.
type Out interface {
	Port
	// Send writes a single message to the open port. The bytes are
	// validated before any native call; malformed messages return
	// ErrInvalidParameter.
	Send(data []byte) error
}
