package contracts

// API identifies a native MIDI backend. The values mirror the enum of the
// wrapped library, so they can cross the FFI boundary unchanged.
type API uint32

const (
	// APIUnspecified lets the native library pick the first working backend.
	APIUnspecified API = iota
	// APIMacOSXCore is the macOS CoreMIDI backend.
	APIMacOSXCore
	// APILinuxALSA is the Advanced Linux Sound Architecture backend.
	APILinuxALSA
	// APIUnixJack is the JACK low-latency MIDI server backend.
	APIUnixJack
	// APIWindowsMM is the Microsoft Multimedia MIDI backend.
	APIWindowsMM
	// APIDummy is a compilable but non-functional backend.
	APIDummy
)

func (a API) String() string {
	switch a {
	case APIUnspecified:
		return "unspecified"
	case APIMacOSXCore:
		return "coremidi"
	case APILinuxALSA:
		return "alsa"
	case APIUnixJack:
		return "jack"
	case APIWindowsMM:
		return "winmm"
	case APIDummy:
		return "dummy"
	}
	return "unknown"
}
