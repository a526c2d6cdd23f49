package contracts

import (
	"errors"
	"testing"
)

func TestFromNativeClassification(t *testing.T) {
	cases := []struct {
		msg  string
		want error
	}{
		{"MidiInAlsa::openPort: no MIDI input sources found!", ErrNoDevicesFound},
		{"MidiOutCore::openPort: no MIDI output destinations found!", ErrNoDevicesFound},
		{"MidiInCore::openPort: the 'portNumber' argument (5) is invalid.", ErrInvalidPort},
		{"a null RtMidi device was passed to the function", ErrNullDevice},
		{"MidiOutWinMM::sendMessage: message argument is invalid!", ErrInvalidParameter},
		{"MidiInAlsa::initialize: error creating ALSA sequencer client object.", ErrDriver},
		{"MidiOutJack::openPort: JACK server not running?", ErrDriver},
		{"something inscrutable happened", ErrUnspecified},
		{"", ErrUnspecified},
	}

	for _, c := range cases {
		got := FromNative(c.msg)
		if !errors.Is(got, c.want) {
			t.Errorf("FromNative(%q) = %v, want %v", c.msg, got, c.want)
		}
	}
}

func TestFromNativePreservesMessage(t *testing.T) {
	const msg = "MidiInAlsa::openPort: the 'portNumber' argument (9999) is invalid."
	got := FromNative(msg)
	if got.Error() == ErrInvalidPort.Error() {
		t.Fatalf("native text was not preserved: %v", got)
	}
}

func TestAPIString(t *testing.T) {
	if APILinuxALSA.String() != "alsa" {
		t.Fatalf("APILinuxALSA = %q", APILinuxALSA.String())
	}
	if API(99).String() != "unknown" {
		t.Fatalf("API(99) = %q", API(99).String())
	}
}
