package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"

	"github.com/leandrodaf/rtmidi/internal/logger"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
	"github.com/leandrodaf/rtmidi/sdk/midi"
)

func main() {
	log := logger.NewZapLogger()

	for _, api := range midi.CompiledAPIs() {
		fmt.Printf("Compiled API: %s (%s)\n", api, midi.APIDisplayName(api))
	}

	input, err := midi.NewInput(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
		contracts.WithClientName("Example Input"),
	)
	if err != nil {
		log.Error("Failed to initialize MIDI input", log.Field().Error("error", err))
		return
	}
	defer input.Close()

	ports, err := input.Ports()
	if err != nil || len(ports) == 0 {
		log.Error("No MIDI input ports found", log.Field().Error("error", err))
		return
	}
	for i, name := range ports {
		fmt.Printf("Input port #%d: %s\n", i, name)
	}

	if err = input.OpenPort(0, "Example"); err != nil {
		log.Error("Failed to open MIDI input port", log.Field().Error("error", err))
		return
	}

	// Register the callback immediately after opening the port so
	// messages do not accumulate in the queue.
	if err = input.SetCallback(func(m contracts.Message) {
		fmt.Printf("%.4f %s\n", m.Delta, gomidi.Message(m.Data))
	}); err != nil {
		log.Error("Failed to set MIDI callback", log.Field().Error("error", err))
		return
	}

	output, err := midi.NewOutput(
		contracts.WithLogger(log),
		contracts.WithClientName("Example Output"),
	)
	if err != nil {
		log.Error("Failed to initialize MIDI output", log.Field().Error("error", err))
		return
	}
	defer output.Close()

	if outPorts, err := output.Ports(); err == nil && len(outPorts) > 0 {
		if err = output.OpenPort(0, "Example"); err == nil {
			output.Send([]byte{0xC0, 5})      // program change
			output.Send([]byte{0x90, 64, 90}) // note on
			time.Sleep(500 * time.Millisecond)
			output.Send([]byte{0x80, 64, 40}) // note off
		}
	}

	fmt.Println("Listening for MIDI messages... Press Ctrl+C to exit.")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}
