package midi

// output is a MIDI output handle. The native send path executes on the
// caller's thread in every backend, so sends need only the handle mutex.
type output struct {
	port
}

func (o *output) Send(data []byte) error {
	if err := validateMessage(data); err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.guard(); err != nil {
		return err
	}
	if err := o.dev.Send(data); err != nil {
		o.log.Error("Failed to send MIDI message",
			o.log.Field().Int("bytes", len(data)),
			o.log.Field().Error("error", err))
		return err
	}
	return nil
}
