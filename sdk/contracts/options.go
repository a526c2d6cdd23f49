package contracts

// ClientOptions defines the configuration options for a MIDI port handle.
type ClientOptions struct {
	Logger         Logger   // Logger for logging events and errors.
	LogLevel       LogLevel // Level of logging to use.
	API            API      // Native backend to use; APIUnspecified picks the first working one.
	ClientName     string   // Name used to group ports created by the application.
	QueueSizeLimit uint     // Maximum number of queued input messages when no callback is set.
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the port handle.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the port handle.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithAPI selects a specific native backend instead of the default search
// order (ALSA, JACK on Linux; CoreMIDI, JACK on macOS).
func WithAPI(api API) Option {
	return func(opts *ClientOptions) {
		opts.API = api
	}
}

// WithClientName sets the client name used to label ports created by the
// application.
func WithClientName(name string) Option {
	return func(opts *ClientOptions) {
		opts.ClientName = name
	}
}

// WithQueueSizeLimit sets the size of the input message queue. When the
// limit is reached, further incoming messages are dropped by the native
// library.
func WithQueueSizeLimit(size uint) Option {
	return func(opts *ClientOptions) {
		opts.QueueSizeLimit = size
	}
}
