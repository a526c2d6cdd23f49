package midi

import (
	"github.com/leandrodaf/rtmidi/internal/logger"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// applyDefaultOptions sets default values for ClientOptions if not
// explicitly provided.
//
// clientName string: the default client name for this port direction.
// opts ...contracts.Option: A variadic list of option functions that can modify ClientOptions.
//
// Returns:
//   - contracts.ClientOptions: A structure containing the finalized client options with defaults applied.
func applyDefaultOptions(clientName string, opts ...contracts.Option) contracts.ClientOptions {
	options := &contracts.ClientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Set defaults if options are not provided
	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel
	}
	if options.ClientName == "" {
		options.ClientName = clientName
	}
	if options.QueueSizeLimit == 0 {
		options.QueueSizeLimit = defaultQueueSizeLimit
	}

	options.Logger.SetLevel(options.LogLevel)
	return *options
}
