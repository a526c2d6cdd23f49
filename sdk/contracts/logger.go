package contracts

// LogLevel represents the severity level for logging.
type LogLevel int

const (
	// InfoLevel indicates informational messages that highlight the progress of the application.
	InfoLevel LogLevel = iota
	// DebugLevel indicates debug messages that are useful for developers to troubleshoot issues.
	DebugLevel
	// ErrorLevel indicates error messages that represent serious issues that need attention.
	ErrorLevel
	// WarnLevel indicates potentially harmful situations that should be monitored.
	WarnLevel
)

// Field represents a single structured log field.
type Field interface {
	Bool(key string, val bool) Field
	Int(key string, val int) Field
	Uint(key string, val uint) Field
	Float64(key string, val float64) Field
	String(key string, val string) Field
	Error(key string, val error) Field
}

// Logger provides methods for logging messages at different levels.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)

	Field() Field

	SetLevel(level LogLevel)
}
