package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// ZapLogger implements the Logger contract on top of Uber's zap. The
// level is atomic: log runs on the native delivery thread while SetLevel
// may be called from any goroutine.
type ZapLogger struct {
	logger *zap.Logger
	level  atomic.Int32
}

func newZapLogger(logger *zap.Logger, level contracts.LogLevel) *ZapLogger {
	z := &ZapLogger{logger: logger}
	z.level.Store(int32(level))
	return z
}

// NewZapLogger creates a production zap logger.
func NewZapLogger() contracts.Logger {
	logger, _ := zap.NewProduction()
	return newZapLogger(logger, contracts.InfoLevel)
}

// NewNopLogger creates a logger that discards everything. Used as the
// default in tests and available to callers who want silence.
func NewNopLogger() contracts.Logger {
	return newZapLogger(zap.NewNop(), contracts.ErrorLevel)
}

// Info logs a message at the INFO level.
func (z *ZapLogger) Info(msg string, fields ...contracts.Field) {
	z.log(zapcore.InfoLevel, msg, fields...)
}

// Error logs a message at the ERROR level.
func (z *ZapLogger) Error(msg string, fields ...contracts.Field) {
	z.log(zapcore.ErrorLevel, msg, fields...)
}

// Debug logs a message at the DEBUG level.
func (z *ZapLogger) Debug(msg string, fields ...contracts.Field) {
	z.log(zapcore.DebugLevel, msg, fields...)
}

// Warn logs a message at the WARN level.
func (z *ZapLogger) Warn(msg string, fields ...contracts.Field) {
	z.log(zapcore.WarnLevel, msg, fields...)
}

// Field returns a new instance of Field.
func (z *ZapLogger) Field() contracts.Field {
	return &zapField{}
}

// SetLevel sets the logging level.
func (z *ZapLogger) SetLevel(level contracts.LogLevel) {
	z.level.Store(int32(level))
}

func zapLevel(l contracts.LogLevel) zapcore.Level {
	switch l {
	case contracts.DebugLevel:
		return zapcore.DebugLevel
	case contracts.WarnLevel:
		return zapcore.WarnLevel
	case contracts.ErrorLevel:
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

func (z *ZapLogger) log(level zapcore.Level, msg string, fields ...contracts.Field) {
	if level < zapLevel(contracts.LogLevel(z.level.Load())) {
		return
	}

	zapFields := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		if f, ok := field.(*zapField); ok {
			zapFields = append(zapFields, zap.Any(f.key, f.value))
		}
	}

	switch level {
	case zapcore.InfoLevel:
		z.logger.Info(msg, zapFields...)
	case zapcore.ErrorLevel:
		z.logger.Error(msg, zapFields...)
	case zapcore.DebugLevel:
		z.logger.Debug(msg, zapFields...)
	case zapcore.WarnLevel:
		z.logger.Warn(msg, zapFields...)
	}
}

// zapField implements contracts.Field.
type zapField struct {
	key   string
	value interface{}
}

func (f *zapField) Bool(key string, val bool) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Int(key string, val int) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Uint(key string, val uint) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Float64(key string, val float64) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) String(key string, val string) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Error(key string, val error) contracts.Field {
	return &zapField{key, val}
}
