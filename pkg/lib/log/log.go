// Package log provides the logging interface for the Tavor SDK.
//
// The SDK accepts any implementation of [Logger]. Use [Noop] to disable
// logging completely, or [NewLogrus] to plug an existing logrus logger.
//
// To integrate with your application's logger, implement the [Logger] interface:
//
//	type myLogger struct{}
//
//	func (l myLogger) Infof(format string, args ...any)    { slog.Info(fmt.Sprintf(format, args...)) }
//	func (l myLogger) Warningf(format string, args ...any) { slog.Warn(fmt.Sprintf(format, args...)) }
//	func (l myLogger) Errorf(format string, args ...any)   { slog.Error(fmt.Sprintf(format, args...)) }
//	func (l myLogger) Debugf(format string, args ...any)   { slog.Debug(fmt.Sprintf(format, args...)) }
//	// ... remaining methods
package log

import (
	"github.com/sirupsen/logrus"

	"github.com/tavor-dev/tavor-go/internal/log"
	loglogrus "github.com/tavor-dev/tavor-go/internal/log/logrus"
)

// Logger is the interface that loggers must implement for the SDK.
//
// It supports structured logging through [Kv] values and context propagation.
// For most use cases, only the format methods (Infof, Warningf, Errorf, Debugf)
// need meaningful implementations.
type Logger = log.Logger

// Kv is a helper type for structured logging key-value pairs.
type Kv = log.Kv

// Noop is a logger that discards all log output.
var Noop Logger = log.Noop

// NewLogrus returns a [Logger] backed by a logrus entry.
func NewLogrus(l *logrus.Entry) Logger {
	return loglogrus.NewLogrus(l)
}
