package glw

import "log/slog"

// Option configures a Context during creation.
//
// Example:
//
//	c := glw.NewContext(drv, glw.WithErrorCheck(true))
type Option func(*options)

// options holds optional configuration for Context creation.
type options struct {
	logger     *slog.Logger
	errorCheck bool
	labels     bool
}

func defaultOptions() options {
	return options{
		logger: nil, // package logger at creation time
	}
}

// WithErrorCheck makes the Context call glGetError after every driver call.
// Errors are logged at warn level and returned as *DriverError by the
// operations that return an error. Off by default.
func WithErrorCheck(enabled bool) Option {
	return func(o *options) {
		o.errorCheck = enabled
	}
}

// WithLogger sets the logger for one Context, overriding SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithLabels makes the Context attach a debug label (glObjectLabel) to every
// object it creates. The label is the object's kind and name, e.g.
// "Buffer 3" or "Vertex shader 7".
func WithLabels(enabled bool) Option {
	return func(o *options) {
		o.labels = enabled
	}
}
