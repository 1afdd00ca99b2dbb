package softgl

import "log/slog"

// Option configures a Driver.
type Option func(*options)

type options struct {
	cacheSize int
	logger    *slog.Logger
	maxNames  int
	renderer  string
	validate  bool
}

// DefaultRenderer is the GL_RENDERER string reported unless WithRenderer is
// given.
const DefaultRenderer = "softgl (naga WGSL software driver)"

func defaultOptions() options {
	return options{
		cacheSize: 64,
		logger:    slog.New(slog.DiscardHandler),
		renderer:  DefaultRenderer,
	}
}

// WithCacheSize sets how many compiled shader modules are kept for reuse.
// 0 disables the limit.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// WithLogger sets the logger. nil keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxNames limits the number of live names per object class. Allocations
// past the limit return 0, the way a real driver does when it runs out of
// memory.
func WithMaxNames(n int) Option {
	return func(o *options) {
		o.maxNames = n
	}
}

// WithRenderer overrides the GL_RENDERER string.
func WithRenderer(name string) Option {
	return func(o *options) {
		o.renderer = name
	}
}

// WithValidation runs naga's IR validator on every compiled module.
func WithValidation(enabled bool) Option {
	return func(o *options) {
		o.validate = enabled
	}
}
