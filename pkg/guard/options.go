package guard

import "log/slog"

// Option configures a Guard.
type Option func(*Guard)

// WithErrorFactory sets the default error factory. Nil factories are ignored.
func WithErrorFactory(f ErrorFactory) Option {
	return func(g *Guard) {
		if f != nil {
			g.factory = f
		}
	}
}

// WithLogger enables warn-level logging of violations.
func WithLogger(l *slog.Logger) Option {
	return func(g *Guard) {
		g.logger = l
	}
}

// CallOption customises a single Check call.
type CallOption func(*call)

type call struct {
	factory ErrorFactory
	message string
}

// WithError overrides the error factory for this call only.
func WithError(f ErrorFactory) CallOption {
	return func(c *call) {
		if f != nil {
			c.factory = f
		}
	}
}

// WithMessage replaces the default message for this call.
func WithMessage(message string) CallOption {
	return func(c *call) {
		c.message = message
	}
}
