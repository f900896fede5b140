package httperr

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/guardrail/pkg/logger"
)

// HandlerFunc is an HTTP handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Option configures Handle.
type Option func(*handlerConfig)

type handlerConfig struct {
	logger *slog.Logger
}

// WithLogger logs every returned error: 4xx at warn level, 5xx at error level.
func WithLogger(l *slog.Logger) Option {
	return func(c *handlerConfig) {
		c.logger = l
	}
}

// Handle adapts fn to an http.HandlerFunc. A returned error is written with
// Write; nothing is written when fn returns nil.
func Handle(fn HandlerFunc, opts ...Option) http.HandlerFunc {
	var cfg handlerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		p := FromError(err)
		if cfg.logger != nil {
			level := slog.LevelError
			if p.Status < http.StatusInternalServerError {
				level = slog.LevelWarn
			}
			cfg.logger.LogAttrs(r.Context(), level, "request rejected",
				logger.Component("httperr"),
				logger.Error(err),
				logger.Kind(p.Kind),
				slog.Int("status_code", p.Status),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
		}

		if werr := Write(w, err); werr != nil && cfg.logger != nil {
			cfg.logger.Error("failed to write problem response",
				logger.Component("httperr"),
				logger.Errors(err, werr),
			)
		}
	}
}
