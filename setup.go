package guardrail

import (
	"log/slog"

	"github.com/dmitrymomot/guardrail/pkg/guard"
	"github.com/dmitrymomot/guardrail/pkg/validate"
)

// Config is adjusted by the functions passed to Setup.
type Config struct {
	// ErrorFactory builds the errors returned by the guard. Nil keeps the
	// default *guard.ArgumentError.
	ErrorFactory guard.ErrorFactory
	// Logger receives guard violations at warn level and validation failures
	// at debug level. Nil disables logging.
	Logger *slog.Logger
}

// Services holds the configured evaluators. Both are safe for concurrent use
// and meant to be shared.
type Services struct {
	Guard     *guard.Guard
	Validator *validate.Validator
}

// Setup builds the evaluators. Configure functions run in order on a zero
// Config: no custom error factory and no logger.
func Setup(configure ...func(*Config)) Services {
	var cfg Config
	for _, fn := range configure {
		if fn != nil {
			fn(&cfg)
		}
	}

	return Services{
		Guard: guard.New(
			guard.WithErrorFactory(cfg.ErrorFactory),
			guard.WithLogger(cfg.Logger),
		),
		Validator: validate.New(validate.WithLogger(cfg.Logger)),
	}
}

// SetupFromEnv loads Settings from the environment and builds the evaluators.
// Configure functions run after the settings are applied and may override
// the logger they produced.
func SetupFromEnv(configure ...func(*Config)) (Services, error) {
	settings, err := LoadSettings()
	if err != nil {
		return Services{}, err
	}
	return SetupWithSettings(settings, configure...)
}

// SetupWithSettings builds the evaluators from already loaded settings.
func SetupWithSettings(s Settings, configure ...func(*Config)) (Services, error) {
	var l *slog.Logger
	if s.LogViolations {
		var err error
		if l, err = s.Logger(); err != nil {
			return Services{}, err
		}
	}

	fns := make([]func(*Config), 0, len(configure)+1)
	fns = append(fns, func(c *Config) { c.Logger = l })
	fns = append(fns, configure...)
	return Setup(fns...), nil
}

// MustSetupFromEnv works like SetupFromEnv but panics on error.
func MustSetupFromEnv(configure ...func(*Config)) Services {
	svc, err := SetupFromEnv(configure...)
	if err != nil {
		panic(err)
	}
	return svc
}
