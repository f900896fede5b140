package guardrail

import (
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/guardrail/pkg/config"
	"github.com/dmitrymomot/guardrail/pkg/logger"
)

// EnvPrefix is prepended to every Settings env tag.
const EnvPrefix = "GUARDRAIL_"

// ErrInvalidSettings is returned when Settings cannot produce a logger.
var ErrInvalidSettings = errors.New("guardrail: invalid settings")

// Settings is the file and environment driven part of the setup.
type Settings struct {
	Env           string `env:"ENV" yaml:"env"`
	Service       string `env:"SERVICE" yaml:"service"`
	LogLevel      string `env:"LOG_LEVEL" yaml:"log_level"`
	LogFormat     string `env:"LOG_FORMAT" yaml:"log_format"`
	LogViolations bool   `env:"LOG_VIOLATIONS" yaml:"log_violations"`

	// output is where the logger writes; stdout when nil.
	output io.Writer
}

// DefaultSettings: development environment, violations logged.
func DefaultSettings() Settings {
	return Settings{
		Env:           logger.EnvDevelopment,
		Service:       "guardrail",
		LogViolations: true,
	}
}

// LoadSettings starts from DefaultSettings and applies, in order, .env files,
// an optional YAML file (config.WithFile) and GUARDRAIL_* variables.
func LoadSettings(opts ...config.Option) (Settings, error) {
	s := DefaultSettings()
	all := append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&s, all...); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// WithOutput returns a copy of s whose logger writes to w.
func (s Settings) WithOutput(w io.Writer) Settings {
	s.output = w
	return s
}

// Logger builds the slog logger described by s. Level and format override
// the environment defaults when set.
func (s Settings) Logger() (*slog.Logger, error) {
	opts := []logger.Option{logger.WithEnvironment(s.Env, s.Service)}

	if s.LogLevel != "" {
		level, err := logger.ParseLevel(s.LogLevel)
		if err != nil {
			return nil, errors.Join(ErrInvalidSettings, err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if s.LogFormat != "" {
		format, err := logger.ParseFormat(s.LogFormat)
		if err != nil {
			return nil, errors.Join(ErrInvalidSettings, err)
		}
		opts = append(opts, logger.WithFormat(format))
	}
	if s.output != nil {
		opts = append(opts, logger.WithOutput(s.output))
	}

	return logger.New(opts...), nil
}
