// Package config loads configuration structs from a YAML file, a .env file and
// environment variables, in that order of increasing precedence.
//
// Environment variables are bound with caarlos0/env struct tags; the YAML file
// uses yaml.v3 tags:
//
//	type Settings struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info" yaml:"log_level"`
//	}
//
//	var s Settings
//	err := config.Load(&s,
//	    config.WithFile("guardrail.yaml"),
//	    config.WithPrefix("GUARDRAIL_"),
//	)
//
// The default .env file in the working directory is read once per process
// and a missing file is not an error. WithEnvFiles names explicit files,
// which must exist.
//
// An envDefault tag is applied whenever the variable is unset and therefore
// overrides the YAML file. Put defaults on the struct before calling Load
// when a field can also come from YAML.
package config
