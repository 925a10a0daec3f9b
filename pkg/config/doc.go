// Package config loads environment variables into typed configuration
// structs using struct tags.
//
// A .env file in the working directory is loaded once, if present, before
// the first parse. Parsing is delegated to caarlos0/env, so the usual tags
// apply:
//
//	type LoggerConfig struct {
//	    Level  string `env:"LOG_LEVEL" envDefault:"info"`
//	    Format string `env:"LOG_FORMAT" envDefault:"json"`
//	}
//
//	var cfg LoggerConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// MustLoad panics instead of returning an error, for configuration that is
// required at startup.
package config
