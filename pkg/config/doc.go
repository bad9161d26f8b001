// Package config loads typed configuration from environment variables.
//
// Each configuration type is parsed once with caarlos0/env and cached for
// the lifetime of the process. A .env file in the working directory is
// loaded on first use.
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var srv ServerConfig
//	config.MustLoad(&srv)
//
// Tests use Parse with an explicit environment instead.
package config
