// Package config defines environment configuration structs and loaders.
package config

import (
	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	ServerEnvConfig
	PlotEnvConfig
}

func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ServerEnvConfig configures the layout HTTP server.
type ServerEnvConfig struct {
	Address       string `env:"SERVER_ADDRESS" envDefault:"127.0.0.1"`
	Port          int    `env:"SERVER_PORT" envDefault:"8080"`
	BodySizeLimit int    `env:"SERVER_BODY_LIMIT" envDefault:"1048576"`
}

// PlotEnvConfig holds default statistical parameters for plotting.
type PlotEnvConfig struct {
	Alpha        float64 `env:"CD_ALPHA" envDefault:"0.05"`
	TieTolerance float64 `env:"CD_TIE_TOLERANCE" envDefault:"0"`
}
