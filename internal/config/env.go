package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the environment. Zero values leave the
// configuration untouched.
type Env struct {
	LogMode string  `env:"RADIOACTIVE_LOG_MODE"`
	Workers int     `env:"RADIOACTIVE_WORKERS"`
	FloorBq float64 `env:"RADIOACTIVE_FLOOR_BQ"`
	Verbose bool    `env:"RADIOACTIVE_VERBOSE"`
}

func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

func (c *Config) ApplyEnv(e Env) {
	if e.LogMode != "" {
		c.LogMode = e.LogMode
	}
	if e.Workers > 0 {
		c.Workers = e.Workers
	}
	if e.FloorBq > 0 {
		c.Grid.FloorBq = e.FloorBq
	}
	if e.Verbose {
		c.Verbose = true
	}
}
