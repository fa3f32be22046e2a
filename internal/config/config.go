package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Input  Input
	Log    Log
	Report Report

	Workers int `env:"SLCSP_WORKERS" envDefault:"1" validate:"gte=1,lte=1024"`
}

// Report holds the optional side outputs. Empty paths disable them.
type Report struct {
	DiagnosticsPath string `env:"SLCSP_DIAGNOSTICS_PATH"`
	MetricsPath     string `env:"SLCSP_METRICS_PATH"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("config validate: %w", err)
	}
	return nil
}
