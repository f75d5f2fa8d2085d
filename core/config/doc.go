// Package config loads environment-driven settings into tagged structs.
//
// chainkit reads its decorator settings through this package: decorator.Config
// declares the CHAINKIT_* variables with caarlos0/env tags and
// decorator.LoadConfig calls Load on it.
//
//	cfg, err := decorator.LoadConfig()
//	if err != nil {
//		return err
//	}
//	decorators, err := decorator.Default(cfg, decorator.Deps{})
//
// Applications embedding an engine can declare their own settings the same way
// and fail fast at startup with MustLoad:
//
//	type PipelineConfig struct {
//		Workers  int           `env:"CHECKOUT_WORKERS" envDefault:"4"`
//		Deadline time.Duration `env:"CHECKOUT_DEADLINE" envDefault:"2s"`
//	}
//
//	var pc PipelineConfig
//	config.MustLoad(&pc)
//
// Load parses a given struct type once per process. Later calls for the same
// type copy the cached value, so changing CHAINKIT_* variables after the first
// LoadConfig has no effect. Tests that vary the environment load once per
// type or use their own struct.
//
// A .env file in the working directory is read before the first parse.
// Variables already set in the process environment take precedence.
package config
