// Package config holds the runtime settings of the flightnav command.
package config

import (
	"log/slog"
	"runtime"

	"lintang/flightnav/domain"
	"lintang/flightnav/pkg/flightnetwork"
	"lintang/flightnav/pkg/util"
)

type Config struct {
	// Capacity is the maximum number of airports of the network.
	Capacity int `yaml:"capacity" validate:"gte=1"`
	// Workers is the number of goroutines answering matrix queries.
	Workers int `yaml:"workers" validate:"gte=1,lte=256"`
	// Criterion is the accumulator minimized by route queries.
	Criterion string `yaml:"criterion" validate:"oneof=distance duration cost"`
	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	// Metrics prints the collected metrics after the command.
	Metrics bool `yaml:"metrics"`
}

func Default() *Config {
	return &Config{
		Capacity:  flightnetwork.DefaultCapacity,
		Workers:   min(runtime.NumCPU(), 8),
		Criterion: "distance",
		LogLevel:  "warn",
	}
}

// Validate returns a domain.ErrBadParamInput error listing every invalid
// setting.
func (c *Config) Validate() error {
	validate, trans := util.NewValidator()
	if err := validate.Struct(c); err != nil {
		return domain.WrapErrorf(util.TranslateError(err, trans), domain.ErrBadParamInput, "invalid configuration")
	}
	return nil
}

// Level maps LogLevel to a slog level. Unknown values fall back to warn.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
