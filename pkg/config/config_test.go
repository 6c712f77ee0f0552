package config_test

import (
	"log/slog"
	"testing"

	"lintang/flightnav/domain"
	"lintang/flightnav/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Capacity)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		desc   string
		modify func(*config.Config)
	}{
		{desc: "zero capacity", modify: func(c *config.Config) { c.Capacity = 0 }},
		{desc: "no workers", modify: func(c *config.Config) { c.Workers = 0 }},
		{desc: "too many workers", modify: func(c *config.Config) { c.Workers = 1000 }},
		{desc: "unknown criterion", modify: func(c *config.Config) { c.Criterion = "speed" }},
		{desc: "unknown log level", modify: func(c *config.Config) { c.LogLevel = "verbose" }},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			cfg := config.Default()
			tc.modify(cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, domain.ErrBadParamInput)
		})
	}

	t.Run("every failure is reported", func(t *testing.T) {
		cfg := config.Default()
		cfg.Capacity = 0
		cfg.Criterion = "speed"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Capacity")
		assert.Contains(t, err.Error(), "Criterion")
	})
}

func TestLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		cfg := config.Default()
		cfg.LogLevel = in
		assert.Equal(t, want, cfg.Level(), in)
	}
}
