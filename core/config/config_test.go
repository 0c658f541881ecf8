package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmydush/businessos/core/config"
)

type cachedConfig struct {
	Name string `env:"CONFIG_TEST_NAME" envDefault:"formd"`
	Port int    `env:"CONFIG_TEST_PORT" envDefault:"8080"`
}

type requiredConfig struct {
	Secret string `env:"CONFIG_TEST_REQUIRED_SECRET,required"`
}

type badConfig struct {
	Port int `env:"CONFIG_TEST_BAD_PORT"`
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("CONFIG_TEST_NAME", "validator")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "validator", first.Name)
	assert.Equal(t, 8080, first.Port)

	t.Setenv("CONFIG_TEST_NAME", "changed")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoadErrors(t *testing.T) {
	var req requiredConfig
	require.ErrorIs(t, config.Load(&req), config.ErrParse)

	t.Setenv("CONFIG_TEST_BAD_PORT", "not-a-number")
	var bad badConfig
	require.ErrorIs(t, config.Load(&bad), config.ErrParse)

	require.ErrorIs(t, config.Load[cachedConfig](nil), config.ErrNilConfig)
}

func TestMustLoadPanics(t *testing.T) {
	type mustConfig struct {
		Value string `env:"CONFIG_TEST_MUST_VALUE,required"`
	}

	assert.Panics(t, func() {
		var cfg mustConfig
		config.MustLoad(&cfg)
	})
}
