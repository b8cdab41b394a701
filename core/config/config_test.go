package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gateway/core/config"
)

func TestLoad(t *testing.T) {
	t.Run("reads_environment", func(t *testing.T) {
		type envConfig struct {
			Name string `env:"CONFIG_TEST_NAME"`
			Port int    `env:"CONFIG_TEST_PORT" envDefault:"8080"`
		}

		t.Setenv("CONFIG_TEST_NAME", "gateway")

		var cfg envConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "gateway", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("required_variable_missing", func(t *testing.T) {
		type strictConfig struct {
			Token string `env:"CONFIG_TEST_TOKEN,required"`
		}

		var cfg strictConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CONFIG_TEST_TOKEN")
	})

	t.Run("caches_per_type", func(t *testing.T) {
		type cachedConfig struct {
			Value string `env:"CONFIG_TEST_CACHED"`
		}

		t.Setenv("CONFIG_TEST_CACHED", "first")
		var first cachedConfig
		require.NoError(t, config.Load(&first))
		require.Equal(t, "first", first.Value)

		// The environment is read once per type; later loads see the
		// cached value even after the variable changes.
		t.Setenv("CONFIG_TEST_CACHED", "second")
		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Value)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics_on_failure", func(t *testing.T) {
		type brokenConfig struct {
			Missing string `env:"CONFIG_TEST_MUST_MISSING,required"`
		}

		assert.Panics(t, func() {
			var cfg brokenConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("loads_defaults", func(t *testing.T) {
		type defaultConfig struct {
			Retries int `env:"CONFIG_TEST_RETRIES" envDefault:"3"`
		}

		var cfg defaultConfig
		assert.NotPanics(t, func() {
			config.MustLoad(&cfg)
		})
		assert.Equal(t, 3, cfg.Retries)
	})
}
