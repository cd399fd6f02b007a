package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/config"
)

type envFileConfig struct {
	Str    string   `env:"INPUTKIT_TEST_STRING"`
	Int    int      `env:"INPUTKIT_TEST_INT"`
	List   []string `env:"INPUTKIT_TEST_LIST" envSeparator:","`
	Quoted string   `env:"INPUTKIT_TEST_QUOTED"`
	Unique string   `env:"INPUTKIT_TEST_UNIQUE"`
}

func unsetEnvFileVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"INPUTKIT_TEST_STRING", "INPUTKIT_TEST_INT", "INPUTKIT_TEST_LIST",
		"INPUTKIT_TEST_QUOTED", "INPUTKIT_TEST_UNIQUE",
	}
	for _, k := range keys {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
		config.ResetCache()
	})
	config.ResetCache()
}

func TestLoadEnv_CustomPath(t *testing.T) {
	unsetEnvFileVars(t)

	require.NoError(t, config.LoadEnv("testdata/.env.custom"))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "custom_value", cfg.Str)
	assert.Equal(t, 1234, cfg.Int)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, cfg.List)
	assert.Equal(t, "quoted value", cfg.Quoted)
	assert.Empty(t, cfg.Unique)
}

func TestLoadEnv_LaterFilesWin(t *testing.T) {
	unsetEnvFileVars(t)

	require.NoError(t, config.LoadEnv("testdata/.env.custom", "testdata/.env.override"))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "override_value", cfg.Str)
	assert.Equal(t, 1234, cfg.Int)
	assert.Equal(t, "unique_to_override", cfg.Unique)
}

func TestLoadEnv_Errors(t *testing.T) {
	err := config.LoadEnv("testdata/missing.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
}

func TestLoadEnv_DefaultFileIsOptional(t *testing.T) {
	assert.NoError(t, config.LoadEnv())
}
