package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults without a config file", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, "Tic Tac Toe", conf.Console.Title)
		assert.Equal(t, []string{"exit", "quit"}, conf.Console.ExitCommands)
	})

	t.Run("Values from the yml file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nconsole:\n  title: Noughts and Crosses\n  exit-commands:\n    - bye\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading the config
		conf, err := Load(path)

		// Then: the file values win over defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "Noughts and Crosses", conf.Console.Title)
		assert.Equal(t, []string{"bye"}, conf.Console.ExitCommands)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: the level set in the environment
		t.Setenv("TICTACTOE_LOG_LEVEL", "error")

		// When: loading without a file
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment value is used
		require.NoError(t, err)
		assert.Equal(t, "error", conf.LogLevel)
	})

	t.Run("Broken file", func(t *testing.T) {
		// Given: a file that is not yaml
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [unterminated"), 0o600))

		// Then: Load fails and MustLoad panics
		_, err := Load(path)
		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}
