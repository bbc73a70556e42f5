package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "tictactoe", cmd.Use)

	playCmd, _, err := cmd.Find([]string{"play"})
	require.NoError(t, err)
	assert.Equal(t, "play", playCmd.Name())
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Equal(t, "./config.yml", configFlag.DefValue)

	levelFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, levelFlag)
	assert.Equal(t, "", levelFlag.DefValue)
}

func TestPlayCommand(t *testing.T) {
	for _, args := range [][]string{{}, {"play"}} {
		// Given: a scripted game and no config file
		cmd := NewRootCommand()
		out := &bytes.Buffer{}
		logs := &bytes.Buffer{}

		cmd.SetIn(strings.NewReader("0\n3\n1\n4\n2\n"))
		cmd.SetOut(out)
		cmd.SetErr(logs)
		cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yml"), "--log-level", "info"))

		// When: executing the command
		err := cmd.ExecuteContext(context.Background())

		// Then: the game is played to the end and logged
		require.NoError(t, err)
		assert.Contains(t, out.String(), "X wins!")
		assert.Contains(t, logs.String(), `"msg":"Game over"`)
	}
}

func TestPlayCommand_BrokenConfig(t *testing.T) {
	// Given: a config file that is not yaml
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("log-level: [unterminated"), 0o600))

	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"play", "--config", path})

	// Then: loading panics like at startup, main recovers it
	assert.Panics(t, func() { _ = cmd.ExecuteContext(context.Background()) })
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}

	logger := NewLogger(buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
