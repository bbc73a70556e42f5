package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
}

// NewRootCommand creates the tictactoe command. Without a subcommand it plays a game.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "tictactoe",
		Short:         "Two player tic-tac-toe in the terminal",
		Long:          "Two players take turns entering a cell number from 0 to 8. Type exit or quit to leave at any time.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(opts, cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "./config.yml", "path to the config file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error), overrides the config")

	cmd.AddCommand(NewPlayCommand(opts))

	return cmd
}

// NewPlayCommand creates the play command.
func NewPlayCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play one game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(opts, cmd)
		},
	}
}

func runPlay(opts *RootOptions, cmd *cobra.Command) error {
	conf := config.MustLoad(opts.ConfigPath)

	if opts.LogLevel != "" {
		conf.LogLevel = opts.LogLevel
	}

	logger := NewLogger(cmd.ErrOrStderr(), conf.LogLevel)

	if err := app.RunApp(cmd.Context(), logger, conf, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

// NewLogger - JSON logger on w, stdout stays free for the board.
func NewLogger(w io.Writer, logLevel string) *slog.Logger {
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
