package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// RunApp - plays one game on the given streams.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	game := tictactoe.NewGame(uuid.NewString())
	log.Info("Starting game", "gameID", game.ID)

	shell := console.NewShell(logger, conf.Console, game, in, out)

	result, err := shell.Play(ctx)
	if errors.Is(err, console.ErrExitRequested) {
		log.Info("Game abandoned", "gameID", result.GameID, "turns", result.Turns)
		return nil
	}

	if err != nil {
		return fmt.Errorf("game %s failed: %w", game.ID, err)
	}

	log.Info("Game over", "gameID", result.GameID, "status", result.Status, "winner", result.Winner.String())

	return nil
}
