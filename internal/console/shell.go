package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	msgIllegalMove    = "Please write number between 0 and 8, and not with a filled field"
	msgDraw           = "it's a draw!"
)

var (
	ErrExitRequested = errors.New("exit requested")
	ErrInputClosed   = errors.New("input closed before the game ended")
)

// inputLine is one line read from the operator, or the read error that ended the input.
type inputLine struct {
	text string
	err  error
}

// Result is the final state of a played game.
type Result struct {
	GameID string
	Status string
	Winner entity.Cell
	Turns  int
}

// Shell drives one game from line based input.
type Shell struct {
	logger *slog.Logger
	conf   config.Console

	game *tictactoe.Game
	in   *bufio.Reader
	out  io.Writer
}

func NewShell(logger *slog.Logger, conf config.Console, game *tictactoe.Game, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		logger: logger.With("component", "console", "gameID", game.ID),
		conf:   conf,
		game:   game,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Play - runs the read, validate, place loop until the game ends or the operator leaves.
// Canceling the context stops the game even while it waits for input.
func (that *Shell) Play(ctx context.Context) (Result, error) {
	log := that.logger.With("method", "Play")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan inputLine)
	go that.readLines(ctx, lines)

	result := Result{GameID: that.game.ID}

	if err := that.writeLine(that.conf.Title); err != nil {
		return result, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.writef("%s places\n", that.game.CurrentPlayer()); err != nil {
			return result, err
		}

		if err := RenderBoard(that.out, &that.game.Board); err != nil {
			return result, err
		}

		var line inputLine
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("game interrupted: %w", ctx.Err())
		case line = <-lines:
		}

		if errors.Is(line.err, io.EOF) {
			return result, ErrInputClosed
		}

		if line.err != nil {
			return result, fmt.Errorf("failed to read input: %w", line.err)
		}

		command, err := ParseCommand(line.text, that.conf.ExitCommands)
		if err != nil {
			log.Debug("malformed input", "error", err)

			if err = that.writeLine(err.Error()); err != nil {
				return result, err
			}

			continue
		}

		if command.Kind == CommandExit {
			log.Info("operator left the game", "turns", result.Turns)
			return result, ErrExitRequested
		}

		outcome, err := that.game.MakeTurn(command.Cell)
		if errors.Is(err, apperror.ErrInvalidCell) || errors.Is(err, apperror.ErrCellOccupied) {
			log.Debug("illegal move", "cell", command.Cell, "error", err)

			if err = that.writeLine(msgIllegalMove); err != nil {
				return result, err
			}

			continue
		}

		if err != nil {
			return result, fmt.Errorf("failed to make turn: %w", err)
		}

		result.Turns++
		log.Debug("turn made", "mark", outcome.Placed.String(), "cell", outcome.Cell)

		if err = RenderBoard(that.out, &that.game.Board); err != nil {
			return result, err
		}

		if that.game.IsFinished() {
			return that.finish(result, outcome)
		}
	}
}

// readLines - feeds lines of any length to Play until the input ends or ctx is done.
// A read in progress is left behind on cancellation, the process is expected to exit.
func (that *Shell) readLines(ctx context.Context, lines chan<- inputLine) {
	for {
		text, err := that.in.ReadString('\n')

		if text != "" || err == nil {
			select {
			case lines <- inputLine{text: text}:
			case <-ctx.Done():
				return
			}
		}

		if err != nil {
			select {
			case lines <- inputLine{err: err}:
			case <-ctx.Done():
			}

			return
		}
	}
}

func (that *Shell) finish(result Result, outcome tictactoe.Outcome) (Result, error) {
	result.Status = outcome.Status
	result.Winner = outcome.Winner

	that.logger.Info("game finished", "status", outcome.Status, "winner", outcome.Winner.String(), "turns", result.Turns)

	if outcome.Status == tictactoe.StatusWon {
		return result, that.writef("%s wins!\n", outcome.Winner)
	}

	return result, that.writeLine(msgDraw)
}

func (that *Shell) writeLine(line string) error {
	if _, err := fmt.Fprintln(that.out, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (that *Shell) writef(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
