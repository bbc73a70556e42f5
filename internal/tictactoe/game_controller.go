package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

// Game ties one board to one turn tracker. The two stay separate, the board
// never knows whose turn it is.
type Game struct {
	ID     string             `json:"id"`
	Board  entity.Board       `json:"board"`
	Turn   entity.TurnTracker `json:"turn"`
	Status string             `json:"status"`
	Winner entity.Cell        `json:"winner"`
}

// Outcome describes the result of one accepted turn.
type Outcome struct {
	Placed entity.Cell
	Cell   int
	Status string
	Winner entity.Cell
	Line   [3]int
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  *entity.NewBoard(),
		Turn:   *entity.NewTurnTracker(),
		Status: StatusOngoing,
	}
}

// MakeTurn - places the mark of the current player into the cell.
func (that *Game) MakeTurn(cell int) (Outcome, error) {
	if that.IsFinished() {
		return Outcome{}, apperror.ErrGameFinished
	}

	if err := that.validateMove(cell); err != nil {
		return Outcome{}, fmt.Errorf("invalid turn: %w", err)
	}

	mark := that.Turn.Current()
	if err := that.Board.Place(cell, mark); err != nil {
		return Outcome{}, fmt.Errorf("failed to place mark: %w", err)
	}

	return that.updateGameStatus(cell, mark), nil
}

// validateMove - checks if the move is valid.
func (that *Game) validateMove(cell int) error {
	if that.Board.CanPlace(cell) {
		return nil
	}

	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
}

// updateGameStatus - checks the game status after a move. The winner is the
// mark that was just placed, the turn only moves on while the game continues.
func (that *Game) updateGameStatus(cell int, mark entity.Cell) Outcome {
	outcome := Outcome{Placed: mark, Cell: cell}

	switch _, line, won := that.Board.Winner(); {
	case won:
		that.Status = StatusWon
		that.Winner = mark
		outcome.Line = line
	case that.Board.CheckDraw():
		that.Status = StatusDraw
	default:
		that.Turn.FlipPlayer()
	}

	outcome.Status = that.Status
	outcome.Winner = that.Winner

	return outcome
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that *Game) CurrentPlayer() entity.Cell {
	return that.Turn.Current()
}
