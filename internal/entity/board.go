package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const BoardSize = 9

// WinCombos - rows, columns and diagonals of the board in row-major indexes.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 3x3 grid stored row by row.
type Board [BoardSize]Cell

// NewBoard - creates a board with every cell empty.
func NewBoard() *Board {
	return &Board{}
}

// CanPlace - checks that the cell exists and is still empty.
func (that *Board) CanPlace(cell int) bool {
	if cell < 0 || cell >= len(that) {
		return false
	}

	return that[cell] == EmptyCell
}

// Place - writes the mark into the cell without looking at what was there before.
// Callers are expected to ask CanPlace first.
func (that *Board) Place(cell int, mark Cell) error {
	if cell < 0 || cell >= len(that) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	that[cell] = mark

	return nil
}

// Cell returns the content of the cell, out of range cells read as empty.
func (that *Board) Cell(cell int) Cell {
	if cell < 0 || cell >= len(that) {
		return EmptyCell
	}

	return that[cell]
}

// CheckWin - reports whether any line holds three equal marks.
func (that *Board) CheckWin() bool {
	_, _, ok := that.Winner()
	return ok
}

// Winner - returns the mark and the line of the first completed combo.
func (that *Board) Winner() (Cell, [3]int, bool) {
	for _, combo := range WinCombos {
		first := that[combo[0]]
		if first == EmptyCell {
			continue
		}

		if that[combo[1]] == first && that[combo[2]] == first {
			return first, combo, true
		}
	}

	return EmptyCell, [3]int{}, false
}

// CheckDraw - reports a full board. A full board may still contain a win,
// so CheckWin has to be asked first.
func (that *Board) CheckDraw() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}
