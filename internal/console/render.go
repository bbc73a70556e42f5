package console

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	borderLine    = "======"
	separatorLine = "------"
)

// RenderBoard - writes the board as three rows framed by border lines.
func RenderBoard(w io.Writer, board *entity.Board) error {
	if _, err := fmt.Fprintln(w, borderLine); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	for row := 0; row < 3; row++ {
		if row > 0 {
			if _, err := fmt.Fprintln(w, separatorLine); err != nil {
				return fmt.Errorf("failed to write board: %w", err)
			}
		}

		first := row * 3
		if _, err := fmt.Fprintf(w, "%s|%s|%s\n", board.Cell(first), board.Cell(first+1), board.Cell(first+2)); err != nil {
			return fmt.Errorf("failed to write board: %w", err)
		}
	}

	if _, err := fmt.Fprintln(w, borderLine); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}
