package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const maxEchoedInput = 16

var ErrMalformedInput = errors.New("input is not a cell number")

type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandExit
)

// Command is one parsed line of operator input.
type Command struct {
	Kind CommandKind
	Cell int
}

// ParseCommand - turns a raw input line into an exit or move command.
// Range and occupancy are left to the board.
func ParseCommand(line string, exitCommands []string) (Command, error) {
	input := strings.TrimSpace(line)

	for _, exit := range exitCommands {
		if strings.EqualFold(input, exit) {
			return Command{Kind: CommandExit}, nil
		}
	}

	cell, err := strconv.Atoi(input)
	if err != nil {
		if len(input) > maxEchoedInput {
			input = input[:maxEchoedInput] + "..."
		}

		return Command{}, fmt.Errorf("%w: %q", ErrMalformedInput, input)
	}

	return Command{Kind: CommandMove, Cell: cell}, nil
}
