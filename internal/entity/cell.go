package entity

// Cell is the content of one board position.
type Cell uint8

const (
	EmptyCell Cell = iota
	MarkX
	MarkO
)

func (that Cell) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return " "
	}
}

// IsMark reports whether the cell holds a player's mark.
func (that Cell) IsMark() bool {
	return that == MarkX || that == MarkO
}
