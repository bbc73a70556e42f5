package entity

// TurnTracker holds the mark of the player who moves next.
type TurnTracker struct {
	Player Cell `json:"player"`
}

func NewTurnTracker() *TurnTracker {
	return &TurnTracker{Player: MarkX}
}

// FlipPlayer - passes the turn to the other mark. An unset tracker starts with X.
func (that *TurnTracker) FlipPlayer() {
	switch that.Player {
	case MarkX:
		that.Player = MarkO
	case MarkO:
		that.Player = MarkX
	default:
		that.Player = MarkX
	}
}

// Current - returns the mark of the player to move.
func (that *TurnTracker) Current() Cell {
	return that.Player
}
