package game

import "fmt"

// Move is one player's action in a single round.
type Move int

const (
	Cooperate Move = iota
	Defect
)

func (m Move) String() string {
	switch m {
	case Cooperate:
		return "cooperate"
	case Defect:
		return "defect"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// Valid reports whether m is one of the two playable moves.
func (m Move) Valid() bool {
	return m == Cooperate || m == Defect
}
