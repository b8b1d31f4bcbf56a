package game

// Round records the simultaneous moves of one exchange, indexed by
// player slot (0 or 1). Immutable once recorded.
type Round [2]Move

// History is the ordered record of all rounds played so far in one
// match. The engine appends a round only after both players have moved,
// so a strategy always observes a pre-round snapshot.
type History []Round

// LastRound returns the most recent round, or false when no rounds have
// been played yet.
func (h History) LastRound() (Round, bool) {
	if len(h) == 0 {
		return Round{}, false
	}
	return h[len(h)-1], true
}

// Opponent maps a player slot to the other slot.
func Opponent(player int) int {
	return 1 - player
}
