package game

// Strategy decides a move from the match history so far. player is the
// slot (0 or 1) the strategy occupies in the current match.
//
// Implementations must be stateless: a single instance may serve many
// concurrent matches, so Play must not retain or mutate hist and must
// not keep per-call state on the receiver.
type Strategy interface {
	Name() string
	Play(hist History, player int) Move
}
