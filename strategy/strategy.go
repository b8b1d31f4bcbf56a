package strategy

import (
	"math/rand/v2"

	"dilemma/game"
)

// AlwaysCooperate cooperates unconditionally.
type AlwaysCooperate struct{}

func (AlwaysCooperate) Name() string { return "always-cooperate" }

func (AlwaysCooperate) Play(hist game.History, player int) game.Move {
	return game.Cooperate
}

// AlwaysDefect defects unconditionally.
type AlwaysDefect struct{}

func (AlwaysDefect) Name() string { return "always-defect" }

func (AlwaysDefect) Play(hist game.History, player int) game.Move {
	return game.Defect
}

// TitForTat opens with cooperate, then repeats the opponent's previous
// move.
type TitForTat struct{}

func (TitForTat) Name() string { return "tit-for-tat" }

func (TitForTat) Play(hist game.History, player int) game.Move {
	last, ok := hist.LastRound()
	if !ok {
		return game.Cooperate
	}
	return last[game.Opponent(player)]
}

// Random plays a fair coin each call. The math/rand/v2 top-level
// generator keeps per-thread state, so concurrent matches never contend
// on a shared lock.
type Random struct{}

func (Random) Name() string { return "random" }

func (Random) Play(hist game.History, player int) game.Move {
	if rand.IntN(2) == 0 {
		return game.Cooperate
	}
	return game.Defect
}

// TwoTitsForTat cooperates unless the opponent defected in both of the
// two most recent rounds. Fewer than two rounds of history always means
// cooperate.
type TwoTitsForTat struct{}

func (TwoTitsForTat) Name() string { return "two-tits-for-tat" }

func (TwoTitsForTat) Play(hist game.History, player int) game.Move {
	if len(hist) < 2 {
		return game.Cooperate
	}
	opp := game.Opponent(player)
	if hist[len(hist)-1][opp] == game.Defect && hist[len(hist)-2][opp] == game.Defect {
		return game.Defect
	}
	return game.Cooperate
}
