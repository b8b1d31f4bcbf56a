package engine

import (
	"fmt"

	"dilemma/game"
)

// player accumulates one side's score. Owned exclusively by its engine;
// never shared across matches.
type player struct {
	strategy game.Strategy
	score    int
}

// Engine runs one pairing for a fixed number of rounds.
type Engine struct {
	players [2]player
	rounds  int
	hist    game.History
}

func Local(a, b game.Strategy, rounds int) *Engine {
	if a == nil || b == nil {
		panic("need two strategies")
	}
	if rounds < 0 {
		panic("rounds cannot be negative")
	}

	return &Engine{
		players: [2]player{{strategy: a}, {strategy: b}},
		rounds:  rounds,
	}
}

// Run plays every round to completion and returns both final scores.
// Both strategies decide from the same pre-round history snapshot;
// neither observes the other's current-round move before deciding.
func (e *Engine) Run() (int, int, error) {
	for i := 0; i < e.rounds; i++ {
		m0 := e.players[0].strategy.Play(e.hist, 0)
		m1 := e.players[1].strategy.Play(e.hist, 1)

		if !m0.Valid() {
			return 0, 0, fmt.Errorf("round %d: %s played invalid move %d", i+1, e.players[0].strategy.Name(), int(m0))
		}
		if !m1.Valid() {
			return 0, 0, fmt.Errorf("round %d: %s played invalid move %d", i+1, e.players[1].strategy.Name(), int(m1))
		}

		p0, p1 := game.Payoff(m0, m1)
		e.players[0].score += p0
		e.players[1].score += p1
		e.hist = append(e.hist, game.Round{m0, m1})
	}

	return e.players[0].score, e.players[1].score, nil
}

// History returns the rounds played so far.
func (e *Engine) History() game.History {
	return e.hist
}
