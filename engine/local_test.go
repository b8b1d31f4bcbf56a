package engine

import (
	"testing"

	"dilemma/game"
	"dilemma/strategy"

	"github.com/stretchr/testify/require"
)

// mustNotPlay fails the match if the engine ever asks it for a move.
type mustNotPlay struct {
	t *testing.T
}

func (s mustNotPlay) Name() string { return "must-not-play" }

func (s mustNotPlay) Play(hist game.History, player int) game.Move {
	s.t.Fatal("engine consulted a strategy in a zero-round match")
	return game.Cooperate
}

// invalidMove returns a value outside the move enumeration.
type invalidMove struct{}

func (invalidMove) Name() string { return "invalid-move" }

func (invalidMove) Play(hist game.History, player int) game.Move {
	return game.Move(7)
}

func TestRunMutualCooperation(t *testing.T) {
	e := Local(strategy.AlwaysCooperate{}, strategy.AlwaysCooperate{}, 5)

	scoreA, scoreB, err := e.Run()

	require.NoError(t, err)
	require.Equal(t, 10, scoreA, "five mutual cooperations should score 2 each round")
	require.Equal(t, 10, scoreB, "five mutual cooperations should score 2 each round")
	require.Len(t, e.History(), 5, "history should record every round")
	for _, round := range e.History() {
		require.Equal(t, game.Round{game.Cooperate, game.Cooperate}, round)
	}
}

func TestRunDefectorExploitsCooperator(t *testing.T) {
	e := Local(strategy.AlwaysCooperate{}, strategy.AlwaysDefect{}, 1)

	scoreA, scoreB, err := e.Run()

	require.NoError(t, err)
	require.Equal(t, 0, scoreA, "exploited cooperator gets the sucker payoff")
	require.Equal(t, 3, scoreB, "defector gets the temptation payoff")
}

func TestRunTitForTatAgainstDefector(t *testing.T) {
	// Round 1: cooperate vs defect = 0/3.
	// Rounds 2-10: mutual defection = 1/1 each.
	e := Local(strategy.TitForTat{}, strategy.AlwaysDefect{}, 10)

	scoreA, scoreB, err := e.Run()

	require.NoError(t, err)
	require.Equal(t, 9, scoreA)
	require.Equal(t, 12, scoreB)
}

func TestRunZeroRounds(t *testing.T) {
	e := Local(mustNotPlay{t}, mustNotPlay{t}, 0)

	scoreA, scoreB, err := e.Run()

	require.NoError(t, err)
	require.Equal(t, 0, scoreA)
	require.Equal(t, 0, scoreB)
	require.Empty(t, e.History(), "zero-round match should leave no history")
}

func TestRunInvalidMoveFailsMatch(t *testing.T) {
	e := Local(invalidMove{}, strategy.AlwaysCooperate{}, 3)

	_, _, err := e.Run()

	require.Error(t, err, "an out-of-range move should fail the match")
	require.Contains(t, err.Error(), "invalid-move")
}

func TestLocalRejectsNilStrategy(t *testing.T) {
	require.Panics(t, func() {
		Local(nil, strategy.AlwaysCooperate{}, 1)
	})
}
