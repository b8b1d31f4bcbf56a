package tournament

import (
	"runtime"
	"sort"
)

// DefaultRounds is the number of rounds each pairing is played for
// unless configured otherwise.
const DefaultRounds = 500

type Option func(t *Tournament)

type Tournament struct {
	rounds  int
	workers int
}

func WithRounds(rounds int) Option {
	return func(t *Tournament) {
		t.rounds = rounds
	}
}

func WithWorkers(workers int) Option {
	return func(t *Tournament) {
		t.workers = workers
	}
}

// New builds a tournament with the default configuration: DefaultRounds
// rounds per pairing and one worker per available CPU. Options record
// the caller's values verbatim; Run validates them.
func New(options ...Option) *Tournament {
	t := &Tournament{
		rounds:  DefaultRounds,
		workers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Pairing identifies one ordered matchup: strategy A occupies player
// slot 0 and strategy B slot 1. A and B index the strategy list passed
// to Run; self-play (A == B) is a regular pairing.
type Pairing struct {
	A, B                 int
	StrategyA, StrategyB string
}

// Result is the outcome of one pairing. A non-nil Err marks a failed
// simulation; the scores of a failed pairing carry no meaning.
type Result struct {
	Pairing
	ScoreA, ScoreB int
	Err            error
}

// Results holds one entry per pairing, indexed in submission order
// (row-major over the strategy list).
type Results []Result

// Standing is one strategy's aggregate over every pairing it took part
// in, as the row and as the column player. Self-play counts both slots.
type Standing struct {
	Strategy string
	Score    int
	Played   int
	Failed   int
}

// Standings totals scores per strategy, sorted by total score
// descending, ties broken by name.
func (rs Results) Standings() []Standing {
	byName := map[string]*Standing{}
	order := []string{}

	tally := func(name string, score int, failed bool) {
		s, ok := byName[name]
		if !ok {
			s = &Standing{Strategy: name}
			byName[name] = s
			order = append(order, name)
		}
		s.Played++
		if failed {
			s.Failed++
			return
		}
		s.Score += score
	}

	for _, r := range rs {
		failed := r.Err != nil
		tally(r.StrategyA, r.ScoreA, failed)
		tally(r.StrategyB, r.ScoreB, failed)
	}

	standings := make([]Standing, 0, len(order))
	for _, name := range order {
		standings = append(standings, *byName[name])
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Score != standings[j].Score {
			return standings[i].Score > standings[j].Score
		}
		return standings[i].Strategy < standings[j].Strategy
	})
	return standings
}

// Failed returns the pairings whose simulation did not complete.
func (rs Results) Failed() Results {
	var failed Results
	for _, r := range rs {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
