package tournament

import (
	"errors"
	"fmt"
	"sync"

	"dilemma/engine"
	"dilemma/game"

	"github.com/rs/zerolog/log"
)

type task struct {
	pairing Pairing
	a, b    game.Strategy
}

// Run plays every ordered pairing of strategies (self-play included,
// N strategies -> N*N pairings) on a pool of t.workers goroutines and
// collects exactly one result per pairing. Pairings are independent and
// complete in any order; results are attributed by the pairing carried
// with each one. Run returns only once every pairing is accounted for.
func (t *Tournament) Run(strategies []game.Strategy) (Results, error) {
	if len(strategies) == 0 {
		return nil, errors.New("tournament: no strategies")
	}
	for i, s := range strategies {
		if s == nil {
			return nil, fmt.Errorf("tournament: strategy %d is nil", i)
		}
	}
	if t.workers < 1 {
		return nil, fmt.Errorf("tournament: workers must be at least 1, got %d", t.workers)
	}
	if t.rounds < 0 {
		return nil, fmt.Errorf("tournament: rounds cannot be negative, got %d", t.rounds)
	}

	n := len(strategies)
	total := n * n
	log.Info().Msgf("starting tournament: %d strategies, %d pairings, %d rounds each, %d workers", n, total, t.rounds, t.workers)

	tasks := make(chan task, total)
	results := make(chan Result, total)

	var wg sync.WaitGroup
	for i := 0; i < t.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for tk := range tasks {
				results <- t.play(tk)
			}
		}()
	}

	for i, a := range strategies {
		for j, b := range strategies {
			tasks <- task{
				pairing: Pairing{A: i, B: j, StrategyA: a.Name(), StrategyB: b.Name()},
				a:       a,
				b:       b,
			}
		}
	}
	close(tasks)

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make(Results, total)
	filled := make([]bool, total)
	collected := 0
	for r := range results {
		ordinal := r.A*n + r.B
		if filled[ordinal] {
			return nil, fmt.Errorf("tournament aborted: duplicate result for pairing %s vs %s", r.StrategyA, r.StrategyB)
		}
		out[ordinal] = r
		filled[ordinal] = true
		collected++
	}
	if collected != total {
		return nil, fmt.Errorf("tournament aborted: collected %d of %d results", collected, total)
	}

	if failed := out.Failed(); len(failed) > 0 {
		log.Warn().Msgf("tournament complete with %d of %d pairings failed", len(failed), total)
	} else {
		log.Info().Msgf("tournament complete: %d results collected", total)
	}
	return out, nil
}

// play runs one pairing to completion. A panicking strategy fails only
// its own pairing: the recover here turns it into a failed result so
// collection never comes up short.
func (t *Tournament) play(tk task) (result Result) {
	result.Pairing = tk.pairing

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("pairing %s vs %s: %v", tk.pairing.StrategyA, tk.pairing.StrategyB, r)
		}
	}()

	scoreA, scoreB, err := engine.Local(tk.a, tk.b, t.rounds).Run()
	if err != nil {
		result.Err = fmt.Errorf("pairing %s vs %s: %w", tk.pairing.StrategyA, tk.pairing.StrategyB, err)
		return result
	}

	result.ScoreA = scoreA
	result.ScoreB = scoreB
	log.Debug().Msgf("pairing %s vs %s: %d-%d", tk.pairing.StrategyA, tk.pairing.StrategyB, scoreA, scoreB)
	return result
}
