package experiments

import (
	"fmt"
	"time"

	"dilemma/experiments/metrics"
	"dilemma/strategy"
	"dilemma/tournament"

	"github.com/rs/zerolog/log"
)

const (
	NumRuns = 5 // Per worker count
	Rounds  = 500
)

var workerConfigs = []int{1, 2, 4, 8, 16, 32, 64}

// RunSpeedupExperiment plays the same full tournament at each worker
// count and records wall time per run. All pairings are independent, so
// throughput should scale with workers until pairings run out.
func RunSpeedupExperiment() {
	strategies := strategy.Default()

	log.Info().Msg("starting speedup experiment...")

	count := 0
	records := []metrics.RunRecord{}
	for _, workers := range workerConfigs {
		log.Info().Msgf("starting %d-worker runs...", workers)

		for i := 0; i < NumRuns; i++ {
			t := tournament.New(tournament.WithRounds(Rounds), tournament.WithWorkers(workers))

			start := time.Now()
			results, err := t.Run(strategies)
			if err != nil {
				panic(fmt.Sprintf("tournament run failed: %v", err))
			}
			elapsed := time.Since(start)

			count++
			records = append(records, metrics.RunRecord{
				ID:         count,
				Workers:    workers,
				Strategies: len(strategies),
				Pairings:   len(results),
				Rounds:     Rounds,
				Duration:   elapsed,
			})

			log.Info().Msgf("completed %d-worker run %d of %d in %s", workers, i+1, NumRuns, elapsed)
		}
	}

	log.Info().Msg("completed speedup experiment")

	// Store experiment results
	writer, err := metrics.NewWriter("speedup")
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteRunRecords(records)
	if err != nil {
		panic(fmt.Sprintf("failed to write run records: %v", err))
	}
	log.Info().Msgf("stored run records under %s", writer.BaseDir())
}
