package metrics

import "time"

// RunRecord captures one full tournament run within an experiment.
type RunRecord struct {
	ID         int
	Workers    int
	Strategies int
	Pairings   int
	Rounds     int
	Duration   time.Duration
}

// PairingsPerSecond is the run's throughput over its wall time.
func (r RunRecord) PairingsPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Pairings) / r.Duration.Seconds()
}
