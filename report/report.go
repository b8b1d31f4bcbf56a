// Package report formats tournament results for humans.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"dilemma/tournament"
)

// Write prints every pairing's final scores followed by the standings.
// Failed pairings are kept in the listing and marked, never dropped.
func Write(w io.Writer, results tournament.Results) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "STRATEGY A\tSTRATEGY B\tSCORE A\tSCORE B")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\t%s\t-\t-\tFAILED: %v\n", r.StrategyA, r.StrategyB, r.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", r.StrategyA, r.StrategyB, r.ScoreA, r.ScoreB)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "STRATEGY\tTOTAL\tPLAYED\tFAILED")
	for _, s := range results.Standings() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", s.Strategy, s.Score, s.Played, s.Failed)
	}

	return tw.Flush()
}
