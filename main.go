package main

import (
	"flag"
	"os"
	"runtime"
	"strings"

	"dilemma/experiments"
	"dilemma/game"
	"dilemma/report"
	"dilemma/strategy"
	"dilemma/tournament"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	names := flag.String("strategies", "", "Comma-separated strategy names (default: all built-ins)")
	rounds := flag.Int("rounds", tournament.DefaultRounds, "Number of rounds per pairing")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of concurrent workers")
	experiment := flag.Bool("experiment", false, "Run the speedup experiment instead of a single tournament")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *experiment {
		experiments.RunSpeedupExperiment()
		return
	}

	var selected []game.Strategy
	if *names == "" {
		selected = strategy.Default()
	} else {
		selected = strategy.Select(strings.Split(*names, ","))
	}

	t := tournament.New(tournament.WithRounds(*rounds), tournament.WithWorkers(*workers))
	results, err := t.Run(selected)
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}

	err = report.Write(os.Stdout, results)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to write report")
	}
}
