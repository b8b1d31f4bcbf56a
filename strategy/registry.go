package strategy

import (
	"slices"
	"strings"

	"dilemma/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
)

var registry = map[string]game.Strategy{
	AlwaysCooperate{}.Name(): AlwaysCooperate{},
	AlwaysDefect{}.Name():    AlwaysDefect{},
	TitForTat{}.Name():       TitForTat{},
	Random{}.Name():          Random{},
	TwoTitsForTat{}.Name():   TwoTitsForTat{},
}

// Default returns the built-in strategies in their canonical order.
func Default() []game.Strategy {
	return []game.Strategy{
		AlwaysCooperate{},
		AlwaysDefect{},
		TitForTat{},
		Random{},
		TwoTitsForTat{},
	}
}

// Select resolves names against the registry. Unknown names are logged
// as warnings and skipped; an empty resulting selection falls back to
// the full default set.
func Select(names []string) []game.Strategy {
	var selected []game.Strategy
	for _, name := range names {
		s, ok := registry[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			known := maps.Keys(registry)
			slices.Sort(known)
			log.Warn().Msgf("unknown strategy %q, skipping (known: %s)", name, strings.Join(known, ", "))
			continue
		}
		selected = append(selected, s)
	}

	if len(selected) == 0 {
		log.Warn().Msg("no strategies selected, falling back to the default set")
		return Default()
	}
	return selected
}
