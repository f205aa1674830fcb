package advisor

import (
	"fmt"
	"strings"

	"showdown-teambuilder/analysis"
	"showdown-teambuilder/game"
	"showdown-teambuilder/typechart"
)

// Swap proposes replacing one roster member to patch the team's worst defensive threat.
type Swap struct {
	Threat     game.Type   `json:"threat"`
	OutSlot    int         `json:"outSlot"`
	Out        string      `json:"out"`
	InTypes    []game.Type `json:"inTypes"`
	InExamples []string    `json:"inExamples,omitempty"`
	In         string      `json:"in"`
}

// SuggestSwap only fires for a full roster with at least one positive-score threat.
// The swap-out is the member weak to the threat with the most weaknesses overall (lowest
// slot on ties); the swap-in comes from the curated archetype table.
func SuggestSwap(c analysis.Calculator, r game.Roster, gen int) (Swap, bool) {
	if !r.Full() {
		return Swap{}, false
	}
	threats := DefensiveCounters(analysis.Defensive(c, r, gen), gen)
	if len(threats) == 0 {
		return Swap{}, false
	}
	threat := threats[0].Threat

	out, worst := -1, -1
	for _, s := range r.Members() {
		if c.Multiplier(threat, s.Pokemon, gen) <= 1 {
			continue
		}
		if n := c.WeaknessCount(s.Pokemon, gen); n > worst {
			out, worst = s.Index, n
		}
	}
	if out < 0 {
		return Swap{}, false
	}

	swap := Swap{Threat: threat, OutSlot: out, Out: r[out].DisplayName()}
	counters := resisters(threat, gen)
	if a, ok := matchArchetype(threat, counters, gen); ok {
		swap.InTypes = append([]game.Type(nil), a.Types...)
		swap.InExamples = append([]string(nil), a.Examples...)
		swap.In = strings.Join(a.Examples, " / ")
		return swap, true
	}
	if len(counters) > 0 {
		swap.InTypes = []game.Type{counters[0]}
		swap.In = fmt.Sprintf("Any %s type", game.Title(string(counters[0])))
		return swap, true
	}
	return Swap{}, false
}

// matchArchetype walks the counter types in ruleset order and returns the first archetype
// that carries one of them, exists in the generation and resists the threat as a whole.
func matchArchetype(threat game.Type, counters []game.Type, gen int) (Archetype, bool) {
	m := typechart.MatrixForGeneration(gen)
	for _, ct := range counters {
		for _, a := range archetypes {
			if !a.has(ct) || !a.availableIn(gen) {
				continue
			}
			mult := 1.0
			for _, t := range a.Types {
				mult *= m.Effectiveness(threat, t)
			}
			if mult < 1 {
				return a, true
			}
		}
	}
	return Archetype{}, false
}
