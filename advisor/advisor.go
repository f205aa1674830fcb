// Package advisor turns aggregated team rows into the threat, coverage and swap suggestions
// shown next to the matrices. An empty result is a valid answer ("nothing to fix").
package advisor

import (
	"sort"

	"showdown-teambuilder/analysis"
	"showdown-teambuilder/game"
	"showdown-teambuilder/typechart"
)

const (
	maxSuggestions = 3
	maxTypes       = 4
)

type Counter struct {
	Threat   game.Type   `json:"threat"`
	Score    int         `json:"score"`
	Counters []game.Type `json:"counters"`
}

type Gap struct {
	Gap         game.Type   `json:"gap"`
	Score       int         `json:"score"`
	AttackTypes []game.Type `json:"attackTypes"`
}

// DefensiveCounters surfaces up to three types the team is collectively weak to, worst first,
// each with up to four types that resist or ignore it (ruleset order, unranked).
func DefensiveCounters(rows []analysis.DefensiveRow, gen int) []Counter {
	threats := make([]analysis.DefensiveRow, 0, len(rows))
	for _, r := range rows {
		if r.Score > 0 {
			threats = append(threats, r)
		}
	}
	sort.SliceStable(threats, func(i, j int) bool { return threats[i].Score > threats[j].Score })

	out := []Counter{}
	for i, r := range threats {
		if i == maxSuggestions {
			break
		}
		out = append(out, Counter{
			Threat:   r.Type,
			Score:    r.Score,
			Counters: limit(resisters(r.Type, gen), maxTypes),
		})
	}
	return out
}

// OffensiveCoverage surfaces up to three types the team cannot pressure, worst first, each
// with up to four attacking types that hit it super effectively.
func OffensiveCoverage(rows []analysis.OffensiveRow, gen int) []Gap {
	gaps := make([]analysis.OffensiveRow, 0, len(rows))
	for _, r := range rows {
		if r.Score <= 0 {
			gaps = append(gaps, r)
		}
	}
	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].Score < gaps[j].Score })

	out := []Gap{}
	for i, r := range gaps {
		if i == maxSuggestions {
			break
		}
		out = append(out, Gap{
			Gap:         r.Type,
			Score:       r.Score,
			AttackTypes: limit(attackers(r.Type, gen), maxTypes),
		})
	}
	return out
}

// resisters lists every type that takes less than neutral damage from atk.
func resisters(atk game.Type, gen int) []game.Type {
	m := typechart.MatrixForGeneration(gen)
	var out []game.Type
	for _, def := range typechart.TypesForGeneration(gen) {
		if m.Effectiveness(atk, def) < 1 {
			out = append(out, def)
		}
	}
	return out
}

// attackers lists every type that hits def super effectively.
func attackers(def game.Type, gen int) []game.Type {
	m := typechart.MatrixForGeneration(gen)
	var out []game.Type
	for _, atk := range typechart.TypesForGeneration(gen) {
		if m.Effectiveness(atk, def) > 1 {
			out = append(out, atk)
		}
	}
	return out
}

func limit(types []game.Type, n int) []game.Type {
	if types == nil {
		return []game.Type{}
	}
	if len(types) > n {
		return types[:n]
	}
	return types
}

// Advice bundles everything the advisor has to say about one roster.
type Advice struct {
	Generation int       `json:"generation"`
	Threats    []Counter `json:"threats"`
	Gaps       []Gap     `json:"gaps"`
	Swap       *Swap     `json:"swap,omitempty"`
}

func Advise(c analysis.Calculator, r game.Roster, gen int) Advice {
	a := Advice{
		Generation: gen,
		Threats:    DefensiveCounters(analysis.Defensive(c, r, gen), gen),
		Gaps:       OffensiveCoverage(analysis.Offensive(c, r, gen), gen),
	}
	if s, ok := SuggestSwap(c, r, gen); ok {
		a.Swap = &s
	}
	return a
}
