// Package analysis aggregates single-matchup multipliers over a roster, one row per type of
// the active generation.
package analysis

import (
	"sort"

	"showdown-teambuilder/calc"
	"showdown-teambuilder/game"
	"showdown-teambuilder/typechart"
)

// Calculator is the slice of *calc.Calculator the aggregations need.
type Calculator interface {
	Multiplier(atk game.Type, defender *game.Pokemon, gen int) float64
	BestOffensive(def game.Type, attacker *game.Pokemon, gen int) float64
	BestAgainst(attacker, defender *game.Pokemon, gen int) float64
	WeaknessCount(p *game.Pokemon, gen int) int
}

// Cell is one roster slot's value in a row. Empty slots have Filled == false.
type Cell struct {
	Filled     bool    `json:"filled"`
	Multiplier float64 `json:"multiplier"`
}

type DefensiveRow struct {
	Type   game.Type             `json:"type"`
	Weak   int                   `json:"weak"`
	Resist int                   `json:"resist"`
	Immune int                   `json:"immune"`
	Score  int                   `json:"score"`
	Cells  [game.RosterSize]Cell `json:"cells"`
}

type OffensiveRow struct {
	Type     game.Type             `json:"type"`
	Strong   int                   `json:"strong"`
	Resisted int                   `json:"resisted"`
	Score    int                   `json:"score"`
	Cells    [game.RosterSize]Cell `json:"cells"`
}

// Defensive answers "what hits us hard". Resist counts immunities too; Immune is only
// reported separately for display and never enters the score.
func Defensive(c Calculator, r game.Roster, gen int) []DefensiveRow {
	types := typechart.TypesForGeneration(gen)
	rows := make([]DefensiveRow, 0, len(types))
	for _, t := range types {
		row := DefensiveRow{Type: t}
		for _, slot := range r.Members() {
			m := c.Multiplier(t, slot.Pokemon, gen)
			row.Cells[slot.Index] = Cell{Filled: true, Multiplier: m}
			switch {
			case m > 1:
				row.Weak++
			case m < 1:
				row.Resist++
				if m == 0 {
					row.Immune++
				}
			}
		}
		row.Score = row.Weak - row.Resist
		rows = append(rows, row)
	}
	return rows
}

// Offensive answers "what can we hit hard". Members without damaging moves report
// calc.NoData in their cell and count toward neither side.
func Offensive(c Calculator, r game.Roster, gen int) []OffensiveRow {
	types := typechart.TypesForGeneration(gen)
	rows := make([]OffensiveRow, 0, len(types))
	for _, t := range types {
		row := OffensiveRow{Type: t}
		for _, slot := range r.Members() {
			m := c.BestOffensive(t, slot.Pokemon, gen)
			row.Cells[slot.Index] = Cell{Filled: true, Multiplier: m}
			if m == calc.NoData {
				continue
			}
			switch {
			case m >= 2:
				row.Strong++
			case m < 1:
				row.Resisted++
			}
		}
		row.Score = row.Strong - row.Resisted
		rows = append(rows, row)
	}
	return rows
}

// CriticalThreats are the defensive rows scoring above +1, worst first.
func CriticalThreats(rows []DefensiveRow) []DefensiveRow {
	out := []DefensiveRow{}
	for _, r := range rows {
		if r.Score > 1 {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// CriticalStrengths are the offensive rows scoring above +1, best first.
func CriticalStrengths(rows []OffensiveRow) []OffensiveRow {
	out := []OffensiveRow{}
	for _, r := range rows {
		if r.Score > 1 {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
