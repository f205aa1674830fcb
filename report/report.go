// Package report assembles the full team analysis and renders it for terminals.
package report

import (
	"showdown-teambuilder/advisor"
	"showdown-teambuilder/analysis"
	"showdown-teambuilder/calc"
	"showdown-teambuilder/game"
	"showdown-teambuilder/typechart"
)

// Report is everything the analyze endpoints return for one roster.
type Report struct {
	Generation typechart.Generation    `json:"generation"`
	Members    []string                `json:"members"`
	Defensive  []analysis.DefensiveRow `json:"defensive"`
	Offensive  []analysis.OffensiveRow `json:"offensive"`
	Threats    []analysis.DefensiveRow `json:"criticalThreats"`
	Strengths  []analysis.OffensiveRow `json:"criticalStrengths"`
	Advice     advisor.Advice          `json:"advice"`
	Stats      analysis.StatSummary    `json:"stats"`
	Immunities []Immunity              `json:"abilityImmunities"`
}

// Immunity notes a member whose selected ability is known to block some attack types.
type Immunity struct {
	Slot    int         `json:"slot"`
	Member  string      `json:"member"`
	Ability string      `json:"ability"`
	Types   []game.Type `json:"types"`
}

func immunities(r game.Roster) []Immunity {
	out := []Immunity{}
	for _, s := range r.Members() {
		types := calc.AbilityImmunities(s.Pokemon.Ability)
		if len(types) == 0 {
			continue
		}
		out = append(out, Immunity{Slot: s.Index, Member: s.Pokemon.DisplayName(), Ability: s.Pokemon.Ability, Types: types})
	}
	return out
}

func New(c analysis.Calculator, r game.Roster, gen int) Report {
	def := analysis.Defensive(c, r, gen)
	off := analysis.Offensive(c, r, gen)
	members := make([]string, game.RosterSize)
	for _, s := range r.Members() {
		members[s.Index] = s.Pokemon.DisplayName()
	}
	return Report{
		Generation: typechart.Lookup(gen),
		Members:    members,
		Defensive:  def,
		Offensive:  off,
		Threats:    analysis.CriticalThreats(def),
		Strengths:  analysis.CriticalStrengths(off),
		Advice:     advisor.Advise(c, r, gen),
		Stats:      analysis.AverageStats(r),
		Immunities: immunities(r),
	}
}
