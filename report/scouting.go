package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"showdown-teambuilder/analysis"
	"showdown-teambuilder/calc"
	"showdown-teambuilder/game"
	"showdown-teambuilder/parser"
	"showdown-teambuilder/typechart"
)

func sideText(p *game.Player) string {
	var sb strings.Builder
	sb.WriteString(boldStyle.Render(p.Name) + "\n")
	for _, species := range p.Order {
		poke := p.Team[species]
		name := poke.DisplayName()
		if poke == p.Active {
			name = goodStyle.Render(name)
		}
		sb.WriteString("  " + name + " " + typeList(poke.EffectiveTypes()))
		if p.Fainted[species] {
			sb.WriteString(badStyle.Render(" fainted"))
		}
		if poke.Ability != "" {
			sb.WriteString(infoStyle.Render(" " + poke.Ability))
			if imm := calc.AbilityImmunities(poke.Ability); len(imm) > 0 {
				sb.WriteString(infoStyle.Render(" immune:") + " " + typeList(imm))
			}
		}
		if poke.Item != "" {
			sb.WriteString(infoStyle.Render(" @ " + poke.Item))
		}
		sb.WriteString("\n")
		if len(poke.Moves) > 0 {
			names := make([]string, 0, len(poke.Moves))
			for _, m := range poke.Moves {
				names = append(names, m.Name)
			}
			sb.WriteString(infoStyle.Render("    moves: "+strings.Join(names, ", ")) + "\n")
		}
	}
	return sb.String()
}

// Scouting is the terminal counterpart of the live scouting panel: both revealed sides,
// the best play for p1's active and the matchup grid.
func Scouting(state *game.BattleState, c analysis.Calculator) string {
	gen := state.Gen
	if gen == 0 {
		gen = typechart.LatestGeneration
	}
	parts := []string{titleStyle.Render(fmt.Sprintf("Turn %d, %s", state.Turn, typechart.Lookup(gen)))}

	p1, p2 := state.Players["p1"], state.Players["p2"]
	for _, p := range []*game.Player{p1, p2} {
		if p != nil {
			parts = append(parts, sideText(p))
		}
	}

	if p1 != nil && p2 != nil && p1.Active != nil && p2.Active != nil {
		var sb strings.Builder
		if best, mult, ok := parser.BestMove(c, p1.Active, p2.Active, gen); ok {
			sb.WriteString(fmt.Sprintf("Best move: %s %s x%s (%s)\n",
				best.Name, typeLabel(best.Type), calc.FormatMultiplier(mult), calc.Classify(mult)))
		} else {
			sb.WriteString(infoStyle.Render("No damaging moves known.") + "\n")
		}
		if sw, score, ok := parser.BestSwitch(c, p1, p2.Active, gen); ok {
			sb.WriteString(badStyle.Render(fmt.Sprintf("Consider switching to %s (takes at most x%s)",
				sw.DisplayName(), calc.FormatMultiplier(score))) + "\n")
		}
		parts = append(parts, sb.String())
	}

	if p1 != nil && p2 != nil {
		parts = append(parts, MatchupTable(analysis.Matchups(c, p1.Roster(), p2.Roster(), gen)))
	}

	if state.Ended {
		result := "Tie"
		if state.Winner != "" {
			result = "Winner: " + state.Winner
		}
		parts = append(parts, boldStyle.Render(result))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
