package parser

import (
	"fmt"
	"html/template"
	"strings"

	"showdown-teambuilder/analysis"
	"showdown-teambuilder/calc"
	"showdown-teambuilder/game"
	"showdown-teambuilder/typechart"
)

const defaultGen = typechart.LatestGeneration

// BestMove picks attacker's damaging move with the highest multiplier against defender,
// preferring higher base power on ties.
func BestMove(c analysis.Calculator, attacker, defender *game.Pokemon, gen int) (game.Move, float64, bool) {
	var (
		best     game.Move
		bestMult = calc.NoData
		found    bool
	)
	for _, m := range attacker.DamagingMoves() {
		mult := c.Multiplier(m.Type, defender, gen)
		if !found || mult > bestMult || (mult == bestMult && m.PowerOr(0) > best.PowerOr(0)) {
			best, bestMult, found = m, mult, true
		}
	}
	return best, bestMult, found
}

// threatTypes is what the rival's active is expected to attack with: its revealed damaging
// move types, or its own typing while nothing has been revealed.
func threatTypes(rival *game.Pokemon, gen int) []game.Type {
	seen := make(map[game.Type]bool)
	var out []game.Type
	for _, m := range rival.DamagingMoves() {
		if !seen[m.Type] {
			seen[m.Type] = true
			out = append(out, m.Type)
		}
	}
	if len(out) == 0 {
		out = calc.DefendingTypes(rival, gen)
	}
	return out
}

func worstCase(c analysis.Calculator, threats []game.Type, p *game.Pokemon, gen int) float64 {
	worst := 0.0
	for _, t := range threats {
		if v := c.Multiplier(t, p, gen); v > worst {
			worst = v
		}
	}
	return worst
}

// BestSwitch returns the bench member taking the lowest worst-case multiplier from the rival's
// active. It only suggests a switch that improves on the current active.
func BestSwitch(c analysis.Calculator, me *game.Player, rival *game.Pokemon, gen int) (*game.Pokemon, float64, bool) {
	threats := threatTypes(rival, gen)
	if len(threats) == 0 {
		return nil, 0, false
	}
	var best *game.Pokemon
	bestScore := 0.0
	for _, poke := range me.Bench() {
		score := worstCase(c, threats, poke, gen)
		if best == nil || score < bestScore {
			best, bestScore = poke, score
		}
	}
	if best == nil {
		return nil, 0, false
	}
	if me.Active != nil && bestScore >= worstCase(c, threats, me.Active, gen) {
		return nil, 0, false
	}
	return best, bestScore, true
}

func esc(s string) string {
	return template.HTMLEscapeString(s)
}

func typeBadge(t game.Type) string {
	return fmt.Sprintf("<span class='type' style='background:%s;'>%s</span>", typechart.TypeColor(t), esc(game.Title(string(t))))
}

func renderSide(sb *strings.Builder, player *game.Player) {
	sb.WriteString(fmt.Sprintf("<h4>%s</h4><ul class='revealed'>", esc(player.Name)))
	for _, species := range player.Order {
		poke := player.Team[species]
		sb.WriteString("<li>")
		if poke == player.Active {
			sb.WriteString("<b>")
		}
		sb.WriteString(esc(poke.DisplayName()))
		if poke == player.Active {
			sb.WriteString("</b>")
		}
		for _, t := range poke.EffectiveTypes() {
			sb.WriteString(" " + typeBadge(t))
		}
		if player.Fainted[species] {
			sb.WriteString(" <span style='color:#e74c3c;'>(fainted)</span>")
		}
		if poke.Ability != "" {
			sb.WriteString(fmt.Sprintf(" <span style='color:#7ed6df;'>%s</span>", esc(poke.Ability)))
			if imm := calc.AbilityImmunities(poke.Ability); len(imm) > 0 {
				sb.WriteString(" <span class='immune'>immune:")
				for _, t := range imm {
					sb.WriteString(" " + typeBadge(t))
				}
				sb.WriteString("</span>")
			}
		}
		if poke.Item != "" {
			sb.WriteString(fmt.Sprintf(" <span style='color:#aaa;'>@ %s</span>", esc(poke.Item)))
		}
		if len(poke.Moves) > 0 {
			names := make([]string, 0, len(poke.Moves))
			for _, m := range poke.Moves {
				names = append(names, esc(m.Name))
			}
			sb.WriteString("<br>Moves seen: " + strings.Join(names, ", "))
		}
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")
}

func renderMatchup(sb *strings.Builder, m analysis.Matchup) {
	if len(m.Mine) == 0 || len(m.Rival) == 0 {
		return
	}
	sb.WriteString("<table class='matchup'><tr><th></th>")
	for _, name := range m.Rival {
		sb.WriteString("<th>" + esc(name) + "</th>")
	}
	sb.WriteString("</tr>")
	for i, row := range m.Rows {
		sb.WriteString("<tr><th>" + esc(m.Mine[i]) + "</th>")
		for _, cell := range row {
			class := "neutral"
			switch {
			case cell.Multiplier > 1:
				class = "good"
			case cell.Multiplier >= 0 && cell.Multiplier < 1:
				class = "bad"
			}
			sb.WriteString(fmt.Sprintf("<td class='%s'>%s</td>", class, calc.FormatMultiplier(cell.Multiplier)))
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")
}

// RenderScouting renders the live scouting panel streamed to the browser.
func RenderScouting(state *game.BattleState, c analysis.Calculator) string {
	var sb strings.Builder
	gen := state.Gen
	if gen == 0 {
		gen = defaultGen
	}

	sb.WriteString("<div class='battle-summary'>")
	sb.WriteString(fmt.Sprintf("<h3>Turn %d <small>%s</small></h3>", state.Turn, esc(typechart.Lookup(gen).String())))

	p1 := state.Players["p1"]
	p2 := state.Players["p2"]
	for _, player := range []*game.Player{p1, p2} {
		if player != nil {
			renderSide(&sb, player)
		}
	}

	if p1 != nil && p2 != nil && p1.Active != nil && p2.Active != nil {
		sb.WriteString("<div class='suggestion'><b>Suggestion for " + esc(p1.Name) + ":</b><br>")
		if best, mult, ok := BestMove(c, p1.Active, p2.Active, gen); ok {
			sb.WriteString(fmt.Sprintf("Best move: <b>%s</b> %s x%s (%s)<br>",
				esc(best.Name), typeBadge(best.Type), calc.FormatMultiplier(mult), calc.Classify(mult)))
		} else {
			sb.WriteString("No damaging moves known.<br>")
		}
		if sw, score, ok := BestSwitch(c, p1, p2.Active, gen); ok {
			sb.WriteString(fmt.Sprintf("<span style='color:#e74c3c;'>Consider switching to %s (takes at most x%s)</span><br>",
				esc(sw.DisplayName()), calc.FormatMultiplier(score)))
		}
		sb.WriteString("</div>")
	}

	if p1 != nil && p2 != nil {
		renderMatchup(&sb, analysis.Matchups(c, p1.Roster(), p2.Roster(), gen))
	}

	if state.Ended {
		result := "Tie"
		if state.Winner != "" {
			result = "Winner: " + esc(state.Winner)
		}
		sb.WriteString("<div class='result'>" + result + "</div>")
	}
	sb.WriteString("</div>")
	return sb.String()
}
