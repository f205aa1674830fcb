package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"showdown-teambuilder/advisor"
	"showdown-teambuilder/analysis"
	"showdown-teambuilder/calc"
	"showdown-teambuilder/game"
	"showdown-teambuilder/typechart"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F25D94"))
	boldStyle = lipgloss.NewStyle().Bold(true)
)

func typeLabel(t game.Type) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color(typechart.TypeColor(t))).
		Render(game.Title(string(t)))
}

func score(n int) string {
	switch {
	case n > 0:
		return fmt.Sprintf("+%d", n)
	case n < 0:
		return fmt.Sprintf("%d", n)
	}
	return "-"
}

// defensiveCell colours from the defender's point of view: taking less damage is good.
func defensiveCell(c analysis.Cell) string {
	if !c.Filled {
		return ""
	}
	s := calc.FormatMultiplier(c.Multiplier)
	switch {
	case c.Multiplier > 1:
		return badStyle.Render(s)
	case c.Multiplier < 1:
		return goodStyle.Render(s)
	}
	return s
}

func offensiveCell(c analysis.Cell) string {
	if !c.Filled {
		return ""
	}
	s := calc.FormatMultiplier(c.Multiplier)
	switch {
	case c.Multiplier > 1:
		return goodStyle.Render(s)
	case c.Multiplier >= 0 && c.Multiplier < 1:
		return badStyle.Render(s)
	}
	return s
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(infoStyle).
		Headers(headers...)
}

func memberHeaders(first string, members []string, tail ...string) []string {
	h := []string{first}
	for i, m := range members {
		if m == "" {
			m = fmt.Sprintf("#%d", i+1)
		}
		h = append(h, m)
	}
	return append(h, tail...)
}

func DefensiveTable(rows []analysis.DefensiveRow, members []string) string {
	t := newTable(memberHeaders("Attack", members, "Weak", "Resist", "Score")...)
	for _, r := range rows {
		row := []string{typeLabel(r.Type)}
		for i := range members {
			row = append(row, defensiveCell(r.Cells[i]))
		}
		row = append(row, fmt.Sprint(r.Weak), fmt.Sprint(r.Resist), score(r.Score))
		t.Row(row...)
	}
	return t.Render()
}

func OffensiveTable(rows []analysis.OffensiveRow, members []string) string {
	t := newTable(memberHeaders("Target", members, "Strong", "Resisted", "Score")...)
	for _, r := range rows {
		row := []string{typeLabel(r.Type)}
		for i := range members {
			row = append(row, offensiveCell(r.Cells[i]))
		}
		row = append(row, fmt.Sprint(r.Strong), fmt.Sprint(r.Resisted), score(r.Score))
		t.Row(row...)
	}
	return t.Render()
}

func typeList(types []game.Type) string {
	if len(types) == 0 {
		return infoStyle.Render("none")
	}
	labels := make([]string, 0, len(types))
	for _, t := range types {
		labels = append(labels, typeLabel(t))
	}
	return strings.Join(labels, " ")
}

func AdviceText(a advisor.Advice) string {
	var sb strings.Builder
	sb.WriteString(boldStyle.Render("Defensive threats") + "\n")
	if len(a.Threats) == 0 {
		sb.WriteString(infoStyle.Render("  No shared weaknesses.") + "\n")
	}
	for _, th := range a.Threats {
		sb.WriteString(fmt.Sprintf("  %s %s  counters: %s\n", typeLabel(th.Threat), score(th.Score), typeList(th.Counters)))
	}

	sb.WriteString(boldStyle.Render("Coverage gaps") + "\n")
	if len(a.Gaps) == 0 {
		sb.WriteString(infoStyle.Render("  Every type is pressured.") + "\n")
	}
	for _, g := range a.Gaps {
		sb.WriteString(fmt.Sprintf("  %s %s  hit it with: %s\n", typeLabel(g.Gap), score(g.Score), typeList(g.AttackTypes)))
	}

	if a.Swap != nil {
		sb.WriteString(boldStyle.Render("Suggested swap") + "\n")
		sb.WriteString(fmt.Sprintf("  Replace %s (slot %d) with %s %s to cover %s\n",
			a.Swap.Out, a.Swap.OutSlot+1, a.Swap.In, typeList(a.Swap.InTypes), typeLabel(a.Swap.Threat)))
	}
	return sb.String()
}

func StatsText(s analysis.StatSummary) string {
	if s.Members == 0 {
		return infoStyle.Render("No base stats available.")
	}
	t := newTable(append([]string{"Avg"}, analysis.StatOrder...)...)
	row := []string{fmt.Sprintf("%d mons", s.Members)}
	for _, name := range analysis.StatOrder {
		v := fmt.Sprint(s.Average[name])
		if name == s.Strongest {
			v = goodStyle.Render(v)
		}
		row = append(row, v)
	}
	t.Row(row...)
	return t.Render() + "\n" + infoStyle.Render(fmt.Sprintf("Total %d, %s", s.Total, s.Bias))
}

// ImmunityText lists members whose ability blocks attack types outright.
func ImmunityText(imm []Immunity) string {
	if len(imm) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(boldStyle.Render("Ability immunities") + "\n")
	for _, im := range imm {
		sb.WriteString(fmt.Sprintf("  %s (slot %d, %s): %s\n", im.Member, im.Slot+1, game.Title(im.Ability), typeList(im.Types)))
	}
	return sb.String()
}

// Text renders the whole report.
func Text(r Report) string {
	parts := []string{
		titleStyle.Render(fmt.Sprintf("Team analysis, %s", r.Generation)),
		boldStyle.Render("Defense"),
		DefensiveTable(r.Defensive, r.Members),
		ImmunityText(r.Immunities),
		boldStyle.Render("Offense"),
		OffensiveTable(r.Offensive, r.Members),
		AdviceText(r.Advice),
		StatsText(r.Stats),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func MatchupTable(m analysis.Matchup) string {
	if len(m.Mine) == 0 || len(m.Rival) == 0 {
		return infoStyle.Render("Both teams need at least one member.")
	}
	t := newTable(append([]string{"Mine \\ Rival"}, m.Rival...)...)
	for i, row := range m.Rows {
		cells := []string{m.Mine[i]}
		for _, c := range row {
			cells = append(cells, offensiveCell(analysis.Cell{Filled: true, Multiplier: c.Multiplier}))
		}
		t.Row(cells...)
	}
	return t.Render()
}

// ChartTable renders the generation's full matrix, attackers down the side.
func ChartTable(gen int) string {
	rs := typechart.ForGeneration(gen)
	headers := []string{"Atk \\ Def"}
	for _, t := range rs.Types {
		headers = append(headers, strings.ToUpper(string(t)[:3]))
	}
	t := newTable(headers...)
	for _, atk := range rs.Types {
		row := []string{typeLabel(atk)}
		for _, def := range rs.Types {
			v := rs.Matrix.Effectiveness(atk, def)
			if v == 1 {
				row = append(row, "")
				continue
			}
			row = append(row, offensiveCell(analysis.Cell{Filled: true, Multiplier: v}))
		}
		t.Row(row...)
	}
	return t.Render()
}

// Efficacy is the one-line answer for a single attack type against a typing.
func Efficacy(atk game.Type, defenders []game.Type, mult float64) string {
	return fmt.Sprintf("%s vs %s: x%s (%s)", typeLabel(atk), typeList(defenders), calc.FormatMultiplier(mult), calc.Classify(mult))
}
