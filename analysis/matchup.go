package analysis

import (
	"math"

	"showdown-teambuilder/game"
)

type MatchupCell struct {
	Attacker   string  `json:"attacker"`
	Defender   string  `json:"defender"`
	Multiplier float64 `json:"multiplier"`
}

// Matchup is the rival grid: Rows[i][j] is the best multiplier my i-th member reaches
// against the rival's j-th member. Empty slots on either side are left out.
type Matchup struct {
	Mine  []string        `json:"mine"`
	Rival []string        `json:"rival"`
	Rows  [][]MatchupCell `json:"rows"`
}

func Matchups(c Calculator, mine, rival game.Roster, gen int) Matchup {
	out := Matchup{Mine: []string{}, Rival: []string{}, Rows: [][]MatchupCell{}}
	rivals := rival.Members()
	for _, s := range rivals {
		out.Rival = append(out.Rival, s.Pokemon.DisplayName())
	}
	for _, me := range mine.Members() {
		out.Mine = append(out.Mine, me.Pokemon.DisplayName())
		row := make([]MatchupCell, 0, len(rivals))
		for _, them := range rivals {
			row = append(row, MatchupCell{
				Attacker:   me.Pokemon.DisplayName(),
				Defender:   them.Pokemon.DisplayName(),
				Multiplier: c.BestAgainst(me.Pokemon, them.Pokemon, gen),
			})
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

type StatSummary struct {
	Members   int            `json:"members"`
	Average   map[string]int `json:"average"`
	Total     int            `json:"total"`
	Strongest string         `json:"strongest"`
	Bias      string         `json:"bias"`
}

// StatOrder is the display order for base stats.
var StatOrder = []string{"HP", "ATK", "DEF", "SPA", "SPD", "SPE"}

// AverageStats averages base stats over members that carry them. Averages are rounded
// per stat; Total is the sum of the rounded averages.
func AverageStats(r game.Roster) StatSummary {
	sum := make([]int, len(StatOrder))
	n := 0
	for _, s := range r.Members() {
		st := s.Pokemon.Stats
		if st.Zero() {
			continue
		}
		n++
		for i, v := range []int{st.HP, st.Attack, st.Defense, st.SpAttack, st.SpDefense, st.Speed} {
			sum[i] += v
		}
	}
	out := StatSummary{Members: n, Average: make(map[string]int, len(StatOrder)), Bias: "balanced"}
	best := -1
	for i, name := range StatOrder {
		avg := 0
		if n > 0 {
			avg = int(math.Round(float64(sum[i]) / float64(n)))
		}
		out.Average[name] = avg
		out.Total += avg
		if avg > best {
			best = avg
			out.Strongest = name
		}
	}
	if n == 0 {
		out.Strongest = ""
	}
	if out.Average["SPE"] > 100 {
		out.Bias = "hyper offense"
	}
	return out
}
