package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showdown-teambuilder/calc"
	"showdown-teambuilder/data"
	"showdown-teambuilder/game"
)

func testDex() *data.Dex {
	return data.NewDex(
		[]data.SpeciesData{
			{Name: "Garchomp", Types: []string{"Dragon", "Ground"}, Abilities: map[string]string{"0": "Sand Veil", "H": "Rough Skin"}},
			{Name: "Rotom-Wash", Types: []string{"Electric", "Water"}, Abilities: map[string]string{"0": "Levitate"}},
			{Name: "Weavile", Types: []string{"Dark", "Ice"}},
			{Name: "Heatran", Types: []string{"Fire", "Steel"}},
			{Name: "Skarmory", Types: []string{"Steel", "Flying"}},
		},
		[]data.MoveData{
			{Name: "Earthquake", Type: "Ground", Power: 100, Category: "Physical"},
			{Name: "Dragon Claw", Type: "Dragon", Power: 80, Category: "Physical"},
			{Name: "Ice Shard", Type: "Ice", Power: 40, Category: "Physical"},
			{Name: "Ice Beam", Type: "Ice", Power: 90, Category: "Special"},
			{Name: "Hydro Pump", Type: "Water", Power: 110, Category: "Special"},
			{Name: "Volt Switch", Type: "Electric", Power: 70, Category: "Special"},
			{Name: "Swords Dance", Type: "Normal", Category: "Status"},
		},
	)
}

const battleLog = `>battle-gen9ou-1
|init|battle
|player|p1|Ash|1|
|player|p2|Gary|2|
|gen|9
|poke|p1|Garchomp, F|
|poke|p1|Heatran, M|
|poke|p1|Skarmory, F|
|poke|p2|Rotom-Wash|
|poke|p2|Weavile, M|
|start
|switch|p1a: Chomp|Garchomp, F|100/100
|switch|p2a: Rotom-Wash|Rotom-Wash|100/100
|turn|1
|move|p1a: Chomp|Earthquake|p2a: Rotom-Wash
|-immune|p2a: Rotom-Wash|[from] ability: Levitate
|-ability|p2a: Rotom-Wash|Levitate
|move|p2a: Rotom-Wash|Hydro Pump|p1a: Chomp
|move|p1a: Chomp|Dragon Claw|p2a: Rotom-Wash
|move|p1a: Chomp|Swords Dance|p1a: Chomp
|move|p1a: Chomp|Earthquake|p2a: Rotom-Wash
|-item|p2a: Rotom-Wash|Air Balloon
|turn|2
`

func TestParseLogRecordsReveals(t *testing.T) {
	state, err := ParseLog(battleLog, testDex())
	require.NoError(t, err)

	assert.Equal(t, 9, state.Gen)
	assert.Equal(t, 2, state.Turn)
	require.Len(t, state.Players, 2)

	p1 := state.Players["p1"]
	assert.Equal(t, "Ash", p1.Name)
	assert.Equal(t, []string{"Garchomp", "Heatran", "Skarmory"}, p1.Order)

	chomp := p1.Active
	require.NotNil(t, chomp)
	assert.Equal(t, "Garchomp", chomp.Species)
	assert.Equal(t, "Chomp", chomp.Nickname)
	assert.Equal(t, []game.Type{game.Dragon, game.Ground}, chomp.Types)
	require.Len(t, chomp.Moves, 3, "duplicates are not recorded twice")
	assert.Equal(t, "Swords Dance", chomp.Moves[2].Name)
	assert.Len(t, chomp.DamagingMoves(), 2)

	rotom := state.Players["p2"].Active
	require.NotNil(t, rotom)
	assert.Equal(t, "Levitate", rotom.Ability)
	assert.Equal(t, "Air Balloon", rotom.Item)
	assert.Equal(t, game.Water, rotom.Moves[0].Type)
	assert.False(t, state.Ended)
}

func TestProcessLineRelevance(t *testing.T) {
	state := game.NewBattleState()
	assert.False(t, ProcessLine(state, nil, ">battle-gen9ou-1"))
	assert.False(t, ProcessLine(state, nil, "|-damage|p1a: X|50/100"))
	assert.False(t, ProcessLine(state, nil, "|move|p1a: Nobody|Tackle|p2a: X"))
	assert.False(t, ProcessLine(state, nil, "|switch|garbage|X|100/100"))
	assert.True(t, ProcessLine(state, nil, "|turn|3"))
	assert.True(t, ProcessLine(state, nil, "|switch|p1a: X|Ditto|100/100"))
	assert.Equal(t, "p1", state.Players["p1"].Name, "sides are created on first sight")
}

func TestItemLossFaintAndEnd(t *testing.T) {
	state, err := ParseLog(battleLog+`|-enditem|p2a: Rotom-Wash|Air Balloon
|faint|p2a: Rotom-Wash
|win|Ash
`, testDex())
	require.NoError(t, err)
	p2 := state.Players["p2"]
	assert.Empty(t, p2.Active.Item)
	assert.True(t, p2.Fainted["Rotom-Wash"])
	assert.True(t, state.Ended)
	assert.Equal(t, "Ash", state.Winner)

	tie := game.NewBattleState()
	assert.True(t, ProcessLine(tie, nil, "|tie"))
	assert.True(t, tie.Ended)
	assert.Empty(t, tie.Winner)
}

func TestBestMoveUsesAbilityAndItem(t *testing.T) {
	state, err := ParseLog(battleLog, testDex())
	require.NoError(t, err)
	c := calc.New()
	chomp := state.Players["p1"].Active
	rotom := state.Players["p2"].Active

	move, mult, ok := BestMove(c, chomp, rotom, 9)
	require.True(t, ok)
	assert.Equal(t, "Dragon Claw", move.Name, "levitate makes earthquake useless")
	assert.Equal(t, 0.5, mult)

	_, _, ok = BestMove(c, &game.Pokemon{Species: "Chansey"}, rotom, 9)
	assert.False(t, ok)
}

func TestBestMoveTiesPreferPower(t *testing.T) {
	weak, strong := 40, 90
	attacker := &game.Pokemon{Moves: []game.Move{
		{Name: "Ice Shard", Type: game.Ice, Class: game.Physical, Power: &weak},
		{Name: "Ice Beam", Type: game.Ice, Class: game.Special, Power: &strong},
	}}
	defender := &game.Pokemon{Types: []game.Type{game.Dragon, game.Ground}}
	move, mult, ok := BestMove(calc.New(), attacker, defender, 9)
	require.True(t, ok)
	assert.Equal(t, "Ice Beam", move.Name)
	assert.Equal(t, 4.0, mult)
}

func TestBestSwitch(t *testing.T) {
	state, err := ParseLog(battleLog, testDex())
	require.NoError(t, err)
	c := calc.New()
	p1 := state.Players["p1"]
	rotom := state.Players["p2"].Active

	// Rotom has shown Hydro Pump: Garchomp takes 1x, Heatran 2x, Skarmory 1x. Nothing beats the active.
	_, _, ok := BestSwitch(c, p1, rotom, 9)
	assert.False(t, ok)

	weavile := &game.Pokemon{Species: "Weavile", Types: []game.Type{game.Dark, game.Ice}}
	sw, score, ok := BestSwitch(c, p1, weavile, 9)
	require.True(t, ok)
	assert.Equal(t, "Heatran", sw.Species, "unrevealed moves fall back to the rival's own types")
	assert.Equal(t, 1.0, score)

	p1.Fainted["Heatran"] = true
	sw, _, ok = BestSwitch(c, p1, weavile, 9)
	require.True(t, ok)
	assert.Equal(t, "Skarmory", sw.Species)
}

func TestRenderScouting(t *testing.T) {
	state, err := ParseLog(battleLog+"|player|p2|<script>|\n", testDex())
	require.NoError(t, err)
	html := RenderScouting(state, calc.New())

	assert.True(t, strings.HasPrefix(html, "<div class='battle-summary'>"))
	assert.Contains(t, html, "Turn 2")
	assert.Contains(t, html, "Chomp")
	assert.Contains(t, html, "Best move: <b>Dragon Claw</b>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "<table class='matchup'>")
	assert.Contains(t, html, "Moves seen: Earthquake, Dragon Claw, Swords Dance")
	assert.NotContains(t, html, "Winner")
	assert.Contains(t, html, "<span class='immune'>immune: <span class='type'")
	assert.Contains(t, html, ">Ground</span>")
}

func formeDex() *data.Dex {
	return data.NewDex(
		[]data.SpeciesData{
			{Name: "Urshifu", Types: []string{"Fighting", "Dark"}},
			{Name: "Urshifu-Rapid-Strike", Types: []string{"Fighting", "Water"}},
			{Name: "Charizard", Types: []string{"Fire", "Flying"}},
			{Name: "Charizard-Mega-X", Types: []string{"Fire", "Dragon"}},
		},
		[]data.MoveData{{Name: "Surging Strikes", Type: "Water", Power: 25, Category: "Physical"}},
	)
}

func TestWildcardFormeIsRevealedOnce(t *testing.T) {
	log := `|player|p2|Gary|2|
|poke|p2|Urshifu-*, M|
|poke|p2|Charizard, M|
|switch|p2a: Fist|Urshifu-Rapid-Strike, M|100/100
|move|p2a: Fist|Surging Strikes|p1a: X
|faint|p2a: Fist
`
	state, err := ParseLog(log, formeDex())
	require.NoError(t, err)

	gary := state.Players["p2"]
	assert.Equal(t, []string{"Urshifu-Rapid-Strike", "Charizard"}, gary.Order)
	require.Len(t, gary.Team, 2)
	fist := gary.Team["Urshifu-Rapid-Strike"]
	require.NotNil(t, fist)
	assert.Same(t, fist, gary.Active)
	assert.Equal(t, "Fist", fist.Nickname)
	assert.Equal(t, []game.Type{game.Fighting, game.Water}, fist.Types, "typing follows the real forme")
	require.Len(t, fist.Moves, 1)
	assert.True(t, gary.Fainted["Urshifu-Rapid-Strike"])
}

func TestDetailsChangeRenamesEntry(t *testing.T) {
	state := game.NewBattleState()
	dex := formeDex()
	require.True(t, ProcessLine(state, dex, "|switch|p1a: Zard|Charizard, M|100/100"))
	require.True(t, ProcessLine(state, dex, "|detailschange|p1a: Zard|Charizard-Mega-X, M"))

	ash := state.Players["p1"]
	assert.Equal(t, []string{"Charizard-Mega-X"}, ash.Order)
	zard := ash.Active
	require.NotNil(t, zard)
	assert.Equal(t, "Charizard-Mega-X", zard.Species)
	assert.Equal(t, []game.Type{game.Fire, game.Dragon}, zard.Types)
	assert.Same(t, zard, ash.ByNickname("Zard"))

	assert.False(t, ProcessLine(state, dex, "|detailschange|p1a: Nobody|Mew"))
}
