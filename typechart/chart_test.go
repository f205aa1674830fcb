package typechart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"showdown-teambuilder/game"
)

var allowed = map[float64]bool{0: true, 0.25: true, 0.5: true, 1: true, 2: true, 4: true}

func TestMatrixValuesAreFromTheFixedSet(t *testing.T) {
	for _, gen := range []int{1, 3, 9} {
		m := MatrixForGeneration(gen)
		for _, atk := range game.AllTypes {
			for _, def := range game.AllTypes {
				v := m.Effectiveness(atk, def)
				assert.Truef(t, allowed[v], "gen %d %s->%s = %v", gen, atk, def, v)
			}
		}
	}
}

func TestAsymmetry(t *testing.T) {
	m := MatrixForGeneration(9)
	assert.Equal(t, 2.0, m.Effectiveness(game.Fire, game.Grass))
	assert.Equal(t, 0.5, m.Effectiveness(game.Grass, game.Fire))
	assert.Equal(t, 0.0, m.Effectiveness(game.Normal, game.Ghost))
	assert.Equal(t, 0.0, m.Effectiveness(game.Ghost, game.Normal))
	assert.Equal(t, 2.0, m.Effectiveness(game.Fighting, game.Normal))
	assert.Equal(t, 1.0, m.Effectiveness(game.Normal, game.Fighting))
}

func TestMissingEntryIsNeutral(t *testing.T) {
	m := MatrixForGeneration(9)
	assert.Equal(t, 1.0, m.Effectiveness(game.Normal, game.Water))
	assert.Equal(t, 1.0, m.Effectiveness(game.Type("shadow"), game.Water))
	assert.Equal(t, 1.0, m.Effectiveness(game.Water, game.Type("shadow")))
}

func TestGenerationQuirks(t *testing.T) {
	tests := []struct {
		name     string
		gen      int
		atk, def game.Type
		want     float64
	}{
		{"Gen1IceNeutralOnFire", 1, game.Ice, game.Fire, 1},
		{"Gen1PoisonHitsBug", 1, game.Poison, game.Bug, 2},
		{"Gen1BugHitsPoison", 1, game.Bug, game.Poison, 2},
		{"Gen1GhostMissesPsychic", 1, game.Ghost, game.Psychic, 0},
		{"Gen1PsychicNeutralOnGhost", 1, game.Psychic, game.Ghost, 1},
		{"Gen2IceResistedByFire", 2, game.Ice, game.Fire, 0.5},
		{"Gen4SteelResistsGhost", 4, game.Ghost, game.Steel, 0.5},
		{"Gen5SteelResistsDark", 5, game.Dark, game.Steel, 0.5},
		{"Gen5NoFairyColumn", 5, game.Dragon, game.Fairy, 1},
		{"Gen5NoFairyRow", 5, game.Fairy, game.Dragon, 1},
		{"Gen6SteelNeutralOnGhost", 6, game.Ghost, game.Steel, 1},
		{"Gen6SteelNeutralOnDark", 6, game.Dark, game.Steel, 1},
		{"Gen9FairyImmuneToDragon", 9, game.Dragon, game.Fairy, 0},
		{"ClampLow", -3, game.Ghost, game.Psychic, 0},
		{"ClampHigh", 42, game.Dragon, game.Fairy, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MatrixForGeneration(tc.gen).Effectiveness(tc.atk, tc.def)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestModernChartIsUntouchedByDerivation(t *testing.T) {
	m := MatrixForGeneration(9)
	assert.Equal(t, 1.0, m.Effectiveness(game.Ghost, game.Steel))
	assert.Equal(t, 2.0, m.Effectiveness(game.Fairy, game.Dragon))
}

func TestTypesForGeneration(t *testing.T) {
	gen1 := TypesForGeneration(1)
	assert.Len(t, gen1, 15)
	assert.NotContains(t, gen1, game.Dark)
	assert.NotContains(t, gen1, game.Steel)
	assert.NotContains(t, gen1, game.Fairy)

	gen5 := TypesForGeneration(5)
	assert.Len(t, gen5, 17)
	assert.Contains(t, gen5, game.Steel)
	assert.NotContains(t, gen5, game.Fairy)

	gen6 := TypesForGeneration(6)
	assert.Equal(t, game.AllTypes, gen6)
	assert.Equal(t, game.AllTypes, TypesForGeneration(100))
	assert.Equal(t, gen1, TypesForGeneration(0))

	gen6[0] = game.Fairy
	assert.Equal(t, game.Normal, TypesForGeneration(6)[0], "callers get their own copy")
}

func TestHasType(t *testing.T) {
	assert.False(t, HasType(1, game.Steel))
	assert.True(t, HasType(2, game.Steel))
	assert.False(t, HasType(5, game.Fairy))
	assert.True(t, HasType(6, game.Fairy))
	assert.True(t, HasType(1, game.Fire))
	assert.False(t, HasType(9, game.Type("none")))
}

func TestLookup(t *testing.T) {
	assert.Equal(t, "Kanto", Lookup(0).Region)
	assert.Equal(t, "Paldea", Lookup(12).Region)
	assert.Equal(t, 493, Lookup(4).DexLimit)
	assert.Equal(t, "Gen 6 (Kalos)", Lookup(6).String())
	assert.Equal(t, TierGen2to5, ForGeneration(3).Matrix.Tier())
}

func TestRow(t *testing.T) {
	row := MatrixForGeneration(9).Row(game.Electric)
	assert.Equal(t, 0.0, row[game.Ground])
	assert.Equal(t, 2.0, row[game.Water])
	_, ok := row[game.Normal]
	assert.False(t, ok)
	_, ok = MatrixForGeneration(1).Row(game.Ice)[game.Fire]
	assert.False(t, ok, "explicit neutral entries are not reported")
}
