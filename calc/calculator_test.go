package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"showdown-teambuilder/game"
)

func mon(types ...game.Type) *game.Pokemon {
	return &game.Pokemon{Species: "Test", Types: types}
}

func TestMultiplierDualTypeIsProduct(t *testing.T) {
	c := New()
	venusaur := mon(game.Grass, game.Poison)
	assert.Equal(t, 2.0, c.Multiplier(game.Psychic, venusaur, 9))
	assert.Equal(t, 4.0, c.Multiplier(game.Flying, mon(game.Grass, game.Bug), 9))
	assert.Equal(t, 0.25, c.Multiplier(game.Grass, mon(game.Fire, game.Dragon), 9))
	assert.Equal(t, 0.0, c.Multiplier(game.Normal, mon(game.Ghost, game.Poison), 9))
}

func TestLevitateZeroesAPartialResist(t *testing.T) {
	c := New()
	p := mon(game.Ground, game.Grass)
	assert.Equal(t, 0.5, c.Multiplier(game.Ground, p, 9))

	p.Ability = "Levitate"
	assert.Equal(t, 0.0, c.Multiplier(game.Ground, p, 9))
	assert.Equal(t, 0.0, c.Multiplier(game.Ground, p, 3))
	assert.Equal(t, 0.5, c.Multiplier(game.Ground, p, 2), "abilities are inert before Gen 3")
	assert.Equal(t, 0.5, c.Multiplier(game.Ground, p, 1))
}

func TestThickFatHalves(t *testing.T) {
	c := New()
	snorlax := mon(game.Normal)
	snorlax.Ability = "thick fat"
	assert.Equal(t, 0.5, c.Multiplier(game.Fire, snorlax, 9))
	assert.Equal(t, 0.5, c.Multiplier(game.Ice, snorlax, 9))
	assert.Equal(t, 2.0, c.Multiplier(game.Fighting, snorlax, 9))

	mamoswine := mon(game.Ice, game.Ground)
	mamoswine.Ability = "Thick-Fat"
	assert.Equal(t, 1.0, c.Multiplier(game.Fire, mamoswine, 9))
}

func TestItemModifiers(t *testing.T) {
	c := New()
	heatran := mon(game.Fire, game.Steel)
	heatran.Item = "Air Balloon"
	assert.Equal(t, 0.0, c.Multiplier(game.Ground, heatran, 9))
	assert.Equal(t, 0.0, c.Multiplier(game.Ground, heatran, 2))
	assert.Equal(t, 2.0, c.Multiplier(game.Ground, heatran, 1), "items are inert in Gen 1, and Steel does not exist there")
}

func TestTypingImmunityIsNotRaisedByModifiers(t *testing.T) {
	c := New(WithItemModifiers(Modifiers{"iron-ball": {game.Ground: 2}}))
	p := mon(game.Flying)
	p.Item = "Iron Ball"
	assert.Equal(t, 0.0, c.Multiplier(game.Ground, p, 9))

	q := mon(game.Normal)
	q.Item = "iron ball"
	assert.Equal(t, 2.0, c.Multiplier(game.Ground, q, 9))
}

func TestCustomTypesReplaceNative(t *testing.T) {
	c := New()
	p := mon(game.Fire, game.Flying)
	p.Override = game.NewTypeOverride("water", "none")
	assert.Equal(t, 2.0, c.Multiplier(game.Electric, p, 9))
	assert.Equal(t, 1.0, c.Multiplier(game.Rock, p, 9))
}

func TestOutOfGenerationTypesDefendAsTypeless(t *testing.T) {
	c := New()
	p := mon(game.Normal)
	p.Override = game.NewTypeOverride("fairy")
	assert.Equal(t, 1.0, c.Multiplier(game.Dragon, p, 5))
	assert.Equal(t, 0.0, c.Multiplier(game.Dragon, p, 6))

	magnemite := mon(game.Electric, game.Steel)
	assert.Equal(t, 1.0, c.Multiplier(game.Fire, magnemite, 1))
	assert.Equal(t, 2.0, c.Multiplier(game.Fire, magnemite, 2))
}

func TestUnknownAbilityAndNonePlaceholder(t *testing.T) {
	c := New()
	p := mon(game.Ghost, game.Poison)
	p.Ability = "none"
	assert.Equal(t, 0.0, c.Multiplier(game.Normal, p, 9))
	p.Ability = "Cursed Body"
	assert.Equal(t, 2.0, c.Multiplier(game.Ground, p, 9))
}

func TestInjectedTablesAreCopied(t *testing.T) {
	table := Modifiers{"Storm Drain": {game.Water: 0}}
	c := New(WithAbilityModifiers(table))
	table["storm-drain"] = map[game.Type]float64{game.Water: 1}

	p := mon(game.Grass)
	p.Ability = "storm drain"
	assert.Equal(t, 0.0, c.Multiplier(game.Water, p, 9))

	p.Ability = "levitate"
	assert.Equal(t, 2.0, c.Multiplier(game.Ice, p, 9))
	assert.Equal(t, 0.5, c.Multiplier(game.Ground, p, 9), "default table was replaced")
}

func TestBestOffensive(t *testing.T) {
	c := New()
	power := 90
	zard := mon(game.Fire, game.Flying)
	zard.Moves = []game.Move{{Name: "Flamethrower", Type: game.Fire, Class: game.Special, Power: &power}, {}, {}, {}}

	assert.Equal(t, 2.0, c.BestOffensive(game.Grass, zard, 9))
	assert.Equal(t, 0.5, c.BestOffensive(game.Water, zard, 9))
	assert.Equal(t, 1.0, c.BestOffensive(game.Normal, zard, 9))

	zard.Moves = append(zard.Moves[:1], game.Move{Name: "Air Slash", Type: game.Flying, Class: game.Special})
	assert.Equal(t, 2.0, c.BestOffensive(game.Grass, zard, 9))
	assert.Equal(t, 0.5, c.BestOffensive(game.Rock, zard, 9))
}

func TestBestOffensiveNoData(t *testing.T) {
	c := New()
	p := mon(game.Normal)
	assert.Equal(t, NoData, c.BestOffensive(game.Normal, p, 9))

	p.Moves = []game.Move{{Name: "Swords Dance", Type: game.Normal, Class: game.Status}, {Name: "", Type: game.Fire, Class: game.Special}}
	assert.Equal(t, NoData, c.BestOffensive(game.Grass, p, 9))

	p.Moves = append(p.Moves, game.Move{Name: "Shadow Ball", Type: game.Ghost, Class: game.Special})
	assert.Equal(t, 0.0, c.BestOffensive(game.Normal, p, 9), "a real immunity is 0, not no data")
}

func TestBestAgainst(t *testing.T) {
	c := New()
	chomp := mon(game.Dragon, game.Ground)
	chomp.Moves = []game.Move{
		{Name: "Earthquake", Type: game.Ground, Class: game.Physical},
		{Name: "Dragon Claw", Type: game.Dragon, Class: game.Physical},
	}
	heatran := mon(game.Fire, game.Steel)
	assert.Equal(t, 4.0, c.BestAgainst(chomp, heatran, 9))

	heatran.Item = "air balloon"
	assert.Equal(t, 0.25, c.BestAgainst(chomp, heatran, 9))

	assert.Equal(t, NoData, c.BestAgainst(heatran, chomp, 9))
}

func TestWeaknessCount(t *testing.T) {
	c := New()
	assert.Equal(t, 4, c.WeaknessCount(mon(game.Grass, game.Poison), 9))
	assert.Equal(t, 1, c.WeaknessCount(mon(game.Normal), 1))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "thick-fat", NormalizeName("  Thick   Fat "))
	assert.Equal(t, "well-baked-body", NormalizeName("well_baked body"))
	assert.Equal(t, "air-balloon", NormalizeName("AIR-BALLOON"))
	assert.Equal(t, "", NormalizeName("None"))
	assert.Equal(t, "", NormalizeName(""))
}

func TestClassifyAndFormat(t *testing.T) {
	assert.Equal(t, Immune, Classify(0))
	assert.Equal(t, DoubleNotVeryEffective, Classify(0.25))
	assert.Equal(t, NotVeryEffective, Classify(0.5))
	assert.Equal(t, NormalEffective, Classify(1))
	assert.Equal(t, SuperEffective, Classify(2))
	assert.Equal(t, DoubleSuperEffective, Classify(4))
	assert.Equal(t, Unknown, Classify(NoData))
	assert.Equal(t, "super effective", SuperEffective.String())

	assert.Equal(t, "¼", FormatMultiplier(0.25))
	assert.Equal(t, "½", FormatMultiplier(0.5))
	assert.Equal(t, "4", FormatMultiplier(4))
	assert.Equal(t, "0", FormatMultiplier(0))
	assert.Equal(t, "-", FormatMultiplier(NoData))
}

func TestAbilityImmunities(t *testing.T) {
	assert.Equal(t, []game.Type{game.Ground}, AbilityImmunities("Levitate"))
	assert.Equal(t, []game.Type{game.Electric}, AbilityImmunities("Lightning Rod"))
	assert.Len(t, AbilityImmunities("wonder_guard"), 13)
	assert.Nil(t, AbilityImmunities("blaze"))
	assert.Nil(t, AbilityImmunities(""))

	got := AbilityImmunities("levitate")
	got[0] = game.Fire
	assert.Equal(t, []game.Type{game.Ground}, AbilityImmunities("levitate"))
}
