package advisor

import (
	"showdown-teambuilder/game"
	"showdown-teambuilder/typechart"
)

// Archetype is a well-known defensive typing with a few Pokémon that carry it.
// Example names are flavour text, not a strength ranking.
type Archetype struct {
	Types    []game.Type
	Examples []string
	Since    int
}

func (a Archetype) has(t game.Type) bool {
	for _, at := range a.Types {
		if at == t {
			return true
		}
	}
	return false
}

func (a Archetype) availableIn(gen int) bool {
	if gen < a.Since {
		return false
	}
	for _, t := range a.Types {
		if !typechart.HasType(gen, t) {
			return false
		}
	}
	return true
}

var archetypes = []Archetype{
	{Types: []game.Type{game.Water, game.Ground}, Examples: []string{"Swampert", "Gastrodon", "Quagsire"}, Since: 2},
	{Types: []game.Type{game.Steel, game.Flying}, Examples: []string{"Skarmory", "Corviknight"}, Since: 2},
	{Types: []game.Type{game.Steel, game.Fairy}, Examples: []string{"Klefki", "Magearna"}, Since: 6},
	{Types: []game.Type{game.Water, game.Steel}, Examples: []string{"Empoleon"}, Since: 4},
	{Types: []game.Type{game.Fire, game.Steel}, Examples: []string{"Heatran"}, Since: 4},
	{Types: []game.Type{game.Ground, game.Steel}, Examples: []string{"Excadrill"}, Since: 5},
	{Types: []game.Type{game.Grass, game.Steel}, Examples: []string{"Ferrothorn"}, Since: 4},
	{Types: []game.Type{game.Grass, game.Poison}, Examples: []string{"Venusaur", "Amoonguss"}, Since: 1},
	{Types: []game.Type{game.Water, game.Fairy}, Examples: []string{"Azumarill", "Primarina"}, Since: 6},
	{Types: []game.Type{game.Ground, game.Flying}, Examples: []string{"Gliscor", "Landorus-Therian"}, Since: 4},
	{Types: []game.Type{game.Dragon, game.Ground}, Examples: []string{"Garchomp"}, Since: 4},
	{Types: []game.Type{game.Dragon, game.Steel}, Examples: []string{"Dialga", "Duraludon"}, Since: 4},
	{Types: []game.Type{game.Water, game.Dragon}, Examples: []string{"Kingdra", "Palkia"}, Since: 2},
	{Types: []game.Type{game.Electric, game.Steel}, Examples: []string{"Magnezone"}, Since: 4},
	{Types: []game.Type{game.Ghost, game.Steel}, Examples: []string{"Aegislash", "Gholdengo"}, Since: 6},
	{Types: []game.Type{game.Dark, game.Steel}, Examples: []string{"Kingambit", "Bisharp"}, Since: 5},
	{Types: []game.Type{game.Bug, game.Steel}, Examples: []string{"Scizor", "Forretress"}, Since: 2},
	{Types: []game.Type{game.Psychic, game.Steel}, Examples: []string{"Metagross", "Bronzong"}, Since: 3},
	{Types: []game.Type{game.Psychic, game.Fairy}, Examples: []string{"Hatterene", "Gardevoir"}, Since: 6},
	{Types: []game.Type{game.Ghost, game.Fairy}, Examples: []string{"Mimikyu"}, Since: 7},
	{Types: []game.Type{game.Ghost, game.Dark}, Examples: []string{"Sableye", "Spiritomb"}, Since: 3},
	{Types: []game.Type{game.Poison, game.Dark}, Examples: []string{"Drapion", "Skuntank"}, Since: 4},
	{Types: []game.Type{game.Fighting, game.Steel}, Examples: []string{"Lucario"}, Since: 4},
	{Types: []game.Type{game.Fire, game.Flying}, Examples: []string{"Charizard", "Talonflame"}, Since: 1},
	{Types: []game.Type{game.Water, game.Psychic}, Examples: []string{"Slowbro", "Starmie"}, Since: 1},
	{Types: []game.Type{game.Rock, game.Ground}, Examples: []string{"Golem", "Rhydon"}, Since: 1},
	{Types: []game.Type{game.Water, game.Ice}, Examples: []string{"Lapras", "Cloyster"}, Since: 1},
	{Types: []game.Type{game.Normal, game.Flying}, Examples: []string{"Pidgeot", "Staraptor"}, Since: 1},
}
