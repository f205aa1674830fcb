package typechart

import (
	"showdown-teambuilder/game"
)

type chart map[game.Type]map[game.Type]float64

// Attacking type -> defending type. Anything not listed is neutral.
var modernChart = chart{
	game.Normal:   {game.Rock: 0.5, game.Ghost: 0, game.Steel: 0.5},
	game.Fire:     {game.Fire: 0.5, game.Water: 0.5, game.Grass: 2, game.Ice: 2, game.Bug: 2, game.Rock: 0.5, game.Dragon: 0.5, game.Steel: 2},
	game.Water:    {game.Fire: 2, game.Water: 0.5, game.Grass: 0.5, game.Ground: 2, game.Rock: 2, game.Dragon: 0.5},
	game.Electric: {game.Water: 2, game.Electric: 0.5, game.Grass: 0.5, game.Ground: 0, game.Flying: 2, game.Dragon: 0.5},
	game.Grass:    {game.Fire: 0.5, game.Water: 2, game.Grass: 0.5, game.Poison: 0.5, game.Ground: 2, game.Flying: 0.5, game.Bug: 0.5, game.Rock: 2, game.Dragon: 0.5, game.Steel: 0.5},
	game.Ice:      {game.Fire: 0.5, game.Water: 0.5, game.Grass: 2, game.Ice: 0.5, game.Ground: 2, game.Flying: 2, game.Dragon: 2, game.Steel: 0.5},
	game.Fighting: {game.Normal: 2, game.Ice: 2, game.Poison: 0.5, game.Flying: 0.5, game.Psychic: 0.5, game.Bug: 0.5, game.Rock: 2, game.Ghost: 0, game.Dark: 2, game.Steel: 2, game.Fairy: 0.5},
	game.Poison:   {game.Grass: 2, game.Poison: 0.5, game.Ground: 0.5, game.Rock: 0.5, game.Ghost: 0.5, game.Steel: 0, game.Fairy: 2},
	game.Ground:   {game.Fire: 2, game.Electric: 2, game.Grass: 0.5, game.Poison: 2, game.Flying: 0, game.Bug: 0.5, game.Rock: 2, game.Steel: 2},
	game.Flying:   {game.Electric: 0.5, game.Grass: 2, game.Fighting: 2, game.Bug: 2, game.Rock: 0.5, game.Steel: 0.5},
	game.Psychic:  {game.Fighting: 2, game.Poison: 2, game.Psychic: 0.5, game.Dark: 0, game.Steel: 0.5},
	game.Bug:      {game.Fire: 0.5, game.Grass: 2, game.Fighting: 0.5, game.Poison: 0.5, game.Flying: 0.5, game.Psychic: 2, game.Ghost: 0.5, game.Dark: 2, game.Steel: 0.5, game.Fairy: 0.5},
	game.Rock:     {game.Fire: 2, game.Ice: 2, game.Fighting: 0.5, game.Ground: 0.5, game.Flying: 2, game.Bug: 2, game.Steel: 0.5},
	game.Ghost:    {game.Normal: 0, game.Psychic: 2, game.Ghost: 2, game.Dark: 0.5},
	game.Dragon:   {game.Dragon: 2, game.Steel: 0.5, game.Fairy: 0},
	game.Dark:     {game.Fighting: 0.5, game.Psychic: 2, game.Ghost: 2, game.Dark: 0.5, game.Fairy: 0.5},
	game.Steel:    {game.Fire: 0.5, game.Water: 0.5, game.Electric: 0.5, game.Ice: 2, game.Rock: 2, game.Steel: 0.5, game.Fairy: 2},
	game.Fairy:    {game.Fire: 0.5, game.Fighting: 2, game.Poison: 0.5, game.Dragon: 2, game.Dark: 2, game.Steel: 0.5},
}

// Red/Blue/Yellow, including the cartridge bugs: Ice is neutral on Fire, Poison and Bug hit each
// other super effectively, and Ghost does nothing to Psychic.
var gen1Chart = chart{
	game.Normal:   {game.Rock: 0.5, game.Ghost: 0},
	game.Fire:     {game.Fire: 0.5, game.Water: 0.5, game.Grass: 2, game.Ice: 2, game.Bug: 2, game.Rock: 0.5, game.Dragon: 0.5},
	game.Water:    {game.Fire: 2, game.Water: 0.5, game.Grass: 0.5, game.Ground: 2, game.Rock: 2, game.Dragon: 0.5},
	game.Electric: {game.Water: 2, game.Electric: 0.5, game.Grass: 0.5, game.Ground: 0, game.Flying: 2, game.Dragon: 0.5},
	game.Grass:    {game.Fire: 0.5, game.Water: 2, game.Grass: 0.5, game.Poison: 0.5, game.Ground: 2, game.Flying: 0.5, game.Bug: 0.5, game.Rock: 2, game.Dragon: 0.5},
	game.Ice:      {game.Fire: 1, game.Water: 0.5, game.Grass: 2, game.Ice: 0.5, game.Ground: 2, game.Flying: 2, game.Dragon: 2},
	game.Fighting: {game.Normal: 2, game.Ice: 2, game.Poison: 0.5, game.Flying: 0.5, game.Psychic: 0.5, game.Bug: 0.5, game.Rock: 2, game.Ghost: 0},
	game.Poison:   {game.Grass: 2, game.Poison: 0.5, game.Ground: 0.5, game.Rock: 0.5, game.Ghost: 0.5, game.Bug: 2},
	game.Ground:   {game.Fire: 2, game.Electric: 2, game.Grass: 0.5, game.Poison: 2, game.Flying: 0, game.Bug: 0.5, game.Rock: 2},
	game.Flying:   {game.Electric: 0.5, game.Grass: 2, game.Fighting: 2, game.Bug: 2, game.Rock: 0.5},
	game.Psychic:  {game.Fighting: 2, game.Poison: 2, game.Psychic: 0.5},
	game.Bug:      {game.Fire: 0.5, game.Grass: 2, game.Fighting: 0.5, game.Poison: 2, game.Flying: 0.5, game.Psychic: 2, game.Ghost: 0.5},
	game.Rock:     {game.Fire: 2, game.Ice: 2, game.Fighting: 0.5, game.Ground: 0.5, game.Flying: 2, game.Bug: 2},
	game.Ghost:    {game.Normal: 0, game.Psychic: 0, game.Ghost: 2},
	game.Dragon:   {game.Dragon: 2},
}

// gen2to5Chart is the modern chart without Fairy, with Steel still resisting Ghost and Dark.
var gen2to5Chart = func() chart {
	c := make(chart, len(modernChart))
	for atk, row := range modernChart {
		if atk == game.Fairy {
			continue
		}
		out := make(map[game.Type]float64, len(row))
		for def, mult := range row {
			if def == game.Fairy {
				continue
			}
			out[def] = mult
		}
		c[atk] = out
	}
	c[game.Ghost][game.Steel] = 0.5
	c[game.Dark][game.Steel] = 0.5
	return c
}()

// Matrix is a read-only view over one generation's chart.
type Matrix struct {
	tier  Tier
	cells chart
}

// Effectiveness returns the multiplier for atk hitting a single def type. Missing entries are neutral.
func (m Matrix) Effectiveness(atk, def game.Type) float64 {
	if row, ok := m.cells[atk]; ok {
		if v, ok := row[def]; ok {
			return v
		}
	}
	return 1
}

func (m Matrix) Tier() Tier {
	return m.tier
}

// Row returns every non-neutral entry for atk, keyed by defending type.
func (m Matrix) Row(atk game.Type) map[game.Type]float64 {
	out := make(map[game.Type]float64)
	for def, v := range m.cells[atk] {
		if v != 1 {
			out[def] = v
		}
	}
	return out
}
