package typechart

import (
	"fmt"

	"showdown-teambuilder/game"
)

// Tier groups generations that share a chart and a type list.
type Tier int

const (
	TierGen1 Tier = iota + 1
	TierGen2to5
	TierModern
)

func (t Tier) String() string {
	switch t {
	case TierGen1:
		return "gen1"
	case TierGen2to5:
		return "gen2-5"
	default:
		return "modern"
	}
}

const (
	FirstGeneration  = 1
	LatestGeneration = 9
)

// TierFor clamps out-of-range ids to the nearest tier.
func TierFor(gen int) Tier {
	switch {
	case gen <= 1:
		return TierGen1
	case gen <= 5:
		return TierGen2to5
	default:
		return TierModern
	}
}

func MatrixForGeneration(gen int) Matrix {
	tier := TierFor(gen)
	switch tier {
	case TierGen1:
		return Matrix{tier: tier, cells: gen1Chart}
	case TierGen2to5:
		return Matrix{tier: tier, cells: gen2to5Chart}
	default:
		return Matrix{tier: tier, cells: modernChart}
	}
}

// TypesForGeneration returns a fresh copy of the generation's type list in canonical order.
func TypesForGeneration(gen int) []game.Type {
	tier := TierFor(gen)
	types := make([]game.Type, 0, len(game.AllTypes))
	for _, t := range game.AllTypes {
		switch {
		case tier == TierGen1 && (t == game.Dark || t == game.Steel || t == game.Fairy):
			continue
		case tier == TierGen2to5 && t == game.Fairy:
			continue
		}
		types = append(types, t)
	}
	return types
}

// HasType reports whether t exists under the generation's ruleset.
func HasType(gen int, t game.Type) bool {
	tier := TierFor(gen)
	switch t {
	case game.Dark, game.Steel:
		return tier != TierGen1
	case game.Fairy:
		return tier == TierModern
	}
	_, ok := game.ParseType(string(t))
	return ok
}

// Ruleset bundles what the engine needs for one generation.
type Ruleset struct {
	Generation int
	Types      []game.Type
	Matrix     Matrix
}

func ForGeneration(gen int) Ruleset {
	return Ruleset{
		Generation: gen,
		Types:      TypesForGeneration(gen),
		Matrix:     MatrixForGeneration(gen),
	}
}

type Generation struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Region   string `json:"region"`
	DexLimit int    `json:"dexLimit"`
}

var Generations = []Generation{
	{ID: 1, Name: "Gen 1", Region: "Kanto", DexLimit: 151},
	{ID: 2, Name: "Gen 2", Region: "Johto", DexLimit: 251},
	{ID: 3, Name: "Gen 3", Region: "Hoenn", DexLimit: 386},
	{ID: 4, Name: "Gen 4", Region: "Sinnoh", DexLimit: 493},
	{ID: 5, Name: "Gen 5", Region: "Unova", DexLimit: 649},
	{ID: 6, Name: "Gen 6", Region: "Kalos", DexLimit: 721},
	{ID: 7, Name: "Gen 7", Region: "Alola", DexLimit: 809},
	{ID: 8, Name: "Gen 8", Region: "Galar", DexLimit: 898},
	{ID: 9, Name: "Gen 9", Region: "Paldea", DexLimit: 1025},
}

func ClampGeneration(gen int) int {
	if gen < FirstGeneration {
		return FirstGeneration
	}
	if gen > LatestGeneration {
		return LatestGeneration
	}
	return gen
}

// Lookup returns the metadata for gen after clamping it to the known range.
func Lookup(gen int) Generation {
	return Generations[ClampGeneration(gen)-1]
}

func (g Generation) String() string {
	return fmt.Sprintf("%s (%s)", g.Name, g.Region)
}

var typeColors = map[game.Type]string{
	game.Normal:   "#A8A77A",
	game.Fire:     "#EE8130",
	game.Water:    "#6390F0",
	game.Electric: "#F7D02C",
	game.Grass:    "#7AC74C",
	game.Ice:      "#96D9D6",
	game.Fighting: "#C22E28",
	game.Poison:   "#A33EA1",
	game.Ground:   "#E2BF65",
	game.Flying:   "#A98FF3",
	game.Psychic:  "#F95587",
	game.Bug:      "#A6B91A",
	game.Rock:     "#B6A136",
	game.Ghost:    "#735797",
	game.Dragon:   "#6F35FC",
	game.Dark:     "#705746",
	game.Steel:    "#B7B7CE",
	game.Fairy:    "#D685AD",
}

// TypeColor returns the hex colour used when rendering t.
func TypeColor(t game.Type) string {
	if c, ok := typeColors[t]; ok {
		return c
	}
	return "#777777"
}
