package calc

import (
	"strings"
	"unicode"

	"showdown-teambuilder/game"
)

// Modifiers maps a normalised ability or item name to per-type multipliers.
type Modifiers map[string]map[game.Type]float64

// Lookup returns the override for atk when name has one.
func (m Modifiers) Lookup(name string, atk game.Type) (float64, bool) {
	key := NormalizeName(name)
	if key == "" {
		return 0, false
	}
	row, ok := m[key]
	if !ok {
		return 0, false
	}
	v, ok := row[atk]
	return v, ok
}

func (m Modifiers) clone() Modifiers {
	out := make(Modifiers, len(m))
	for name, row := range m {
		cp := make(map[game.Type]float64, len(row))
		for t, v := range row {
			cp[t] = v
		}
		out[NormalizeName(name)] = cp
	}
	return out
}

// NormalizeName turns "Thick Fat", "thick_fat" and "THICK-FAT" into "thick-fat".
// The "none" placeholder normalises to "".
func NormalizeName(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.TrimSpace(strings.ToLower(s)) {
		if unicode.IsSpace(r) || r == '_' || r == '-' {
			dash = true
			continue
		}
		if dash && b.Len() > 0 {
			b.WriteByte('-')
		}
		dash = false
		b.WriteRune(r)
	}
	out := b.String()
	if out == game.NoneType {
		return ""
	}
	return out
}

// DefaultAbilityModifiers returns a fresh copy of the curated ability table.
func DefaultAbilityModifiers() Modifiers {
	return Modifiers{
		"levitate":        {game.Ground: 0},
		"thick-fat":       {game.Fire: 0.5, game.Ice: 0.5},
		"sap-sipper":      {game.Grass: 0},
		"volt-absorb":     {game.Electric: 0},
		"water-absorb":    {game.Water: 0},
		"flash-fire":      {game.Fire: 0},
		"earth-eater":     {game.Ground: 0},
		"well-baked-body": {game.Fire: 0},
		"wind-rider":      {game.Flying: 0},
	}
}

// DefaultItemModifiers returns a fresh copy of the curated held-item table.
func DefaultItemModifiers() Modifiers {
	return Modifiers{
		"air-balloon": {game.Ground: 0},
	}
}

// immunityAbilities is wider than the ability modifiers: it also names abilities whose
// immunity depends on more than the attack type (Wonder Guard, Dry Skin). It is display only.
var immunityAbilities = map[string][]game.Type{
	"levitate":      {game.Ground},
	"volt-absorb":   {game.Electric},
	"flash-fire":    {game.Fire},
	"lightning-rod": {game.Electric},
	"motor-drive":   {game.Electric},
	"water-absorb":  {game.Water},
	"dry-skin":      {game.Water},
	"sap-sipper":    {game.Grass},
	"earth-eater":   {game.Ground},
	"wonder-guard": {
		game.Normal, game.Water, game.Electric, game.Grass, game.Ice, game.Fighting, game.Poison,
		game.Ground, game.Psychic, game.Bug, game.Dragon, game.Steel, game.Fairy,
	},
}

// AbilityImmunities lists the attack types ability is known to block, nil when none.
// The result is a copy and never feeds Multiplier.
func AbilityImmunities(ability string) []game.Type {
	types, ok := immunityAbilities[NormalizeName(ability)]
	if !ok {
		return nil
	}
	return append([]game.Type(nil), types...)
}
