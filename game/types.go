package game

import "strings"

type Type string

const (
	Normal   Type = "normal"
	Fire     Type = "fire"
	Water    Type = "water"
	Electric Type = "electric"
	Grass    Type = "grass"
	Ice      Type = "ice"
	Fighting Type = "fighting"
	Poison   Type = "poison"
	Ground   Type = "ground"
	Flying   Type = "flying"
	Psychic  Type = "psychic"
	Bug      Type = "bug"
	Rock     Type = "rock"
	Ghost    Type = "ghost"
	Dragon   Type = "dragon"
	Dark     Type = "dark"
	Steel    Type = "steel"
	Fairy    Type = "fairy"
)

// AllTypes is the canonical ordering used for every type listing.
var AllTypes = []Type{
	Normal, Fire, Water, Electric, Grass, Ice, Fighting, Poison, Ground,
	Flying, Psychic, Bug, Rock, Ghost, Dragon, Dark, Steel, Fairy,
}

// NoneType is the placeholder used by builds for an unset second type slot.
const NoneType = "none"

var typeIndex = func() map[string]Type {
	m := make(map[string]Type, len(AllTypes))
	for _, t := range AllTypes {
		m[string(t)] = t
	}
	return m
}()

// ParseType accepts any casing. The "none" placeholder and empty strings are rejected.
func ParseType(s string) (Type, bool) {
	t, ok := typeIndex[strings.ToLower(strings.TrimSpace(s))]
	return t, ok
}

func (t Type) String() string {
	return string(t)
}

type DamageClass string

const (
	Physical DamageClass = "physical"
	Special  DamageClass = "special"
	Status   DamageClass = "status"
)

func ParseDamageClass(s string) (DamageClass, bool) {
	switch DamageClass(strings.ToLower(strings.TrimSpace(s))) {
	case Physical:
		return Physical, true
	case Special:
		return Special, true
	case Status:
		return Status, true
	}
	return "", false
}
