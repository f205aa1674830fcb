// Package calc computes single-matchup type multipliers. Every function here is total and
// side-effect free; "no data" is reported through the NoData sentinel, never an error.
package calc

import (
	"showdown-teambuilder/game"
	"showdown-teambuilder/typechart"
)

// NoData is returned by the offensive lookups when the attacker has no damaging move.
// It is not a multiplier and must never be counted as one.
const NoData = -1.0

const (
	abilitiesFrom = 3
	itemsFrom     = 2
)

type Calculator struct {
	abilities Modifiers
	items     Modifiers
}

type Option func(*Calculator)

// WithAbilityModifiers replaces the ability table. The table is copied.
func WithAbilityModifiers(m Modifiers) Option {
	return func(c *Calculator) { c.abilities = m.clone() }
}

// WithItemModifiers replaces the held-item table. The table is copied.
func WithItemModifiers(m Modifiers) Option {
	return func(c *Calculator) { c.items = m.clone() }
}

func New(opts ...Option) *Calculator {
	c := &Calculator{
		abilities: DefaultAbilityModifiers(),
		items:     DefaultItemModifiers(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefendingTypes resolves the typing that defends for p under gen. Types missing from the
// generation's ruleset are dropped, so a Fairy slot in a Gen 5 format defends as typeless.
func DefendingTypes(p *game.Pokemon, gen int) []game.Type {
	var out []game.Type
	for _, t := range p.EffectiveTypes() {
		if typechart.HasType(gen, t) {
			out = append(out, t)
		}
	}
	return out
}

// Multiplier is the damage multiplier an atk-type attack deals to defender under gen.
// Typing resolves first; ability and item overrides only apply while the result is non-zero.
func (c *Calculator) Multiplier(atk game.Type, defender *game.Pokemon, gen int) float64 {
	m := typechart.MatrixForGeneration(gen)
	mult := 1.0
	for _, def := range DefendingTypes(defender, gen) {
		mult *= m.Effectiveness(atk, def)
	}
	if mult > 0 && gen >= abilitiesFrom {
		if v, ok := c.abilities.Lookup(defender.Ability, atk); ok {
			mult *= v
		}
	}
	if mult > 0 && gen >= itemsFrom {
		if v, ok := c.items.Lookup(defender.Item, atk); ok {
			mult *= v
		}
	}
	return mult
}

// BestOffensive is the best single-type multiplier any of attacker's damaging moves reaches
// against def, or NoData when the attacker has none.
func (c *Calculator) BestOffensive(def game.Type, attacker *game.Pokemon, gen int) float64 {
	moves := attacker.DamagingMoves()
	if len(moves) == 0 {
		return NoData
	}
	m := typechart.MatrixForGeneration(gen)
	best := NoData
	for _, mv := range moves {
		if v := m.Effectiveness(mv.Type, def); v > best {
			best = v
		}
	}
	return best
}

// BestAgainst is the best multiplier attacker's damaging moves reach against a concrete
// defender, abilities and items included. NoData when the attacker has no damaging move.
func (c *Calculator) BestAgainst(attacker, defender *game.Pokemon, gen int) float64 {
	moves := attacker.DamagingMoves()
	if len(moves) == 0 {
		return NoData
	}
	best := NoData
	for _, mv := range moves {
		if v := c.Multiplier(mv.Type, defender, gen); v > best {
			best = v
		}
	}
	return best
}

// WeaknessCount is how many of the generation's types hit p super effectively.
func (c *Calculator) WeaknessCount(p *game.Pokemon, gen int) int {
	n := 0
	for _, t := range typechart.TypesForGeneration(gen) {
		if c.Multiplier(t, p, gen) > 1 {
			n++
		}
	}
	return n
}
