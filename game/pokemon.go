package game

const (
	RosterSize = 6
	MaxMoves   = 4
)

type Move struct {
	Name  string      `json:"name" yaml:"name"`
	Type  Type        `json:"type" yaml:"type"`
	Class DamageClass `json:"class" yaml:"class"`
	Power *int        `json:"power,omitempty" yaml:"power,omitempty"`
}

// Damaging reports whether the move counts toward offensive coverage.
func (m Move) Damaging() bool {
	return m.Name != "" && m.Class != Status
}

// PowerOr returns the move's power, or def when unknown.
func (m Move) PowerOr(def int) int {
	if m.Power == nil {
		return def
	}
	return *m.Power
}

// TypeOverride replaces a Pokémon's native typing for every matchup lookup.
// A nil *TypeOverride means the native typing is in effect.
type TypeOverride struct {
	types []Type
}

// NewTypeOverride keeps up to two recognised types, dropping "none" and blank slots.
func NewTypeOverride(names ...string) *TypeOverride {
	o := &TypeOverride{}
	for _, n := range names {
		t, ok := ParseType(n)
		if !ok {
			continue
		}
		if len(o.types) == 2 {
			break
		}
		o.types = append(o.types, t)
	}
	return o
}

func (o *TypeOverride) Types() []Type {
	if o == nil {
		return nil
	}
	return append([]Type(nil), o.types...)
}

func (o *TypeOverride) Empty() bool {
	return o == nil || len(o.types) == 0
}

type Stats struct {
	HP        int `json:"hp" yaml:"hp"`
	Attack    int `json:"atk" yaml:"atk"`
	Defense   int `json:"def" yaml:"def"`
	SpAttack  int `json:"spa" yaml:"spa"`
	SpDefense int `json:"spd" yaml:"spd"`
	Speed     int `json:"spe" yaml:"spe"`
}

func (s Stats) Total() int {
	return s.HP + s.Attack + s.Defense + s.SpAttack + s.SpDefense + s.Speed
}

func (s Stats) Zero() bool {
	return s == Stats{}
}

type Pokemon struct {
	Species   string
	Nickname  string
	Types     []Type
	Override  *TypeOverride
	Abilities []string
	Ability   string
	Item      string
	Moves     []Move
	Stats     Stats
}

// DisplayName prefers the nickname.
func (p *Pokemon) DisplayName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Species
}

// EffectiveTypes returns the override typing when one is set, the native typing otherwise.
// The two are never merged.
func (p *Pokemon) EffectiveTypes() []Type {
	if !p.Override.Empty() {
		return p.Override.Types()
	}
	return append([]Type(nil), p.Types...)
}

// DamagingMoves returns the selected moves that count toward offensive coverage, in slot order.
func (p *Pokemon) DamagingMoves() []Move {
	var out []Move
	for i, m := range p.Moves {
		if i == MaxMoves {
			break
		}
		if m.Damaging() {
			out = append(out, m)
		}
	}
	return out
}

// Roster is a fixed six-slot team; nil slots are empty.
type Roster [RosterSize]*Pokemon

// Slot pairs a roster member with its position.
type Slot struct {
	Index   int
	Pokemon *Pokemon
}

func (r Roster) Members() []Slot {
	var out []Slot
	for i, p := range r {
		if p != nil {
			out = append(out, Slot{Index: i, Pokemon: p})
		}
	}
	return out
}

func (r Roster) Count() int {
	n := 0
	for _, p := range r {
		if p != nil {
			n++
		}
	}
	return n
}

func (r Roster) Full() bool {
	return r.Count() == RosterSize
}
