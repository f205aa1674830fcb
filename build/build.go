// Package build reads and writes team build files. A build is the user-facing description of a
// roster; Resolve turns it into game.Pokemon values, filling gaps from the dex.
package build

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"showdown-teambuilder/data"
	"showdown-teambuilder/game"
)

var ErrInvalid = errors.New("invalid build")

type Build struct {
	Name       string  `json:"name,omitempty" yaml:"name,omitempty"`
	Generation int     `json:"generation,omitempty" yaml:"generation,omitempty"`
	Team       []*Slot `json:"team" yaml:"team"`
}

type Slot struct {
	Species     string      `json:"species" yaml:"species"`
	Nickname    string      `json:"nickname,omitempty" yaml:"nickname,omitempty"`
	Types       []string    `json:"types,omitempty" yaml:"types,omitempty"`
	CustomTypes []string    `json:"custom_types,omitempty" yaml:"custom_types,omitempty"`
	Ability     string      `json:"ability,omitempty" yaml:"ability,omitempty"`
	Item        string      `json:"item,omitempty" yaml:"item,omitempty"`
	Moves       []MoveSpec  `json:"moves,omitempty" yaml:"moves,omitempty"`
	Stats       *game.Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
}

type MoveSpec struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Class string `json:"class,omitempty" yaml:"class,omitempty"`
	Power *int   `json:"power,omitempty" yaml:"power,omitempty"`
}

// Gen returns the build's generation, or def when the file does not set one.
func (b *Build) Gen(def int) int {
	if b.Generation == 0 {
		return def
	}
	return b.Generation
}

func Load(path string) (*Build, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse decodes YAML. JSON documents are accepted as YAML.
func Parse(raw []byte) (*Build, error) {
	var b Build
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if len(b.Team) > game.RosterSize {
		return nil, fmt.Errorf("%w: %d slots, at most %d allowed", ErrInvalid, len(b.Team), game.RosterSize)
	}
	return &b, nil
}

func (b *Build) YAML() ([]byte, error) {
	return yaml.Marshal(b)
}

// Resolve validates the build and produces a roster. dex may be nil when every slot carries
// its own types and every move its own type and class.
func Resolve(b *Build, dex *data.Dex) (game.Roster, error) {
	var r game.Roster
	if b == nil {
		return r, fmt.Errorf("%w: build is missing", ErrInvalid)
	}
	if len(b.Team) > game.RosterSize {
		return r, fmt.Errorf("%w: %d slots, at most %d allowed", ErrInvalid, len(b.Team), game.RosterSize)
	}
	for i, s := range b.Team {
		if s == nil {
			continue
		}
		p, err := resolveSlot(s, dex)
		if err != nil {
			return game.Roster{}, fmt.Errorf("slot %d: %w", i+1, err)
		}
		r[i] = p
	}
	return r, nil
}

func resolveSlot(s *Slot, dex *data.Dex) (*game.Pokemon, error) {
	if strings.TrimSpace(s.Species) == "" {
		return nil, fmt.Errorf("%w: species is required", ErrInvalid)
	}
	if len(s.Moves) > game.MaxMoves {
		return nil, fmt.Errorf("%w: %s has %d moves, at most %d allowed", ErrInvalid, s.Species, len(s.Moves), game.MaxMoves)
	}
	if len(s.CustomTypes) > 2 {
		return nil, fmt.Errorf("%w: %s has %d custom types, at most 2 allowed", ErrInvalid, s.Species, len(s.CustomTypes))
	}
	if err := checkTypes(s.CustomTypes); err != nil {
		return nil, err
	}
	if err := checkTypes(s.Types); err != nil {
		return nil, err
	}

	p := &game.Pokemon{Species: s.Species}
	if dex != nil {
		if known, err := dex.Pokemon(s.Species); err == nil {
			p = known
		}
	}

	if len(s.Types) > 0 {
		p.Types = nil
		for _, n := range s.Types {
			if t, ok := game.ParseType(n); ok {
				p.Types = append(p.Types, t)
			}
		}
	}
	if len(p.Types) == 0 {
		return nil, fmt.Errorf("%w: cannot resolve types for species %q", ErrInvalid, s.Species)
	}
	if len(p.Types) > 2 {
		return nil, fmt.Errorf("%w: %s has %d types, at most 2 allowed", ErrInvalid, s.Species, len(p.Types))
	}

	if len(s.CustomTypes) > 0 {
		p.Override = game.NewTypeOverride(s.CustomTypes...)
	}
	p.Nickname = s.Nickname
	if s.Ability != "" {
		p.Ability = s.Ability
	}
	p.Item = s.Item
	if s.Stats != nil {
		p.Stats = *s.Stats
	}

	p.Moves = make([]game.Move, 0, len(s.Moves))
	for _, ms := range s.Moves {
		m, err := resolveMove(ms, dex)
		if err != nil {
			return nil, err
		}
		p.Moves = append(p.Moves, m)
	}
	return p, nil
}

func checkTypes(names []string) error {
	for _, n := range names {
		if strings.EqualFold(strings.TrimSpace(n), string(game.NoneType)) {
			continue
		}
		if _, ok := game.ParseType(n); !ok {
			return fmt.Errorf("%w: unknown type %q", ErrInvalid, n)
		}
	}
	return nil
}

func resolveMove(ms MoveSpec, dex *data.Dex) (game.Move, error) {
	if strings.TrimSpace(ms.Name) == "" {
		return game.Move{}, nil
	}
	m := game.Move{Name: ms.Name, Power: ms.Power}
	if ms.Type == "" || ms.Class == "" {
		if dex == nil {
			return game.Move{}, fmt.Errorf("%w: move %q needs a type and class without a dex", ErrInvalid, ms.Name)
		}
		known, err := dex.Move(ms.Name)
		if err != nil {
			return game.Move{}, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		m.Type, m.Class = known.Type, known.Class
		if m.Power == nil {
			m.Power = known.Power
		}
	}
	if ms.Type != "" {
		t, ok := game.ParseType(ms.Type)
		if !ok {
			return game.Move{}, fmt.Errorf("%w: move %q has unknown type %q", ErrInvalid, ms.Name, ms.Type)
		}
		m.Type = t
	}
	if ms.Class != "" {
		c, ok := game.ParseDamageClass(ms.Class)
		if !ok {
			return game.Move{}, fmt.Errorf("%w: move %q has unknown class %q", ErrInvalid, ms.Name, ms.Class)
		}
		m.Class = c
	}
	return m, nil
}

// FromRoster captures a roster (for example a scouted rival team) as a build.
func FromRoster(name string, gen int, r game.Roster) *Build {
	b := &Build{Name: name, Generation: gen, Team: make([]*Slot, 0, game.RosterSize)}
	for _, p := range r {
		if p == nil {
			continue
		}
		s := &Slot{Species: p.Species, Nickname: p.Nickname, Ability: p.Ability, Item: p.Item}
		for _, t := range p.Types {
			s.Types = append(s.Types, string(t))
		}
		for _, t := range p.Override.Types() {
			s.CustomTypes = append(s.CustomTypes, string(t))
		}
		for _, m := range p.Moves {
			s.Moves = append(s.Moves, MoveSpec{Name: m.Name, Type: string(m.Type), Class: string(m.Class), Power: m.Power})
		}
		if !p.Stats.Zero() {
			st := p.Stats
			s.Stats = &st
		}
		b.Team = append(b.Team, s)
	}
	return b
}
