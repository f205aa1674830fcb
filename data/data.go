// Package data loads the Showdown dex files (pokedex.json, moves.json) used to fill in species
// typings and move details that a build leaves out.
package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"showdown-teambuilder/game"
)

var ErrNotFound = errors.New("not found")

const (
	PokedexFile = "pokedex.json"
	MovesFile   = "moves.json"
)

type SpeciesData struct {
	Name      string            `json:"name"`
	Types     []string          `json:"types"`
	BaseStats game.Stats        `json:"baseStats"`
	Abilities map[string]string `json:"abilities"`
}

type MoveData struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Power    int    `json:"basePower"`
	Category string `json:"category"`
}

// Dex is an immutable lookup over species and moves, keyed by Showdown id.
type Dex struct {
	species map[string]SpeciesData
	moves   map[string]MoveData
}

// ID normalises a display name the way Showdown keys its data: lowercase alphanumerics only.
func ID(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func NewDex(species []SpeciesData, moves []MoveData) *Dex {
	d := &Dex{
		species: make(map[string]SpeciesData, len(species)),
		moves:   make(map[string]MoveData, len(moves)),
	}
	for _, s := range species {
		d.species[ID(s.Name)] = s
	}
	for _, m := range moves {
		d.moves[ID(m.Name)] = m
	}
	return d
}

// Load reads pokedex.json and moves.json from dir.
func Load(dir string) (*Dex, error) {
	var rawSpecies map[string]SpeciesData
	if err := readJSON(filepath.Join(dir, PokedexFile), &rawSpecies); err != nil {
		return nil, err
	}
	var rawMoves map[string]MoveData
	if err := readJSON(filepath.Join(dir, MovesFile), &rawMoves); err != nil {
		return nil, err
	}

	species := make([]SpeciesData, 0, len(rawSpecies))
	for _, s := range rawSpecies {
		if s.Name != "" {
			species = append(species, s)
		}
	}
	moves := make([]MoveData, 0, len(rawMoves))
	for _, m := range rawMoves {
		if m.Name != "" {
			moves = append(moves, m)
		}
	}
	return NewDex(species, moves), nil
}

func readJSON(path string, v any) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func (d *Dex) Len() (species, moves int) {
	return len(d.species), len(d.moves)
}

func (d *Dex) Species(name string) (SpeciesData, error) {
	s, ok := d.species[ID(name)]
	if !ok {
		return SpeciesData{}, fmt.Errorf("species %q: %w", name, ErrNotFound)
	}
	return s, nil
}

func (d *Dex) MoveData(name string) (MoveData, error) {
	m, ok := d.moves[ID(name)]
	if !ok {
		return MoveData{}, fmt.Errorf("move %q: %w", name, ErrNotFound)
	}
	return m, nil
}

// Move converts a dex entry into a game.Move. Power is left nil for moves without base power.
func (d *Dex) Move(name string) (game.Move, error) {
	m, err := d.MoveData(name)
	if err != nil {
		return game.Move{}, err
	}
	mv := game.Move{Name: m.Name}
	if t, ok := game.ParseType(m.Type); ok {
		mv.Type = t
	}
	if c, ok := game.ParseDamageClass(m.Category); ok {
		mv.Class = c
	}
	if m.Power > 0 {
		p := m.Power
		mv.Power = &p
	}
	return mv, nil
}

// Pokemon builds a fresh Pokémon with native typing, abilities (slot order) and base stats.
func (d *Dex) Pokemon(name string) (*game.Pokemon, error) {
	s, err := d.Species(name)
	if err != nil {
		return nil, err
	}
	p := &game.Pokemon{Species: s.Name, Stats: s.BaseStats}
	for _, tn := range s.Types {
		if t, ok := game.ParseType(tn); ok {
			p.Types = append(p.Types, t)
		}
	}

	slots := make([]string, 0, len(s.Abilities))
	for k := range s.Abilities {
		slots = append(slots, k)
	}
	// "0", "1", then "H" and "S" sort naturally.
	sort.Strings(slots)
	for _, k := range slots {
		p.Abilities = append(p.Abilities, s.Abilities[k])
	}
	if len(p.Abilities) > 0 {
		p.Ability = p.Abilities[0]
	}
	return p, nil
}
