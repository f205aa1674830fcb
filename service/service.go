// Package service ties the engine to its collaborators (dex, vault) for the transports:
// HTTP, MCP and the CLI all resolve teams and run analyses through it.
package service

import (
	"errors"
	"fmt"

	"showdown-teambuilder/advisor"
	"showdown-teambuilder/analysis"
	"showdown-teambuilder/build"
	"showdown-teambuilder/calc"
	"showdown-teambuilder/data"
	"showdown-teambuilder/game"
	"showdown-teambuilder/report"
	"showdown-teambuilder/store"
	"showdown-teambuilder/typechart"
)

var ErrBadRequest = errors.New("bad request")

// TeamRef names a team in one of three ways; the first one set wins.
type TeamRef struct {
	Build     *build.Build `json:"build,omitempty" jsonschema:"Inline team build"`
	ShareCode string       `json:"share_code,omitempty" jsonschema:"Share code produced by the share command"`
	TeamID    string       `json:"team_id,omitempty" jsonschema:"Id of a team saved in the vault"`
}

type Service struct {
	Calc       *calc.Calculator
	Dex        *data.Dex
	Store      store.TeamStore
	DefaultGen int
}

func New(c *calc.Calculator, dex *data.Dex, st store.TeamStore, defaultGen int) *Service {
	if c == nil {
		c = calc.New()
	}
	if defaultGen == 0 {
		defaultGen = typechart.LatestGeneration
	}
	return &Service{Calc: c, Dex: dex, Store: st, DefaultGen: defaultGen}
}

// Generation picks the explicit generation, then the build's own, then the default.
func (s *Service) Generation(explicit int, b *build.Build) (int, error) {
	gen := explicit
	if gen == 0 && b != nil {
		gen = b.Generation
	}
	if gen == 0 {
		gen = s.DefaultGen
	}
	if gen < typechart.FirstGeneration || gen > typechart.LatestGeneration {
		return 0, fmt.Errorf("%w: generation %d out of range %d-%d", ErrBadRequest, gen, typechart.FirstGeneration, typechart.LatestGeneration)
	}
	return gen, nil
}

// Build fetches the build a ref points at.
func (s *Service) Build(ref TeamRef) (*build.Build, error) {
	switch {
	case ref.Build != nil:
		return ref.Build, nil
	case ref.ShareCode != "":
		return build.DecodeShare(ref.ShareCode)
	case ref.TeamID != "":
		if s.Store == nil {
			return nil, fmt.Errorf("%w: no team vault configured", ErrBadRequest)
		}
		t, err := s.Store.Get(ref.TeamID)
		if err != nil {
			return nil, err
		}
		return t.Build, nil
	}
	return nil, fmt.Errorf("%w: a build, share_code or team_id is required", ErrBadRequest)
}

// Roster resolves ref into a roster and the generation it should be analysed under.
func (s *Service) Roster(ref TeamRef, gen int) (game.Roster, int, error) {
	b, err := s.Build(ref)
	if err != nil {
		return game.Roster{}, 0, err
	}
	gen, err = s.Generation(gen, b)
	if err != nil {
		return game.Roster{}, 0, err
	}
	r, err := build.Resolve(b, s.Dex)
	if err != nil {
		return game.Roster{}, 0, err
	}
	return r, gen, nil
}

func (s *Service) Analyze(ref TeamRef, gen int) (report.Report, error) {
	r, gen, err := s.Roster(ref, gen)
	if err != nil {
		return report.Report{}, err
	}
	return report.New(s.Calc, r, gen), nil
}

func (s *Service) Advise(ref TeamRef, gen int) (advisor.Advice, error) {
	r, gen, err := s.Roster(ref, gen)
	if err != nil {
		return advisor.Advice{}, err
	}
	return advisor.Advise(s.Calc, r, gen), nil
}

// Matchup resolves both sides under the same generation; the mine side decides it when
// gen is not given.
func (s *Service) Matchup(mine, rival TeamRef, gen int) (analysis.Matchup, int, error) {
	mr, gen, err := s.Roster(mine, gen)
	if err != nil {
		return analysis.Matchup{}, 0, fmt.Errorf("mine: %w", err)
	}
	rr, _, err := s.Roster(rival, gen)
	if err != nil {
		return analysis.Matchup{}, 0, fmt.Errorf("rival: %w", err)
	}
	return analysis.Matchups(s.Calc, mr, rr, gen), gen, nil
}

type Effectiveness struct {
	Generation int         `json:"generation"`
	Attack     game.Type   `json:"attack"`
	Defending  []game.Type `json:"defending"`
	Multiplier float64     `json:"multiplier"`
	Label      string      `json:"label"`
	Efficacy   string      `json:"efficacy"`
}

// Effectiveness answers a single attack-versus-typing question, optionally with the
// defender's ability and item.
func (s *Service) Effectiveness(attack string, defending []string, ability, item string, gen int) (Effectiveness, error) {
	gen, err := s.Generation(gen, nil)
	if err != nil {
		return Effectiveness{}, err
	}
	atk, ok := game.ParseType(attack)
	if !ok {
		return Effectiveness{}, fmt.Errorf("%w: unknown attack type %q", ErrBadRequest, attack)
	}
	if len(defending) == 0 || len(defending) > 2 {
		return Effectiveness{}, fmt.Errorf("%w: one or two defending types are required", ErrBadRequest)
	}
	p := &game.Pokemon{Ability: ability, Item: item}
	for _, d := range defending {
		t, ok := game.ParseType(d)
		if !ok {
			return Effectiveness{}, fmt.Errorf("%w: unknown defending type %q", ErrBadRequest, d)
		}
		p.Types = append(p.Types, t)
	}
	mult := s.Calc.Multiplier(atk, p, gen)
	return Effectiveness{
		Generation: gen,
		Attack:     atk,
		Defending:  p.Types,
		Multiplier: mult,
		Label:      calc.FormatMultiplier(mult),
		Efficacy:   calc.Classify(mult).String(),
	}, nil
}

type Chart struct {
	Generation typechart.Generation                `json:"generation"`
	Types      []game.Type                         `json:"types"`
	Rows       map[game.Type]map[game.Type]float64 `json:"rows"`
}

// Chart lists the generation's types and every non-neutral matrix entry.
func (s *Service) Chart(gen int) (Chart, error) {
	gen, err := s.Generation(gen, nil)
	if err != nil {
		return Chart{}, err
	}
	rs := typechart.ForGeneration(gen)
	out := Chart{Generation: typechart.Lookup(gen), Types: rs.Types, Rows: make(map[game.Type]map[game.Type]float64, len(rs.Types))}
	for _, atk := range rs.Types {
		out.Rows[atk] = rs.Matrix.Row(atk)
	}
	return out, nil
}

// SaveTeam stores a build in the vault.
func (s *Service) SaveTeam(name string, kind store.Kind, b *build.Build) (*store.SavedTeam, error) {
	if s.Store == nil {
		return nil, fmt.Errorf("%w: no team vault configured", ErrBadRequest)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: build is required", ErrBadRequest)
	}
	if _, err := build.Resolve(b, s.Dex); err != nil {
		return nil, err
	}
	return s.Store.Save(&store.SavedTeam{Name: name, Kind: kind, Build: b})
}
