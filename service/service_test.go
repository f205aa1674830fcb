package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showdown-teambuilder/build"
	"showdown-teambuilder/game"
	"showdown-teambuilder/store"
)

func sun() *build.Build {
	return &build.Build{Name: "Sun", Generation: 4, Team: []*build.Slot{
		{Species: "Charizard", Types: []string{"fire", "flying"},
			Moves: []build.MoveSpec{{Name: "Flamethrower", Type: "fire", Class: "special"}}},
	}}
}

func TestGeneration(t *testing.T) {
	s := New(nil, nil, nil, 0)
	gen, err := s.Generation(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 9, gen)

	gen, err = s.Generation(0, sun())
	require.NoError(t, err)
	assert.Equal(t, 4, gen)

	gen, err = s.Generation(2, sun())
	require.NoError(t, err)
	assert.Equal(t, 2, gen)

	_, err = s.Generation(10, nil)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestResolveRefs(t *testing.T) {
	st := store.NewMemoryStore()
	s := New(nil, nil, st, 9)

	code, err := build.EncodeShare(sun())
	require.NoError(t, err)
	saved, err := s.SaveTeam("", store.KindTeam, sun())
	require.NoError(t, err)

	for name, ref := range map[string]TeamRef{
		"inline": {Build: sun()},
		"share":  {ShareCode: code},
		"vault":  {TeamID: saved.ID},
	} {
		t.Run(name, func(t *testing.T) {
			r, gen, err := s.Roster(ref, 0)
			require.NoError(t, err)
			assert.Equal(t, 4, gen)
			assert.Equal(t, "Charizard", r[0].Species)
		})
	}

	_, _, err = s.Roster(TeamRef{}, 0)
	assert.ErrorIs(t, err, ErrBadRequest)
	_, _, err = s.Roster(TeamRef{TeamID: "team_nope"}, 0)
	assert.ErrorIs(t, err, store.ErrNotFound)

	noVault := New(nil, nil, nil, 9)
	_, _, err = noVault.Roster(TeamRef{TeamID: saved.ID}, 0)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestAnalyzeAndAdvise(t *testing.T) {
	s := New(nil, nil, nil, 9)
	rep, err := s.Analyze(TeamRef{Build: sun()}, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, rep.Generation.ID)
	assert.Len(t, rep.Defensive, 17, "gen 4 has no fairy")

	adv, err := s.Advise(TeamRef{Build: sun()}, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, adv.Generation)
	require.NotEmpty(t, adv.Threats)
	assert.Equal(t, game.Water, adv.Threats[0].Threat)

	_, err = s.Analyze(TeamRef{Build: &build.Build{Team: []*build.Slot{{Species: "Nobody"}}}}, 0)
	assert.ErrorIs(t, err, build.ErrInvalid)
}

func TestMatchup(t *testing.T) {
	s := New(nil, nil, nil, 9)
	rival := &build.Build{Team: []*build.Slot{{Species: "Venusaur", Types: []string{"grass", "poison"}}}}
	m, gen, err := s.Matchup(TeamRef{Build: sun()}, TeamRef{Build: rival}, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, gen)
	assert.Equal(t, []string{"Venusaur"}, m.Rival)
	assert.Equal(t, 2.0, m.Rows[0][0].Multiplier)

	_, _, err = s.Matchup(TeamRef{Build: sun()}, TeamRef{}, 0)
	assert.ErrorContains(t, err, "rival")
}

func TestEffectiveness(t *testing.T) {
	s := New(nil, nil, nil, 9)
	e, err := s.Effectiveness("Ground", []string{"fire", "steel"}, "", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, e.Multiplier)
	assert.Equal(t, "extremely effective", e.Efficacy)

	e, err = s.Effectiveness("ground", []string{"fire", "steel"}, "", "Air Balloon", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e.Multiplier)

	e, err = s.Effectiveness("ghost", []string{"psychic"}, "", "", 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e.Multiplier)

	e, err = s.Effectiveness("psychic", []string{"ghost"}, "", "", 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.Multiplier)

	_, err = s.Effectiveness("sound", []string{"fire"}, "", "", 0)
	assert.ErrorIs(t, err, ErrBadRequest)
	_, err = s.Effectiveness("fire", nil, "", "", 0)
	assert.ErrorIs(t, err, ErrBadRequest)
	_, err = s.Effectiveness("fire", []string{"a", "b", "c"}, "", "", 0)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestChart(t *testing.T) {
	s := New(nil, nil, nil, 9)
	c, err := s.Chart(1)
	require.NoError(t, err)
	assert.Len(t, c.Types, 15)
	assert.Equal(t, 0.0, c.Rows[game.Ghost][game.Psychic])
	_, ok := c.Rows[game.Psychic][game.Ghost]
	assert.False(t, ok, "neutral entries are omitted")
}

func TestSaveTeamRequiresBuild(t *testing.T) {
	s := New(nil, nil, store.NewMemoryStore(), 9)
	_, err := s.SaveTeam("x", store.KindTeam, nil)
	assert.ErrorIs(t, err, ErrBadRequest)

	teams, err := s.Store.List("")
	require.NoError(t, err)
	assert.Empty(t, teams)
}
