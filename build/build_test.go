package build

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showdown-teambuilder/data"
	"showdown-teambuilder/game"
)

const sunYAML = `
name: Sun
generation: 8
team:
  - species: Charizard
    nickname: Zard
    ability: solar-power
    item: heavy-duty-boots
    moves:
      - name: Flamethrower
      - name: Air Slash
        type: flying
        class: special
        power: 75
      - name: Roost
        type: flying
        class: status
  - null
  - species: Rotom-Wash
    types: [electric, water]
    custom_types: [water, none]
    ability: levitate
`

func testDex() *data.Dex {
	return data.NewDex(
		[]data.SpeciesData{{
			Name:      "Charizard",
			Types:     []string{"Fire", "Flying"},
			BaseStats: game.Stats{HP: 78, Attack: 84, Defense: 78, SpAttack: 109, SpDefense: 85, Speed: 100},
			Abilities: map[string]string{"0": "Blaze", "H": "Solar Power"},
		}},
		[]data.MoveData{{Name: "Flamethrower", Type: "Fire", Power: 90, Category: "Special"}},
	)
}

func TestParseAndResolve(t *testing.T) {
	b, err := Parse([]byte(sunYAML))
	require.NoError(t, err)
	assert.Equal(t, "Sun", b.Name)
	assert.Equal(t, 8, b.Gen(9))
	require.Len(t, b.Team, 3)
	assert.Nil(t, b.Team[1])

	r, err := Resolve(b, testDex())
	require.NoError(t, err)
	assert.Equal(t, 2, r.Count())
	assert.Nil(t, r[1])

	zard := r[0]
	assert.Equal(t, "Zard", zard.DisplayName())
	assert.Equal(t, []game.Type{game.Fire, game.Flying}, zard.Types)
	assert.Equal(t, "solar-power", zard.Ability)
	assert.Equal(t, 100, zard.Stats.Speed)
	require.Len(t, zard.Moves, 3)
	assert.Equal(t, game.Fire, zard.Moves[0].Type)
	assert.Equal(t, 90, zard.Moves[0].PowerOr(0))
	assert.Equal(t, 75, zard.Moves[1].PowerOr(0))
	assert.Len(t, zard.DamagingMoves(), 2)

	rotom := r[2]
	assert.Equal(t, []game.Type{game.Electric, game.Water}, rotom.Types)
	assert.Equal(t, []game.Type{game.Water}, rotom.EffectiveTypes())
}

func TestResolveWithoutDex(t *testing.T) {
	b := &Build{Team: []*Slot{{
		Species: "Gengar",
		Types:   []string{"ghost", "poison"},
		Moves:   []MoveSpec{{Name: "Shadow Ball", Type: "ghost", Class: "special"}, {}},
	}}}
	r, err := Resolve(b, nil)
	require.NoError(t, err)
	assert.Equal(t, game.Ghost, r[0].Moves[0].Type)
	assert.Equal(t, game.Move{}, r[0].Moves[1])
	assert.Equal(t, 9, b.Gen(9))
}

func TestResolveValidation(t *testing.T) {
	five := []MoveSpec{{Name: "a", Type: "fire", Class: "special"}, {Name: "b", Type: "fire", Class: "special"},
		{Name: "c", Type: "fire", Class: "special"}, {Name: "d", Type: "fire", Class: "special"}, {Name: "e", Type: "fire", Class: "special"}}
	tests := []struct {
		name string
		slot *Slot
	}{
		{"missing species", &Slot{Types: []string{"fire"}}},
		{"unknown species without types", &Slot{Species: "Fakemon"}},
		{"unknown type", &Slot{Species: "X", Types: []string{"sound"}}},
		{"too many types", &Slot{Species: "X", Types: []string{"fire", "water", "grass"}}},
		{"too many custom types", &Slot{Species: "X", Types: []string{"fire"}, CustomTypes: []string{"water", "grass", "ice"}}},
		{"unknown custom type", &Slot{Species: "X", Types: []string{"fire"}, CustomTypes: []string{"shadow"}}},
		{"too many moves", &Slot{Species: "X", Types: []string{"fire"}, Moves: five}},
		{"unresolvable move", &Slot{Species: "X", Types: []string{"fire"}, Moves: []MoveSpec{{Name: "Hyperspace Fury"}}}},
		{"bad move class", &Slot{Species: "X", Types: []string{"fire"}, Moves: []MoveSpec{{Name: "a", Type: "fire", Class: "magic"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(&Build{Team: []*Slot{tt.slot}}, testDex())
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Parse([]byte("team: [{species: a}, {species: b}, {species: c}, {species: d}, {species: e}, {species: f}, {species: g}]"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "team.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Ghosts","team":[{"species":"Gengar","types":["ghost","poison"]}]}`), 0o644))
	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ghosts", b.Name)
	assert.Equal(t, "Gengar", b.Team[0].Species)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestShareCodeRoundTrip(t *testing.T) {
	b, err := Parse([]byte(sunYAML))
	require.NoError(t, err)

	code, err := EncodeShare(b)
	require.NoError(t, err)
	assert.NotContains(t, code, "+")
	assert.NotContains(t, code, "/")
	assert.NotContains(t, code, "=")

	got, err := DecodeShare(code)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	_, err = DecodeShare("not a share code!")
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = DecodeShare("aGVsbG8")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestFromRoster(t *testing.T) {
	power := 80
	r := game.Roster{nil, {
		Species:  "Rotom-Wash",
		Types:    []game.Type{game.Electric, game.Water},
		Override: game.NewTypeOverride("water"),
		Moves:    []game.Move{{Name: "Hydro Pump", Type: game.Water, Class: game.Special, Power: &power}},
	}}
	b := FromRoster("rival", 9, r)
	require.Len(t, b.Team, 1)
	assert.Equal(t, []string{"water"}, b.Team[0].CustomTypes)

	back, err := Resolve(b, nil)
	require.NoError(t, err)
	assert.Equal(t, r[1].EffectiveTypes(), back[0].EffectiveTypes())
	assert.Equal(t, r[1].Moves, back[0].Moves)
}

func TestResolveNilBuild(t *testing.T) {
	_, err := Resolve(nil, nil)
	assert.ErrorIs(t, err, ErrInvalid)
}
