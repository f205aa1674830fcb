package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	c, err := From(v)
	require.NoError(t, err)
	assert.Equal(t, 9, c.Generation)
	assert.Equal(t, "data", c.DexDir)
	assert.Equal(t, "memory", c.DBDriver)
	assert.Equal(t, ":42069", c.Listen)
	assert.Equal(t, "wss://sim.psim.us/showdown/websocket", c.ShowdownURL)
	assert.Equal(t, "/mcp", c.MCPPath)
}

func TestFileAndEnvLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generation: 4\ndb:\n  driver: sqlite\n  path: vault.db\nlisten: :8080\n"), 0o644))
	t.Setenv("TEAMBUILDER_LISTEN", ":9090")
	t.Setenv("TEAMBUILDER_DB_PATH", "other.db")

	v, err := New(path)
	require.NoError(t, err)
	c, err := From(v)
	require.NoError(t, err)

	assert.Equal(t, 4, c.Generation)
	assert.Equal(t, "sqlite", c.DBDriver)
	assert.Equal(t, "other.db", c.DBPath)
	assert.Equal(t, ":9090", c.Listen)
	assert.Equal(t, "info", c.LogLevel)
}

func TestExplicitMissingFileFails(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]any
	}{
		{"generation too low", map[string]any{"generation": 0}},
		{"generation too high", map[string]any{"generation": 10}},
		{"unknown driver", map[string]any{"db.driver": "postgres"}},
		{"sqlite without path", map[string]any{"db.driver": "sqlite", "db.path": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			for k, val := range tt.set {
				v.Set(k, val)
			}
			_, err := From(v)
			assert.Error(t, err)
		})
	}
}
