// Package config layers defaults, the YAML config file, TEAMBUILDER_* environment variables and
// command-line flags through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "TEAMBUILDER"
	FileName  = ".teambuilder"
)

// Config is the resolved runtime configuration.
type Config struct {
	Generation  int
	DexDir      string
	DBDriver    string
	DBPath      string
	Listen      string
	ShowdownURL string
	LogLevel    string
	MCPPath     string
}

// SetDefaults registers every key so env lookups work even without a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("generation", 9)
	v.SetDefault("dex_dir", "data")
	v.SetDefault("db.driver", "memory")
	v.SetDefault("db.path", "teambuilder.sqlite")
	v.SetDefault("listen", ":42069")
	v.SetDefault("showdown_url", "wss://sim.psim.us/showdown/websocket")
	v.SetDefault("log_level", "info")
	v.SetDefault("mcp_path", "/mcp")
}

// New returns a viper instance with defaults and env binding. When file is empty the config is
// searched as $HOME/.teambuilder.yaml; a missing default file is not an error.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(FileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// From resolves a Config out of v. Generation is validated here so transports never see an
// out-of-range value from a bad config file.
func From(v *viper.Viper) (Config, error) {
	c := Config{
		Generation:  v.GetInt("generation"),
		DexDir:      v.GetString("dex_dir"),
		DBDriver:    strings.ToLower(v.GetString("db.driver")),
		DBPath:      v.GetString("db.path"),
		Listen:      v.GetString("listen"),
		ShowdownURL: v.GetString("showdown_url"),
		LogLevel:    v.GetString("log_level"),
		MCPPath:     v.GetString("mcp_path"),
	}
	if c.Generation < 1 || c.Generation > 9 {
		return c, fmt.Errorf("generation %d out of range 1-9", c.Generation)
	}
	switch c.DBDriver {
	case "memory", "sqlite", "sqlite3":
	default:
		return c, fmt.Errorf("unknown db driver %q", c.DBDriver)
	}
	if c.DBDriver != "memory" && c.DBPath == "" {
		return c, errors.New("db.path is required for sqlite")
	}
	if c.DexDir != "" {
		c.DexDir = filepath.Clean(c.DexDir)
	}
	return c, nil
}
