package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"showdown-teambuilder/config"
	"showdown-teambuilder/logger"
)

var (
	cfgFile  string
	settings config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "teambuilder",
	Short: "Generation-aware type matchups for Pokémon Showdown teams",
	Long: `teambuilder analyses a team of up to six Pokémon against the type chart of any
generation: who it is weak to, what it can hit, which swaps would patch its
holes and how it lines up against a rival team.

Teams are YAML or JSON build files, share codes or ids from the team vault.`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.teambuilder.yaml)")
	flags.Int("gen", 9, "generation to analyse under (overrides the build's own)")
	flags.String("dex", "data", "directory holding pokedex.json and moves.json")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.String("db-driver", "memory", "team vault driver: memory or sqlite")
	flags.String("db-path", "teambuilder.sqlite", "sqlite file for the team vault")
}

// flagKeys maps persistent flags onto config keys.
var flagKeys = map[string]string{
	"gen":       "generation",
	"dex":       "dex_dir",
	"log-level": "log_level",
	"db-driver": "db.driver",
	"db-path":   "db.path",
}

func initConfig(cmd *cobra.Command, args []string) error {
	v, err := config.New(cfgFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	c, err := config.From(v)
	if err != nil {
		return err
	}
	settings = c
	logger.Init(c.LogLevel, cmd.ErrOrStderr())
	if f := v.ConfigFileUsed(); f != "" {
		logger.Debug("using config file", "path", f)
	}
	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

// explicitGen is the generation the user asked for on the command line, or 0 to let the
// build (and then the config) decide.
func explicitGen(cmd *cobra.Command) int {
	if cmd.Flags().Changed("gen") {
		return settings.Generation
	}
	return 0
}
