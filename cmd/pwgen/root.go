package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd builds a fresh command tree. Each call wires its own flag
// storage, so repeated executions (and tests) never share state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pwgen",
		Short: "Deterministic password generator using Argon2id and HKDF",
		Long: `pwgen derives a password from a master secret, a site identifier, an
optional username, a character-composition policy, and a rotation version.
The same inputs always reproduce the same password; nothing is ever stored.

Defaults for username, length bounds, and allowed charsets may be supplied
via an optional config file ($XDG_CONFIG_HOME/pwgen/pwgen.yaml) or PWGEN_*
environment variables. Flags always win. The master secret is never read
from config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd())
	return root
}

// Execute runs the root command and returns its error for exit-code mapping.
func Execute() error {
	return newRootCmd().Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig layers the optional config file and PWGEN_* environment
// variables under the flags. A missing config file is not an error.
func initConfig() {
	viper.SetConfigName("pwgen")
	viper.SetConfigType("yaml")
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		viper.AddConfigPath(filepath.Join(dir, "pwgen"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "pwgen"))
	}
	viper.SetEnvPrefix("PWGEN")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
