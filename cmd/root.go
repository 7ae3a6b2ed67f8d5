// Package cmd provides the plexus CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/plexus/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "plexus",
	Short: "Protein interaction network analyzer",
	Long: "Plexus builds connectivity groups from observed protein interactions and\n" +
		"predicts which unobserved cross-compartment pairs are worth testing next.",
	RunE: runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .plexus.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".plexus")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("PLEXUS")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault opens the results browser when a run database already
// exists in the configured location. Otherwise it shows help.
func runRootDefault(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return cmd.Help()
	}
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		return cmd.Help()
	}
	// Delegate to the browse subcommand.
	return runBrowse(browseCmd, nil)
}

// isStderrTTY reports whether stderr is attached to a terminal.
func isStderrTTY() bool {
	fi, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
