package config

import "github.com/spf13/viper"

// MotifConfig holds settings for the motif search commands.
type MotifConfig struct {
	Engine   string `mapstructure:"engine"`
	MaxWords int    `mapstructure:"max_words"`
}

// Config holds all runtime configuration for a plexus invocation.
// Values are populated from .plexus.yaml, PLEXUS_* env vars, and CLI flags.
type Config struct {
	DataDir   string      `mapstructure:"data_dir"`
	DBPath    string      `mapstructure:"db_path"`
	OutputDir string      `mapstructure:"output_dir"`
	Telemetry string      `mapstructure:"telemetry"`
	Format    string      `mapstructure:"format"`
	MaxPairs  int         `mapstructure:"max_pairs"`
	Strict    bool        `mapstructure:"strict"`
	Verbose   bool        `mapstructure:"verbose"`
	Motif     MotifConfig `mapstructure:"motif"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("data_dir", ".")
	viper.SetDefault("db_path", ".plexus/plexus.db")
	viper.SetDefault("output_dir", "results")
	viper.SetDefault("telemetry", ".plexus/telemetry/current.jsonl")
	viper.SetDefault("format", "csv")
	viper.SetDefault("max_pairs", 0)
	viper.SetDefault("strict", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("motif.engine", "regex")
	viper.SetDefault("motif.max_words", 100000)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
