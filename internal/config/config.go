// Package config resolves runtime settings from flags, environment
// variables, and an optional shotgraph.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/hammamikhairi/shotgraph/internal/logger"
)

// EnvPrefix is prepended to every environment variable, e.g.
// SHOTGRAPH_LOG_LEVEL.
const EnvPrefix = "SHOTGRAPH"

// Keys understood by Load. Flags bound with viper.BindPFlag must use them.
const (
	KeyLogLevel    = "log_level"
	KeyVerbose     = "verbose"
	KeyQuiet       = "quiet"
	KeyLogFile     = "log_file"
	KeyAddr        = "addr"
	KeyProfilesDir = "profiles_dir"
	KeyChartWidth  = "chart_width"
	KeyChartHeight = "chart_height"
	KeyConcurrency = "concurrency"
)

// Config is the resolved runtime configuration.
type Config struct {
	LogLevel    logger.Level
	LogFile     string // "stderr" logs to the console
	Addr        string
	ProfilesDir string // empty means the embedded bundle
	ChartWidth  int
	ChartHeight int
	Concurrency int
}

// SetDefaults registers the default for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "normal")
	v.SetDefault(KeyLogFile, ".shotgraph-logs/shotgraph.log")
	v.SetDefault(KeyAddr, ":3000")
	v.SetDefault(KeyProfilesDir, "")
	v.SetDefault(KeyChartWidth, 72)
	v.SetDefault(KeyChartHeight, 16)
	v.SetDefault(KeyConcurrency, 4)
}

// Load reads configuration into a Config. Precedence is flags bound on v,
// then SHOTGRAPH_* environment variables, then shotgraph.yaml from the
// working directory or $HOME/.config/shotgraph, then defaults. A missing
// config file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetConfigName("shotgraph")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "shotgraph"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	level, err := logger.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}
	if v.GetBool(KeyVerbose) {
		level = logger.LevelVerbose
	}
	if v.GetBool(KeyQuiet) {
		level = logger.LevelOff
	}

	cfg := &Config{
		LogLevel:    level,
		LogFile:     v.GetString(KeyLogFile),
		Addr:        v.GetString(KeyAddr),
		ProfilesDir: v.GetString(KeyProfilesDir),
		ChartWidth:  v.GetInt(KeyChartWidth),
		ChartHeight: v.GetInt(KeyChartHeight),
		Concurrency: v.GetInt(KeyConcurrency),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", KeyConcurrency, c.Concurrency)
	}
	if c.ChartWidth < 1 || c.ChartHeight < 1 {
		return fmt.Errorf("chart size must be positive, got %dx%d", c.ChartWidth, c.ChartHeight)
	}
	if c.Addr == "" {
		return fmt.Errorf("%s must not be empty", KeyAddr)
	}
	return nil
}
