package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/pricemap/pkg/constants"
	"github.com/agentstation/pricemap/pkg/errors"
	"github.com/agentstation/pricemap/pkg/sources"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Pricing
	UndercutAmount float64
	FallbackMargin float64

	// Catalogs. An empty CatalogDir means the embedded samples.
	CatalogDir   string
	CatalogFiles map[sources.ID]string

	// OutputDir receives the files written by reconcile
	OutputDir string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// catalogKeys maps config keys to the catalog they locate.
var catalogKeys = map[string]sources.ID{
	"cost_catalog":         sources.CostCatalogID,
	"default_catalog":      sources.DefaultCatalogID,
	"competitor_a_catalog": sources.CompetitorAID,
	"competitor_b_catalog": sources.CompetitorBID,
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.pricemap.yaml or ./.pricemap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return loadConfig(viper.New(), "")
}

// loadConfigFile loads configuration with path as the config file.
func loadConfigFile(path string) (*Config, error) {
	return loadConfig(viper.New(), path)
}

// loadConfig reads configuration through v. A non-empty configFile is read
// instead of searching the standard locations.
func loadConfig(v *viper.Viper, configFile string) (*Config, error) {
	loadEnvFiles()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("undercut_amount", constants.DefaultUndercutAmount)
	v.SetDefault("fallback_margin", constants.DefaultFallbackMargin)
	v.SetDefault("output_dir", ".")
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	if configFile == "" {
		configFile = v.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "reading "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".pricemap")

		// A missing config file is not an error
		_ = v.ReadInConfig()
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		UndercutAmount: v.GetFloat64("undercut_amount"),
		FallbackMargin: v.GetFloat64("fallback_margin"),

		CatalogDir:   v.GetString("catalog_dir"),
		CatalogFiles: make(map[sources.ID]string),
		OutputDir:    v.GetString("output_dir"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}

	for key, id := range catalogKeys {
		if path := v.GetString(key); path != "" {
			config.CatalogFiles[id] = path
		}
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are never overwritten.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
