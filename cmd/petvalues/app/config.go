package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/petvalues/internal/sources/registry"
	"github.com/agentstation/petvalues/pkg/constants"
	"github.com/agentstation/petvalues/pkg/errors"
	"github.com/agentstation/petvalues/pkg/sources"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Import configuration
	CatalogDir  string
	Output      string
	Extensions  []string
	ImagePrefix string
	HTTPTimeout time.Duration
	UserAgent   string
	Sources     []sources.Config

	// Logging configuration
	LogLevel    string // from --log-level, wins over everything
	EnvLogLevel string // from LOG_LEVEL
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (PETVALUES_*)
// 3. .env files
// 4. Config file (path, or .petvalues.yaml in $HOME or the working directory)
// 5. Defaults
func LoadConfig(path string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, &errors.ConfigError{Component: "config file", Message: "cannot read " + path, Err: err}
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigFileName)
		// A missing config file is fine; a broken one is not.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, &errors.ConfigError{Component: "config file", Message: "cannot parse", Err: err}
			}
		}
	}

	var srcs []sources.Config
	if err := v.UnmarshalKey("sources", &srcs); err != nil {
		return nil, &errors.ConfigError{Component: "sources", Message: "cannot decode", Err: err}
	}
	if len(srcs) == 0 {
		srcs = registry.DefaultConfigs()
	}
	if err := registry.Validate(srcs); err != nil {
		return nil, &errors.ConfigError{Component: "sources", Message: err.Error(), Err: err}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),

		ConfigFile: v.ConfigFileUsed(),

		CatalogDir:  v.GetString("catalog_dir"),
		Output:      v.GetString("output"),
		Extensions:  splitList(v.GetStringSlice("extensions")),
		ImagePrefix: v.GetString("image_prefix"),
		HTTPTimeout: v.GetDuration("http_timeout"),
		UserAgent:   v.GetString("user_agent"),
		Sources:     srcs,

		EnvLogLevel: getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if config.HTTPTimeout <= 0 {
		config.HTTPTimeout = constants.DefaultHTTPTimeout
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog_dir", constants.DefaultCatalogDir)
	v.SetDefault("output", constants.DefaultOutputPath)
	v.SetDefault("extensions", []string{constants.DefaultImageExtension})
	v.SetDefault("image_prefix", "")
	v.SetDefault("http_timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("user_agent", constants.DefaultUserAgent)
}

// UpdateFromFlags updates config values from parsed global flags.
// This should be called after cobra parses flags so flag values take
// precedence over the config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel string) {
	c.Verbose = verbose || c.Verbose
	c.Quiet = quiet || c.Quiet
	c.NoColor = noColor || c.NoColor
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
