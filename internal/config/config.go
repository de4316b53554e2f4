// Package config provides configuration management for inputfix.
//
// Configuration is loaded from:
// 1. .inputfix.yaml in the working directory, or the file given with --config (optional)
// 2. Environment variables prefixed with INPUTFIX_ (e.g. INPUTFIX_REPORT_PATH)
// 3. Default values
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	Root    string        `mapstructure:"root"`
	Include []string      `mapstructure:"include"`
	Exclude []string      `mapstructure:"exclude"`
	Report  ReportConfig  `mapstructure:"report"`
	Console ConsoleConfig `mapstructure:"console"`
	Log     LogConfig     `mapstructure:"log"`
}

// ReportConfig contains scan report locations.
type ReportConfig struct {
	// Path is the plain-text report, relative to the working directory.
	Path string `mapstructure:"path"`
	// DataPath keeps the report data for `inputfix view`.
	DataPath string `mapstructure:"data_path"`
}

// ConsoleConfig contains console rewriter settings.
type ConsoleConfig struct {
	ProjectRoot  string   `mapstructure:"project_root"`
	LintCommand  []string `mapstructure:"lint_command"`
	Include      []string `mapstructure:"include"`
	LoggerImport string   `mapstructure:"logger_import"`
	LoggerModule string   `mapstructure:"logger_module"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// Load reads configuration. An empty path searches for .inputfix.yaml in the
// working directory; a missing file there is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".inputfix")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("INPUTFIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if c.Root == "" {
		return errors.New("config: root must not be empty")
	}

	if len(c.Include) == 0 {
		return errors.New("config: include needs at least one pattern")
	}

	for _, group := range [][]string{c.Include, c.Exclude, c.Console.Include} {
		for _, pattern := range group {
			if !doublestar.ValidatePattern(pattern) {
				return fmt.Errorf("config: invalid glob pattern %q", pattern)
			}
		}
	}

	if c.Report.Path == "" {
		return errors.New("config: report.path must not be empty")
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("root", "./src/routes")
	v.SetDefault("include", []string{"**/*.svelte"})
	v.SetDefault("exclude", []string{"**/node_modules/**", "**/.svelte-kit/**"})

	// Report
	v.SetDefault("report.path", "form_field_violations_report.txt")
	v.SetDefault("report.data_path", ".inputfix/report.yaml")

	// Console rewriter
	v.SetDefault("console.project_root", ".")
	v.SetDefault("console.lint_command", []string{"npm", "run", "lint"})
	v.SetDefault("console.include", []string{"**/*.{ts,js,svelte}"})
	v.SetDefault("console.logger_import", "import { logger } from '$lib/utils/logger';")
	v.SetDefault("console.logger_module", "$lib/utils/logger")

	// Log
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
}
