// Package config provides Viper-based configuration loading for the rules
// engine and its tools.
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// DiceConfig selects the randomness source.
type DiceConfig struct {
	// Source is "crypto" or "seeded".
	Source string `mapstructure:"source"`
	// Seed feeds the seeded source and is ignored otherwise.
	Seed int64 `mapstructure:"seed"`
}

// TravelConfig holds the fast-travel speed constants.
type TravelConfig struct {
	CautiousMultiplier int     `mapstructure:"cautious_multiplier"`
	ShipMultiplier     float64 `mapstructure:"ship_multiplier"`
}

// ContentConfig locates the YAML content directories.
type ContentConfig struct {
	CareersDir  string `mapstructure:"careers_dir"`
	EntitiesDir string `mapstructure:"entities_dir"`
	ItemsDir    string `mapstructure:"items_dir"`
}

// ScriptingConfig holds Lua sandbox settings.
type ScriptingConfig struct {
	// Dir holds *.lua rules scripts; empty disables script loading.
	Dir string `mapstructure:"dir"`
	// InstructionLimit is the opcode budget per script call; 0 uses the
	// sandbox default.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// SimulationConfig holds Monte-Carlo defaults.
type SimulationConfig struct {
	Trials  int `mapstructure:"trials"`
	Workers int `mapstructure:"workers"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Dice       DiceConfig       `mapstructure:"dice"`
	Travel     TravelConfig     `mapstructure:"travel"`
	Content    ContentConfig    `mapstructure:"content"`
	Scripting  ScriptingConfig  `mapstructure:"scripting"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateDice(c.Dice); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateTravel(c.Travel); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Scripting.InstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("scripting.instruction_limit must be >= 0, got %d", c.Scripting.InstructionLimit))
	}
	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateDice(d DiceConfig) error {
	if d.Source != "crypto" && d.Source != "seeded" {
		return fmt.Errorf("dice.source must be one of [crypto, seeded], got %q", d.Source)
	}
	return nil
}

func validateTravel(t TravelConfig) error {
	var errs []string
	if t.CautiousMultiplier < 1 {
		errs = append(errs, fmt.Sprintf("travel.cautious_multiplier must be >= 1, got %d", t.CautiousMultiplier))
	}
	if !(t.ShipMultiplier > 0) || math.IsInf(t.ShipMultiplier, 0) {
		errs = append(errs, fmt.Sprintf("travel.ship_multiplier must be > 0, got %v", t.ShipMultiplier))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateContent(c ContentConfig) error {
	var errs []string
	for _, d := range []struct{ key, dir string }{
		{"content.careers_dir", c.CareersDir},
		{"content.entities_dir", c.EntitiesDir},
		{"content.items_dir", c.ItemsDir},
	} {
		if d.dir == "" {
			errs = append(errs, d.key+" must not be empty")
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	if s.Trials < 1 {
		errs = append(errs, fmt.Sprintf("simulation.trials must be >= 1, got %d", s.Trials))
	}
	if s.Workers < 1 {
		errs = append(errs, fmt.Sprintf("simulation.workers must be >= 1, got %d", s.Workers))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path loads defaults and
// environment overrides only.
//
// Precondition: path is empty or names a readable YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with RULES_ prefix
	v.SetEnvPrefix("RULES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("dice.source", "crypto")
	v.SetDefault("dice.seed", 0)

	v.SetDefault("travel.cautious_multiplier", 2)
	v.SetDefault("travel.ship_multiplier", 0.3125)

	v.SetDefault("content.careers_dir", "content/careers")
	v.SetDefault("content.entities_dir", "content/entities")
	v.SetDefault("content.items_dir", "content/items")

	v.SetDefault("scripting.dir", "")
	v.SetDefault("scripting.instruction_limit", 0)

	v.SetDefault("simulation.trials", 1000)
	v.SetDefault("simulation.workers", 4)
}
