// Package config provides Viper-based configuration loading for the party demo.
package config

import (
	"errors"
	"fmt"
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

// ContentConfig points at optional content directories. An empty directory
// means only the built-in catalog is used.
type ContentConfig struct {
	// ItemsDir holds item definition YAML files.
	ItemsDir string `mapstructure:"items_dir"`
	// MinionsDir holds minion template YAML files.
	MinionsDir string `mapstructure:"minions_dir"`
	// ScriptsDir holds Lua summon scripts.
	ScriptsDir string `mapstructure:"scripts_dir"`
}

// ScriptingConfig holds Lua sandbox settings.
type ScriptingConfig struct {
	// InstructionLimit caps the opcodes a single script call may run; 0 uses the default.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// DemoConfig holds the starting stats of the demonstration party member.
type DemoConfig struct {
	HeroName   string `mapstructure:"hero_name"`
	HeroMaxHP  int    `mapstructure:"hero_max_hp"`
	HeroDamage int    `mapstructure:"hero_damage"`
	HeroArmor  int    `mapstructure:"hero_armor"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Content   ContentConfig   `mapstructure:"content"`
	Scripting ScriptingConfig `mapstructure:"scripting"`
	Demo      DemoConfig      `mapstructure:"demo"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateScripting(c.Scripting); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateDemo(c.Demo); err != nil {
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

func validateScripting(s ScriptingConfig) error {
	if s.InstructionLimit < 0 {
		return fmt.Errorf("scripting.instruction_limit must be >= 0, got %d", s.InstructionLimit)
	}
	return nil
}

func validateDemo(d DemoConfig) error {
	var errs []string
	if d.HeroName == "" {
		errs = append(errs, "demo.hero_name must not be empty")
	}
	if d.HeroMaxHP < 1 {
		errs = append(errs, fmt.Sprintf("demo.hero_max_hp must be >= 1, got %d", d.HeroMaxHP))
	}
	if d.HeroDamage < 0 {
		errs = append(errs, fmt.Sprintf("demo.hero_damage must be >= 0, got %d", d.HeroDamage))
	}
	if d.HeroArmor < 0 {
		errs = append(errs, fmt.Sprintf("demo.hero_armor must be >= 0, got %d", d.HeroArmor))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with PARTY_ prefix
	v.SetEnvPrefix("PARTY")
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
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	v.SetDefault("content.items_dir", "")
	v.SetDefault("content.minions_dir", "")
	v.SetDefault("content.scripts_dir", "")

	v.SetDefault("scripting.instruction_limit", 0)

	v.SetDefault("demo.hero_name", "Hero")
	v.SetDefault("demo.hero_max_hp", 100)
	v.SetDefault("demo.hero_damage", 20)
	v.SetDefault("demo.hero_armor", 5)
}
