package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides. A double underscore descends
// into a nested key: QUICKREF_TERMINAL__STYLE -> terminal.style.
const EnvPrefix = "QUICKREF_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (QUICKREF_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// checkPort is the port rule shared by Validate and the wizard.
func checkPort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if err := checkPort(c.Port); err != nil {
		return err
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Terminal.Style != "" && !slices.Contains(TerminalStyles, c.Terminal.Style) {
		return fmt.Errorf("invalid terminal.style %q: must be one of %s", c.Terminal.Style, strings.Join(TerminalStyles, ", "))
	}

	if c.Terminal.WordWrap < 0 {
		return fmt.Errorf("terminal.word_wrap must be non-negative")
	}

	if c.ContentFile != "" {
		if _, err := os.Stat(c.ContentFile); err != nil {
			return fmt.Errorf("content_file %s: %w", c.ContentFile, err)
		}
	}

	return nil
}
