package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/contextpilot/pilot/tokens"
)

// DefaultOutputFile is where prompts are written unless overridden.
// The scanner auto-ignores it so a generated prompt never feeds back
// into the next scan.
const DefaultOutputFile = "pilot_prompt.txt"

// TOMLFileName and YAMLFileName are the project config files looked
// for at the root, in that order.
const (
	TOMLFileName = ".pilot.toml"
	YAMLFileName = ".pilot.yaml"
)

// DefaultExtensions is the default set of file suffixes selected for
// content embedding.
var DefaultExtensions = []string{".py", ".toml", ".yaml", ".json", ".md", ".sh", ".txt"}

// Config holds all engine tunables.
type Config struct {
	// Threshold is the context budget in tokens. Zero means derive it
	// from Model, or fall back to the package default (100000).
	Threshold int `toml:"threshold" yaml:"threshold"`

	// Model optionally names a model whose context window supplies
	// the threshold when Threshold is zero.
	Model string `toml:"model" yaml:"model"`

	// Extensions are the file suffixes selected for content embedding.
	Extensions []string `toml:"extensions" yaml:"extensions"`

	// Output is the prompt output file.
	Output string `toml:"output" yaml:"output"`

	// ProgramName is embedded in the discovery request template.
	ProgramName string `toml:"program_name" yaml:"program_name"`

	// Ignore holds extra ignore patterns applied after the project's
	// ignore file, at the highest priority.
	Ignore []string `toml:"ignore" yaml:"ignore"`
}

// Default returns the documented default configuration.
func Default() Config {
	return Config{
		Extensions:  append([]string(nil), DefaultExtensions...),
		Output:      DefaultOutputFile,
		ProgramName: "pilot",
	}
}

// Load resolves the configuration for a project root: defaults,
// overlaid with .pilot.toml or .pilot.yaml if present. A missing file
// is not an error; a malformed one is.
func Load(root string) (Config, error) {
	cfg := Default()

	tomlPath := filepath.Join(root, TOMLFileName)
	if _, err := os.Stat(tomlPath); err == nil {
		if _, err := toml.DecodeFile(tomlPath, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", TOMLFileName, err)
		}
		return cfg, nil
	}

	yamlPath := filepath.Join(root, YAMLFileName)
	if data, err := os.ReadFile(yamlPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", YAMLFileName, err)
		}
	}
	return cfg, nil
}

// EffectiveThreshold resolves the token budget: an explicit threshold
// wins, then the model's context window, then the package default.
func (c Config) EffectiveThreshold() int {
	if c.Threshold > 0 {
		return c.Threshold
	}
	if c.Model != "" {
		return tokens.ModelLimit(c.Model)
	}
	return tokens.DefaultThreshold
}
