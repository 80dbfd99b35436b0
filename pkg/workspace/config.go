package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is the config filename looked up in the workspace root.
const DefaultConfigFile = "pomforge.toml"

// Config is the per-workspace generation configuration, loaded from a TOML
// file next to the target files.
type Config struct {
	Project ProjectConfig `toml:"project"`
	POM     POMConfig     `toml:"pom"`
}

// ProjectConfig identifies the project and its default generation inputs.
type ProjectConfig struct {
	Name     string   `toml:"name"`
	Template string   `toml:"template"` // pom template path, relative to the config file
	Output   string   `toml:"output"`   // generated pom path, relative to the config file
	Targets  []string `toml:"targets"`  // default top-level targets
}

// POMConfig controls dependency ordering and template substitution.
type POMConfig struct {
	// PreferredGroupPrefixes biases sort order: coordinates whose group id
	// starts with an earlier prefix sort first.
	PreferredGroupPrefixes []string `toml:"preferred_group_prefixes"`
	// Substitutions maps {key} markers in the template to values.
	Substitutions map[string]string `toml:"substitutions"`
}

// LoadConfig reads and validates a workspace config file. Relative template
// and output paths are resolved against the config file's directory.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Project.Template == "" {
		return nil, fmt.Errorf("config %s: project.template is required", path)
	}
	if cfg.Project.Output == "" {
		cfg.Project.Output = "pom.xml"
	}

	base := filepath.Dir(path)
	cfg.Project.Template = resolve(base, cfg.Project.Template)
	cfg.Project.Output = resolve(base, cfg.Project.Output)
	return &cfg, nil
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
