// Package config loads the host binary's optional configuration file. It
// is never imported by the core packages (internal/text, internal/history,
// internal/argparse, internal/cmdparse, internal/command, internal/edit,
// internal/sink), which stay config-agnostic.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Prompts holds the four prompt strings shown by internal/shell, keyed
// the same way as edit.Prompt's fields.
type Prompts struct {
	Empty      *string `yaml:"empty,omitempty"`
	Incomplete *string `yaml:"incomplete,omitempty"`
	Invalid    *string `yaml:"invalid,omitempty"`
	Complete   *string `yaml:"complete,omitempty"`
}

// File is the on-disk shape of ~/.config/icp-shell/config.yaml.
type File struct {
	// Workdir is the default working directory for the shell catalog
	// command, overridden by --workdir.
	Workdir *string  `yaml:"workdir,omitempty"`
	Prompts *Prompts `yaml:"prompts,omitempty"`
}

// Load reads the host's config file, returning a zero-value File on any
// failure: missing home directory, missing file, or an unreadable file all
// degrade gracefully rather than erroring, mirroring the teacher's own
// loadConfig. Only a malformed (present and readable, but not valid YAML)
// file is reported as an error, since that is a mistake worth surfacing
// rather than silently ignoring.
func Load() (*File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return &File{}, nil
	}

	path := filepath.Join(home, ".config", "icp-shell", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return &File{}, nil
	}

	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
