package rules

import (
	"fmt"
	"os"

	"github.com/davauxjs/project-knowledge-analyzer/internal/config"
	"gopkg.in/yaml.v3"
)

// File represents a YAML rules file with additional filter rules
type File struct {
	Exclude         []string `yaml:"exclude"`          // extra directory names to exclude
	ExcludeSuffixes []string `yaml:"exclude_suffixes"` // extra path suffixes to exclude
	Extensions      []string `yaml:"extensions"`       // extra accepted extensions
	SpecialFiles    []string `yaml:"special_files"`    // extra well-known filenames
}

// Load reads a rules file from disk
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	return &f, nil
}

// Apply merges the rules into the configuration, appending to the built-in sets
func (f *File) Apply(cfg *config.Config) {
	cfg.Exclude = append(cfg.Exclude, f.Exclude...)
	cfg.ExcludeSuffixes = append(cfg.ExcludeSuffixes, f.ExcludeSuffixes...)
	cfg.Extensions = append(cfg.Extensions, f.Extensions...)
	cfg.SpecialFiles = append(cfg.SpecialFiles, f.SpecialFiles...)
}
