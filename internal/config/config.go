// Package config loads CLI configuration, template parameters, and batch job
// lists from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CarbonAltDelete/latexbuild/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrParamsParse     = errors.New("failed to parse params file")
	ErrJobsParse       = errors.New("failed to parse jobs file")
	ErrNoJobs          = errors.New("jobs file contains no jobs")
)

// Config holds CLI defaults shared by the build and batch commands.
type Config struct {
	TemplateRoot string `yaml:"templateRoot"` // Default template root directory (empty = must specify)
	LatexCmd     string `yaml:"latexCmd"`     // Primary compiler binary (empty = pdflatex)
	MaxPasses    int    `yaml:"maxPasses"`    // Convergence pass bound (0 = unbounded)
	Workers      int    `yaml:"workers"`      // Batch parallelism (0 = auto)
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// Job describes one document to build in a batch run. Format is inferred
// from the Output extension.
type Job struct {
	Template  string         `yaml:"template"`  // Path relative to the template root
	Output    string         `yaml:"output"`    // Final artifact path (.pdf, .html, or .docx)
	Params    map[string]any `yaml:"params"`    // LaTeX-escaped template parameters
	RawParams map[string]any `yaml:"rawParams"` // Parameters injected verbatim
}

// Jobs is a batch job list. Its TemplateRoot overrides the Config default.
type Jobs struct {
	TemplateRoot string `yaml:"templateRoot"`
	Jobs         []Job  `yaml:"jobs"`
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &cfg, nil
}

// LoadParams loads a template parameter mapping from a YAML file.
func LoadParams(path string) (map[string]any, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- params path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading params file: %w", err)
	}
	params := map[string]any{}
	if err := yamlutil.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParamsParse, err)
	}
	return params, nil
}

// LoadJobs loads a batch job list from a YAML file. Unknown fields are
// rejected so a typoed key fails loudly instead of building the wrong
// document.
func LoadJobs(path string) (*Jobs, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- jobs path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading jobs file: %w", err)
	}
	var jobs Jobs
	if err := yamlutil.UnmarshalStrict(data, &jobs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJobsParse, err)
	}
	if len(jobs.Jobs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoJobs, path)
	}
	return &jobs, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/latexbuild/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "latexbuild", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
