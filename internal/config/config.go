// Package config loads and validates site configuration for md2site.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidPageName = errors.New("invalid output page name")
)

// Field length limits.
const (
	MaxTitleLength       = 200  // Site/page title
	MaxDescriptionLength = 500  // Site description
	MaxPathLength        = 4096 // Any configured file path
)

// Config holds all configuration for the news page build.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
}

// SiteConfig defines site-wide metadata.
type SiteConfig struct {
	Title       string `yaml:"title"`       // Fallback page title when front matter has none
	Description string `yaml:"description"` // Fallback meta description
}

// InputConfig defines input source options.
type InputConfig struct {
	Source     string `yaml:"source"`     // Markdown news file (default: news.md)
	Template   string `yaml:"template"`   // Page template file (empty = embedded default)
	Stylesheet string `yaml:"stylesheet"` // Stylesheet to copy (empty = embedded default)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir  string `yaml:"dir"`  // Destination directory (default: output)
	Page string `yaml:"page"` // Page filename (default: index.html)
}

// DefaultConfig returns the configuration matching the conventional site
// layout: news.md in the working directory, embedded template and
// stylesheet, output under output/index.html.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{Title: "News"},
		Input: InputConfig{
			Source:     "news.md",
			Template:   "",
			Stylesheet: "",
		},
		Output: OutputConfig{
			Dir:  "output",
			Page: "index.html",
		},
	}
}

// Validate checks field lengths and the output page name.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("site.title", c.Site.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.description", c.Site.Description, MaxDescriptionLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.source", c.Input.Source, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.template", c.Input.Template, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.stylesheet", c.Input.Stylesheet, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.page", c.Output.Page, MaxPathLength); err != nil {
		return err
	}

	// The page name is joined under output.dir; separators would escape it.
	if strings.ContainsAny(c.Output.Page, "/\\") {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidPageName, c.Output.Page)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Fields absent from the file keep their defaults.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
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

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2site/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2site", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
