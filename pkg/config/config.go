// Package config loads and validates the .figmagen.yaml project
// configuration consumed by the CLI and the MCP server.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = ".figmagen.yaml"

// Config is the project configuration.
type Config struct {
	// Figma source.
	FileKey string   `yaml:"file_key"`
	NodeIDs []string `yaml:"node_ids"`

	// Target project.
	ProjectRoot string   `yaml:"project_root"`
	ThemeGlobs  []string `yaml:"theme_globs"`
	OutputDir   string   `yaml:"output_dir"`

	// Generation conventions.
	ComponentName    string  `yaml:"component_name"`
	StylePattern     string  `yaml:"style_pattern"` // "styles" or "componentStyles"
	UseThemeHookPath string  `yaml:"use_theme_hook_path"`
	ImportPrefix     string  `yaml:"import_prefix"`
	SuppressTodos    bool    `yaml:"suppress_todos"`
	ColorThreshold   float64 `yaml:"color_threshold"`

	// Asset detection overrides.
	ImageExtensions []string `yaml:"image_extensions"`

	// Baseline directory for regression comparison.
	BaselineDir string `yaml:"baseline_dir"`
}

// FieldError is one validation failure, addressed by its YAML path.
type FieldError struct {
	Path    string
	Message string
}

// ValidationError aggregates every failed field so callers can report all
// problems in one pass.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Path + ": " + f.Message
	}
	return "config: invalid configuration: " + strings.Join(parts, "; ")
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates config bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ProjectRoot == "" {
		c.ProjectRoot = "."
	}
	if c.OutputDir == "" {
		c.OutputDir = "src/generated"
	}
	if c.StylePattern == "" {
		c.StylePattern = "styles"
	}
}

// Validate checks the configuration and returns a *ValidationError
// listing every problem found.
func (c *Config) Validate() error {
	var fields []FieldError

	if c.FileKey == "" {
		fields = append(fields, FieldError{Path: "file_key", Message: "required"})
	}
	if len(c.NodeIDs) == 0 {
		fields = append(fields, FieldError{Path: "node_ids", Message: "at least one node ID required"})
	}
	for i, id := range c.NodeIDs {
		if id == "" {
			fields = append(fields, FieldError{
				Path:    fmt.Sprintf("node_ids[%d]", i),
				Message: "must not be empty",
			})
		}
	}
	switch c.StylePattern {
	case "styles", "componentStyles":
	default:
		fields = append(fields, FieldError{
			Path:    "style_pattern",
			Message: fmt.Sprintf("unknown pattern %q (want styles or componentStyles)", c.StylePattern),
		})
	}
	if c.ColorThreshold < 0 {
		fields = append(fields, FieldError{Path: "color_threshold", Message: "must not be negative"})
	}
	for i, ext := range c.ImageExtensions {
		if !strings.HasPrefix(ext, ".") {
			fields = append(fields, FieldError{
				Path:    fmt.Sprintf("image_extensions[%d]", i),
				Message: fmt.Sprintf("extension %q must start with a dot", ext),
			})
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
