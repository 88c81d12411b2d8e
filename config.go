package litweave

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// MaxConfigSize limits config input to prevent memory exhaustion.
const MaxConfigSize = 1 << 20

// Config holds optional project configuration loaded from YAML.
type Config struct {
	Output    OutputConfig     `yaml:"output"`
	Languages []LanguageConfig `yaml:"languages"`
}

// OutputConfig defines where and how pages are written.
type OutputConfig struct {
	Dir       string `yaml:"dir"`       // output directory (empty = docs)
	InlineCSS bool   `yaml:"inlineCSS"` // embed the stylesheet into each page
}

// LanguageConfig registers an additional language on top of the
// built-in table.
type LanguageConfig struct {
	Name       string   `yaml:"name"`       // display name, matching a highlighter lexer
	Comment    string   `yaml:"comment"`    // line-comment marker
	Extensions []string `yaml:"extensions"` // file extensions, with or without dot
}

// LoadConfig reads and parses a YAML config file. Unknown fields are
// rejected so typos surface instead of being silently ignored.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrConfigParse, path, MaxConfigSize)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &cfg, nil
}

// Options converts the config into service options, building a registry
// that extends the built-in table with the configured languages.
func (c *Config) Options() ([]Option, error) {
	registry := NewRegistry()
	for _, lang := range c.Languages {
		if err := registry.Register(lang.Name, lang.Comment, lang.Extensions...); err != nil {
			return nil, fmt.Errorf("%w: language %q: %v", ErrConfigParse, lang.Name, err)
		}
	}

	opts := []Option{WithRegistry(registry)}
	if c.Output.Dir != "" {
		opts = append(opts, WithOutputDir(c.Output.Dir))
	}
	if c.Output.InlineCSS {
		opts = append(opts, WithInlineCSS(true))
	}
	return opts, nil
}
