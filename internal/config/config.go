// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kpauljoseph/pdfstat/internal/paper"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

type FormatSize struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Config struct {
	ToleranceMM  float64      `yaml:"tolerance_mm"`
	RenderDPI    float64      `yaml:"render_dpi"`
	OutputFormat string       `yaml:"output_format"`
	Formats      []FormatSize `yaml:"formats"`
}

func Default() *Config {
	cfg := &Config{
		ToleranceMM:  paper.DefaultToleranceMM,
		RenderDPI:    72,
		OutputFormat: OutputText,
	}
	for _, std := range paper.Standards() {
		cfg.Formats = append(cfg.Formats, FormatSize{
			Name:   string(std.Format),
			Width:  std.Width,
			Height: std.Height,
		})
	}
	return cfg
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.ToleranceMM < 0 {
		return nil, fmt.Errorf("tolerance_mm must not be negative, got %v", cfg.ToleranceMM)
	}
	if cfg.RenderDPI <= 0 {
		cfg.RenderDPI = 72
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = OutputText
	}
	if cfg.OutputFormat != OutputText && cfg.OutputFormat != OutputJSON {
		return nil, fmt.Errorf("unknown output_format %q", cfg.OutputFormat)
	}

	return cfg, nil
}

// Classifier builds the size matcher. Only the standard format names may be
// resized; their match order is always A0 to A4.
func (c *Config) Classifier() (*paper.Classifier, error) {
	sizes := make(map[paper.Format]FormatSize, len(c.Formats))
	for _, f := range c.Formats {
		sizes[paper.Format(f.Name)] = f
	}

	table := make([]paper.Standard, 0, len(paper.MatchOrder()))
	for _, std := range paper.Standards() {
		if f, ok := sizes[std.Format]; ok {
			if f.Width <= 0 || f.Height <= 0 {
				return nil, fmt.Errorf("format %s needs a positive size", f.Name)
			}
			std.Width, std.Height = f.Width, f.Height
			delete(sizes, std.Format)
		}
		table = append(table, std)
	}

	if len(sizes) > 0 {
		names := make([]string, 0, len(sizes))
		for name := range sizes {
			names = append(names, string(name))
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown paper formats in config: %s", strings.Join(names, ", "))
	}

	return paper.NewClassifier(table, c.ToleranceMM), nil
}
