package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements Provider for YAML configuration files
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the configuration from the YAML file, applying defaults
// for any field the file omits. A missing file is reported as the wrapped
// os.ErrNotExist so callers can decide whether the file was required.
func (y *YAMLProvider) LoadConfig() (*Config, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		API struct {
			BaseURL string `yaml:"base_url,omitempty"`
			Timeout string `yaml:"timeout,omitempty"`
		} `yaml:"api,omitempty"`
		Chart struct {
			CourtColor     string  `yaml:"court_color,omitempty"`
			CourtLineWidth float64 `yaml:"court_line_width,omitempty"`
			WidthInches    float64 `yaml:"width_inches,omitempty"`
			HeightInches   float64 `yaml:"height_inches,omitempty"`
		} `yaml:"chart,omitempty"`
		Output string `yaml:"output,omitempty"`
	}

	if err := yaml.Unmarshal(cfgFile, &yamlConfig); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %v", y.filename, err)
	}

	config := Defaults()

	if yamlConfig.API.BaseURL != "" {
		config.API.BaseURL = yamlConfig.API.BaseURL
	}
	if yamlConfig.API.Timeout != "" {
		timeout, err := time.ParseDuration(yamlConfig.API.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid api.timeout %q: %v", yamlConfig.API.Timeout, err)
		}
		config.API.Timeout = timeout
	}
	if yamlConfig.Chart.CourtColor != "" {
		col, err := parseColor(yamlConfig.Chart.CourtColor)
		if err != nil {
			return nil, err
		}
		config.Chart.CourtColor = col
	}
	if yamlConfig.Chart.CourtLineWidth != 0 {
		config.Chart.CourtWidthPoints = yamlConfig.Chart.CourtLineWidth
	}
	if yamlConfig.Chart.WidthInches != 0 {
		config.Chart.WidthInches = yamlConfig.Chart.WidthInches
	}
	if yamlConfig.Chart.HeightInches != 0 {
		config.Chart.HeightInches = yamlConfig.Chart.HeightInches
	}
	if yamlConfig.Output != "" {
		config.Output = yamlConfig.Output
	}

	return config, nil
}

var namedColors = map[string]color.RGBA{
	"black":  {0, 0, 0, 255},
	"white":  {255, 255, 255, 255},
	"red":    {255, 0, 0, 255},
	"green":  {0, 128, 0, 255},
	"blue":   {0, 0, 255, 255},
	"yellow": {255, 255, 0, 255},
	"orange": {255, 165, 0, 255},
	"purple": {128, 0, 128, 255},
	"gray":   {128, 128, 128, 255},
	"grey":   {128, 128, 128, 255},
}

// parseColor accepts a small set of named colors or a #rrggbb hex value.
func parseColor(s string) (color.Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			return color.RGBA{
				R: uint8(v >> 16),
				G: uint8(v >> 8),
				B: uint8(v),
				A: 255,
			}, nil
		}
	}
	return nil, fmt.Errorf("unknown color %q (use a named color or #rrggbb)", s)
}
