// Package config loads the optional shotchart configuration file. Every
// field has a sensible default; running with no configuration at all is the
// normal case.
package config

import (
	"image/color"
	"time"
)

// Provider defines the interface for configuration data sources
type Provider interface {
	// Load complete configuration
	LoadConfig() (*Config, error)
}

// Config represents the complete configuration structure
type Config struct {
	API    APIData
	Chart  ChartData
	Output string
}

// APIData holds configuration for the stats provider connection
type APIData struct {
	BaseURL string
	Timeout time.Duration
}

// ChartData holds chart styling configuration. CourtWidthPoints is the
// stroke width of the court markings in printer's points; figure dimensions
// are in inches.
type ChartData struct {
	CourtColor       color.Color
	CourtWidthPoints float64
	WidthInches      float64
	HeightInches     float64
}

// Defaults returns the configuration used when no file is present: the
// production stats endpoint, a blue 2pt court on a 12x11in figure, PNG
// output in the working directory.
func Defaults() *Config {
	return &Config{
		API: APIData{
			BaseURL: "https://stats.nba.com",
			Timeout: 5 * time.Second,
		},
		Chart: ChartData{
			CourtColor:       color.RGBA{B: 255, A: 255},
			CourtWidthPoints: 2,
			WidthInches:      12,
			HeightInches:     11,
		},
		Output: "shotchart.png",
	}
}
