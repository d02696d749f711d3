package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hoopsight/shotchart/internal/app"
	"github.com/hoopsight/shotchart/internal/constants"
	"github.com/hoopsight/shotchart/internal/log"
	"github.com/hoopsight/shotchart/pkg/config"
)

const (
	defaultPlayer  = "Zach Edey"
	defaultSeason  = "2024-25"
	defaultCfgFile = "shotchart.yaml"
)

func main() {
	cfgFile := flag.String("config", defaultCfgFile, "Path to optional YAML configuration file")
	output := flag.String("output", "", "Output image path, overriding the config file;\n\t\t\t  format follows the extension (png, svg, pdf)")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("shotchart %s\n", constants.Version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Positional arguments: [player_full_name] [season_id]
	player := defaultPlayer
	season := defaultSeason
	if flag.NArg() > 0 {
		player = flag.Arg(0)
	}
	if flag.NArg() > 1 {
		season = flag.Arg(1)
	}

	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	if *output != "" {
		cfg.Output = *output
	}

	application := app.New(cfg, log.GetSugaredLogger())
	if err := application.Run(context.Background(), player, season); err != nil {
		log.Errorf("Application error: %v", err)
		os.Exit(1)
	}
}

func loadConfig(cfgFile string) (*config.Config, error) {
	cfg, err := config.NewYAMLProvider(cfgFile).LoadConfig()
	if errors.Is(err, os.ErrNotExist) && cfgFile == defaultCfgFile {
		// Running without a config file is the normal case.
		return config.Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
	}
	return cfg, nil
}
