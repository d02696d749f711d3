// Package app wires the stats client and the chart renderer into a single
// fetch-and-render run.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/hoopsight/shotchart/internal/chart"
	"github.com/hoopsight/shotchart/internal/nba"
	"github.com/hoopsight/shotchart/internal/types"
	"github.com/hoopsight/shotchart/pkg/config"
)

// App represents the main application
type App struct {
	cfg    *config.Config
	logger *zap.SugaredLogger
}

// New creates a new application instance
func New(cfg *config.Config, logger *zap.SugaredLogger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

// Run fetches the player's shots for the season and writes the rendered
// chart to the configured output path. Any failure other than individual
// malformed shot records aborts the run.
func (a *App) Run(ctx context.Context, playerName, seasonID string) error {
	client := nba.NewClient(a.cfg.API.BaseURL, a.cfg.API.Timeout, a.logger)

	shots, league, err := client.FetchShots(ctx, playerName, seasonID)
	if err != nil {
		return err
	}

	var made, missed, other int
	for _, s := range shots {
		switch s.Outcome {
		case types.OutcomeMade:
			made++
		case types.OutcomeMissed:
			missed++
		default:
			other++
		}
	}
	a.logger.Infof("fetched %d shot attempts for %s (%s): %d made, %d missed, %d other",
		len(shots), playerName, seasonID, made, missed, other)

	if pct, ok := leagueFieldGoalPct(league); ok {
		a.logger.Infof("league-average FG%% across %d zones: %.1f%%", len(league), pct*100)
	}

	p := plot.New()
	title := fmt.Sprintf("%s Shot Chart %s", playerName, seasonID)
	opts := chart.Options{
		CourtColor: a.cfg.Chart.CourtColor,
		CourtWidth: vg.Points(a.cfg.Chart.CourtWidthPoints),
	}
	if err := chart.PlotShotChart(p, shots, title, opts); err != nil {
		return err
	}

	width := vg.Length(a.cfg.Chart.WidthInches) * vg.Inch
	height := vg.Length(a.cfg.Chart.HeightInches) * vg.Inch
	if err := chart.Save(p, width, height, a.cfg.Output); err != nil {
		return err
	}

	a.logger.Infof("wrote shot chart to %s", a.cfg.Output)
	return nil
}

// leagueFieldGoalPct computes the attempt-weighted league field-goal
// percentage across the reported court zones.
func leagueFieldGoalPct(zones []types.LeagueZoneAverage) (float64, bool) {
	if len(zones) == 0 {
		return 0, false
	}
	pcts := make([]float64, len(zones))
	weights := make([]float64, len(zones))
	for i, z := range zones {
		pcts[i] = z.Pct
		weights[i] = float64(z.Attempted)
	}
	if floats.Sum(weights) == 0 {
		return 0, false
	}
	return stat.Mean(pcts, weights), true
}
