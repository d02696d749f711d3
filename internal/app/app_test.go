package app

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/hoopsight/shotchart/internal/types"
	"github.com/hoopsight/shotchart/pkg/config"
)

func statsFixture(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/stats/commonallplayers":
		fmt.Fprint(w, `{"resultSets": [{
			"name": "CommonAllPlayers",
			"headers": ["PERSON_ID", "DISPLAY_FIRST_LAST"],
			"rowSet": [[1641842, "Zach Edey"]]
		}]}`)
	case "/stats/playercareerstats":
		fmt.Fprint(w, `{"resultSets": [{
			"name": "SeasonTotalsRegularSeason",
			"headers": ["SEASON_ID", "TEAM_ID"],
			"rowSet": [["2024-25", 1610612763]]
		}]}`)
	case "/stats/shotchartdetail":
		fmt.Fprint(w, `{"resultSets": [{
			"name": "Shot_Chart_Detail",
			"headers": ["EVENT_TYPE", "LOC_X", "LOC_Y"],
			"rowSet": [
				["Made Shot", 2, 15],
				["Missed Shot", -120, 180],
				["Made Shot", 95, 40]
			]
		}]}`)
	default:
		http.NotFound(w, r)
	}
}

func TestRunWritesChart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(statsFixture))
	defer srv.Close()

	cfg := config.Defaults()
	cfg.API.BaseURL = srv.URL
	cfg.Output = filepath.Join(t.TempDir(), "edey.png")

	a := New(cfg, zap.NewNop().Sugar())
	if err := a.Run(context.Background(), "Zach Edey", "2024-25"); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	info, err := os.Stat(cfg.Output)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestRunUnknownPlayer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(statsFixture))
	defer srv.Close()

	cfg := config.Defaults()
	cfg.API.BaseURL = srv.URL
	cfg.Output = filepath.Join(t.TempDir(), "never.png")

	a := New(cfg, zap.NewNop().Sugar())
	if err := a.Run(context.Background(), "Nonexistent Player", "2024-25"); err == nil {
		t.Fatal("expected error for unknown player")
	}

	// Fatal errors must not leave a partial chart behind.
	if _, err := os.Stat(cfg.Output); err == nil {
		t.Error("output file written despite fatal fetch error")
	}
}

func TestLeagueFieldGoalPct(t *testing.T) {
	zones := []types.LeagueZoneAverage{
		{ZoneBasic: "Restricted Area", Attempted: 300, Made: 195, Pct: 0.65},
		{ZoneBasic: "Above the Break 3", Attempted: 100, Made: 35, Pct: 0.35},
	}

	pct, ok := leagueFieldGoalPct(zones)
	if !ok {
		t.Fatal("leagueFieldGoalPct reported no data")
	}
	// (300*0.65 + 100*0.35) / 400 = 0.575
	if math.Abs(pct-0.575) > 1e-9 {
		t.Errorf("weighted FG%% = %v, expected 0.575", pct)
	}

	if _, ok := leagueFieldGoalPct(nil); ok {
		t.Error("leagueFieldGoalPct reported data for empty input")
	}
	if _, ok := leagueFieldGoalPct([]types.LeagueZoneAverage{{Pct: 0.5}}); ok {
		t.Error("leagueFieldGoalPct reported data for zero attempts")
	}
}
