// Package nba provides a client for the stats.nba.com JSON API: player
// directory lookup, career team history, and per-player shot chart detail.
package nba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/hoopsight/shotchart/internal/log"
	"github.com/hoopsight/shotchart/internal/types"
)

const (
	defaultBaseURL = "https://stats.nba.com"
	defaultTimeout = 5 * time.Second

	// The stats API rejects requests without browser-looking headers.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	referer   = "https://www.nba.com/"
)

// Player identifies one entry in the provider's player directory.
type Player struct {
	ID   int64
	Name string
}

// Client talks to the stats provider. No caching, no retries: every call is
// a single request whose failure propagates to the caller.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.SugaredLogger
}

// NewClient creates a stats client. Empty baseURL and zero timeout select
// the production endpoint and a 5 second timeout; a nil logger falls back to
// the package logger.
func NewClient(baseURL string, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = log.GetSugaredLogger()
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*statsResponse, error) {
	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating stats API request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", referer)
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debugf("Making GET request to stats API: %s", path)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request to stats API: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading stats API response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats API error (status %d): %s", resp.StatusCode, body)
	}

	var sr statsResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &sr, nil
}

// LookupPlayer resolves a player by exact, case-sensitive full-name match
// against the provider's all-time player directory.
func (c *Client) LookupPlayer(ctx context.Context, fullName, seasonID string) (Player, error) {
	v := url.Values{}
	v.Set("LeagueID", "00")
	v.Set("Season", seasonID)
	v.Set("IsOnlyCurrentSeason", "0")

	sr, err := c.get(ctx, "/stats/commonallplayers", v)
	if err != nil {
		return Player{}, err
	}
	rs, err := sr.resultSet("CommonAllPlayers")
	if err != nil {
		return Player{}, err
	}
	idCol, err := rs.column("PERSON_ID")
	if err != nil {
		return Player{}, err
	}
	nameCol, err := rs.column("DISPLAY_FIRST_LAST")
	if err != nil {
		return Player{}, err
	}

	for _, row := range rs.RowSet {
		name, ok := cellString(row, nameCol)
		if !ok || name != fullName {
			continue
		}
		id, ok := cellInt(row, idCol)
		if !ok {
			continue
		}
		return Player{ID: id, Name: name}, nil
	}
	return Player{}, fmt.Errorf("player %q: %w", fullName, ErrPlayerNotFound)
}

// TeamForSeason returns the team the player was on during the given season,
// taken from the first matching row of their regular-season career totals.
func (c *Client) TeamForSeason(ctx context.Context, playerID int64, seasonID string) (int64, error) {
	v := url.Values{}
	v.Set("PlayerID", strconv.FormatInt(playerID, 10))
	v.Set("PerMode", "Totals")

	sr, err := c.get(ctx, "/stats/playercareerstats", v)
	if err != nil {
		return 0, err
	}
	rs, err := sr.resultSet("SeasonTotalsRegularSeason")
	if err != nil {
		return 0, err
	}
	seasonCol, err := rs.column("SEASON_ID")
	if err != nil {
		return 0, err
	}
	teamCol, err := rs.column("TEAM_ID")
	if err != nil {
		return 0, err
	}

	for _, row := range rs.RowSet {
		season, ok := cellString(row, seasonCol)
		if !ok || season != seasonID {
			continue
		}
		team, ok := cellInt(row, teamCol)
		if !ok {
			continue
		}
		return team, nil
	}
	return 0, fmt.Errorf("player %d, season %q: %w", playerID, seasonID, ErrSeasonNotFound)
}

// ShotChartDetail fetches the player's regular-season field-goal attempts
// along with league-average shooting by court zone. Rows with null or
// wrongly typed coordinate/outcome cells are skipped; a result set missing a
// required column entirely is a malformed response.
func (c *Client) ShotChartDetail(ctx context.Context, playerID, teamID int64, seasonID string) (types.ShotCollection, []types.LeagueZoneAverage, error) {
	v := url.Values{}
	v.Set("ContextMeasure", "FGA")
	v.Set("LastNGames", "0")
	v.Set("LeagueID", "00")
	v.Set("Month", "0")
	v.Set("OpponentTeamID", "0")
	v.Set("Period", "0")
	v.Set("PlayerID", strconv.FormatInt(playerID, 10))
	v.Set("PlayerPosition", "")
	v.Set("RookieYear", "")
	v.Set("Season", seasonID)
	v.Set("SeasonSegment", "")
	v.Set("SeasonType", "Regular Season")
	v.Set("TeamID", strconv.FormatInt(teamID, 10))
	v.Set("VsConference", "")
	v.Set("VsDivision", "")
	v.Set("GameID", "")
	v.Set("GameSegment", "")
	v.Set("DateFrom", "")
	v.Set("DateTo", "")
	v.Set("Location", "")
	v.Set("Outcome", "")

	sr, err := c.get(ctx, "/stats/shotchartdetail", v)
	if err != nil {
		return nil, nil, err
	}

	shots, err := c.decodeShots(sr)
	if err != nil {
		return nil, nil, err
	}
	return shots, c.decodeLeagueAverages(sr), nil
}

func (c *Client) decodeShots(sr *statsResponse) (types.ShotCollection, error) {
	rs, err := sr.resultSet("Shot_Chart_Detail")
	if err != nil {
		return nil, err
	}
	eventCol, err := rs.column("EVENT_TYPE")
	if err != nil {
		return nil, err
	}
	xCol, err := rs.column("LOC_X")
	if err != nil {
		return nil, err
	}
	yCol, err := rs.column("LOC_Y")
	if err != nil {
		return nil, err
	}

	shots := make(types.ShotCollection, 0, len(rs.RowSet))
	skipped := 0
	for _, row := range rs.RowSet {
		event, okE := cellString(row, eventCol)
		x, okX := cellFloat(row, xCol)
		y, okY := cellFloat(row, yCol)
		if !okE || !okX || !okY {
			skipped++
			continue
		}
		shots = append(shots, types.ShotEvent{X: x, Y: y, Outcome: types.ParseOutcome(event)})
	}
	if skipped > 0 {
		c.logger.Debugf("skipped %d malformed shot records", skipped)
	}
	return shots, nil
}

// decodeLeagueAverages is lenient: the league-average result set is
// supplementary, so a missing set or missing columns yield nil rather than
// an error.
func (c *Client) decodeLeagueAverages(sr *statsResponse) []types.LeagueZoneAverage {
	rs, err := sr.resultSet("LeagueAverages")
	if err != nil {
		return nil
	}
	basicCol, err1 := rs.column("SHOT_ZONE_BASIC")
	areaCol, err2 := rs.column("SHOT_ZONE_AREA")
	rangeCol, err3 := rs.column("SHOT_ZONE_RANGE")
	fgaCol, err4 := rs.column("FGA")
	fgmCol, err5 := rs.column("FGM")
	pctCol, err6 := rs.column("FG_PCT")
	for _, err := range []error{err1, err2, err3, err4, err5, err6} {
		if err != nil {
			return nil
		}
	}

	zones := make([]types.LeagueZoneAverage, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		basic, okB := cellString(row, basicCol)
		area, okA := cellString(row, areaCol)
		zrange, okR := cellString(row, rangeCol)
		fga, okFGA := cellInt(row, fgaCol)
		fgm, okFGM := cellInt(row, fgmCol)
		pct, okP := cellFloat(row, pctCol)
		if !okB || !okA || !okR || !okFGA || !okFGM || !okP {
			continue
		}
		zones = append(zones, types.LeagueZoneAverage{
			ZoneBasic: basic,
			ZoneArea:  area,
			ZoneRange: zrange,
			Attempted: int(fga),
			Made:      int(fgm),
			Pct:       pct,
		})
	}
	return zones
}

// FetchShots resolves a player by full name, finds their team for the
// season, and fetches the season's field-goal attempts. A failed player
// lookup stops the sequence before any further request is made.
func (c *Client) FetchShots(ctx context.Context, fullName, seasonID string) (types.ShotCollection, []types.LeagueZoneAverage, error) {
	player, err := c.LookupPlayer(ctx, fullName, seasonID)
	if err != nil {
		return nil, nil, err
	}
	c.logger.Debugf("resolved player %q to ID %d", fullName, player.ID)

	teamID, err := c.TeamForSeason(ctx, player.ID, seasonID)
	if err != nil {
		return nil, nil, err
	}
	c.logger.Debugf("player %d played for team %d in %s", player.ID, teamID, seasonID)

	return c.ShotChartDetail(ctx, player.ID, teamID, seasonID)
}
