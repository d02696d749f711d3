package nba

import "errors"

// Sentinel errors surfaced by the stats client. Callers match them with
// errors.Is; all of them are fatal to a run.
var (
	// ErrPlayerNotFound means the full name matched no entry in the
	// provider's player directory.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrSeasonNotFound means the player's career table has no team record
	// for the requested season.
	ErrSeasonNotFound = errors.New("no team record for season")

	// ErrMalformedResponse means the provider answered but the payload is
	// missing an expected result set or column.
	ErrMalformedResponse = errors.New("malformed stats response")
)
