package nba

import "fmt"

// statsResponse is the envelope every stats.nba.com endpoint returns: named
// result sets of header strings plus dynamically typed row cells.
type statsResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

// resultSet finds a result set by name.
func (s *statsResponse) resultSet(name string) (*resultSet, error) {
	for i := range s.ResultSets {
		if s.ResultSets[i].Name == name {
			return &s.ResultSets[i], nil
		}
	}
	return nil, fmt.Errorf("%w: no %q result set", ErrMalformedResponse, name)
}

// column locates a column index by header name.
func (r *resultSet) column(name string) (int, error) {
	for i, h := range r.Headers {
		if h == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: result set %q has no %q column", ErrMalformedResponse, r.Name, name)
}

// Cell accessors. JSON numbers decode as float64; null and out-of-range
// cells report !ok so the caller can skip the record.

func cellString(row []interface{}, idx int) (string, bool) {
	if idx < 0 || idx >= len(row) {
		return "", false
	}
	s, ok := row[idx].(string)
	return s, ok
}

func cellFloat(row []interface{}, idx int) (float64, bool) {
	if idx < 0 || idx >= len(row) {
		return 0, false
	}
	f, ok := row[idx].(float64)
	return f, ok
}

func cellInt(row []interface{}, idx int) (int64, bool) {
	f, ok := cellFloat(row, idx)
	return int64(f), ok
}
