package model

import "errors"

var (
	// ErrResultExists indicates the team already submitted a result for
	// this match. Duplicate submissions never overwrite the first record.
	ErrResultExists = errors.New("result already recorded for this team")
	// ErrResultNotFound indicates no result exists for the match/team pair.
	ErrResultNotFound = errors.New("match result not found")
)
