package model

import "errors"

var (
	// ErrStatsExist indicates the team already submitted member results
	// for this match.
	ErrStatsExist = errors.New("player stats already recorded for this team")
)
