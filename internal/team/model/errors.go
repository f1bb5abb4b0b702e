package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrNotTeamCreator indicates that the caller has not created any team.
	ErrNotTeamCreator = errors.New("user is not a team creator")
	// ErrMemberNotFound indicates that the member does not belong to the team.
	ErrMemberNotFound = errors.New("member not found in team")
)
