package model

import "errors"

var (
	// ErrSlotTaken indicates a non-deleted match already occupies the slot.
	ErrSlotTaken = errors.New("slot already booked")
	// ErrMatchNotFound indicates that the requested match does not exist.
	ErrMatchNotFound = errors.New("match not found")
	// ErrInvalidSchedule indicates a malformed or missing date/time.
	ErrInvalidSchedule = errors.New("invalid match schedule")
	// ErrMatchNotOver indicates the match has not concluded yet.
	ErrMatchNotOver = errors.New("match is not over yet")
	// ErrTokenUsed indicates the action token was already redeemed.
	ErrTokenUsed = errors.New("token already redeemed")
	// ErrNotParticipant indicates the team does not play in the match.
	ErrNotParticipant = errors.New("team does not participate in this match")
)
