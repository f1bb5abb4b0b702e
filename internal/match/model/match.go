// Package model provides domain models and DTOs for the match module.
package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Date and time layouts used for match schedules throughout the system.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Match represents a scheduled fixture between two teams.
//
// The partial unique index on (match_date, match_time) enforces the slot
// invariant in the storage layer: the application-level conflict check and
// the insert are not atomic, so the index is what actually serializes two
// concurrent confirmations for the same slot.
type Match struct {
	ID               uint           `gorm:"primaryKey;column:id" json:"id"`
	RequestingTeamID uint           `gorm:"column:requesting_team_id;not null" json:"requesting_team_id"`
	HomeTeamID       uint           `gorm:"column:home_team_id;not null;index" json:"home_team_id"`
	AwayTeamID       uint           `gorm:"column:away_team_id;not null;index" json:"away_team_id"`
	FieldID          uint           `gorm:"column:field_id;not null" json:"field_id"`
	MatchDate        string         `gorm:"column:match_date;type:varchar(10);not null;uniqueIndex:idx_matches_slot,where:deleted_at IS NULL" json:"date"`
	MatchTime        string         `gorm:"column:match_time;type:varchar(8);not null;uniqueIndex:idx_matches_slot,where:deleted_at IS NULL" json:"time"`
	CreatedAt        time.Time      `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;not null" json:"-"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

// TableName specifies the table name for GORM.
func (Match) TableName() string {
	return "matches"
}

// KickoffAt parses the stored date and time into a single instant.
func (m *Match) KickoffAt() (time.Time, error) {
	kickoff, err := time.ParseInLocation(DateLayout+" "+TimeLayout, m.MatchDate+" "+m.MatchTime, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("match %d has malformed schedule: %w", m.ID, err)
	}
	return kickoff, nil
}

// Over reports whether the match has concluded, i.e. now is strictly
// after the scheduled kickoff.
func (m *Match) Over(now time.Time) (bool, error) {
	kickoff, err := m.KickoffAt()
	if err != nil {
		return false, err
	}
	return now.After(kickoff), nil
}

// ValidateSchedule checks that date and time are well-formed schedule strings.
func ValidateSchedule(date, timeOfDay string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ErrInvalidSchedule
	}
	if _, err := time.Parse(TimeLayout, timeOfDay); err != nil {
		return ErrInvalidSchedule
	}
	return nil
}
