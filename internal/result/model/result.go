// Package model provides domain models and DTOs for the result module.
package model

import "time"

// MatchResult is one team's aggregate statistics for a single match.
// The unique index on (match_id, team_id) makes the record operation
// exactly-once per team: a second submission violates the index no matter
// how the pre-check raced.
type MatchResult struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	MatchID      uint      `gorm:"column:match_id;not null;uniqueIndex:idx_match_results_match_team" json:"match_id"`
	TeamID       uint      `gorm:"column:team_id;not null;uniqueIndex:idx_match_results_match_team" json:"team_id"`
	CornerKicks  int       `gorm:"column:corner_kicks;not null;default:0" json:"corner_kicks"`
	Passes       int       `gorm:"column:passes;not null;default:0" json:"passes"`
	FreeKicks    int       `gorm:"column:free_kicks;not null;default:0" json:"free_kicks"`
	PenaltyKicks int       `gorm:"column:penalty_kicks;not null;default:0" json:"penalty_kicks"`
	Goals        int       `gorm:"column:goals;not null;default:0" json:"goals"`
	Assists      int       `gorm:"column:assists;not null;default:0" json:"assists"`
	YellowCards  int       `gorm:"column:yellow_cards;not null;default:0" json:"yellow_cards"`
	RedCards     int       `gorm:"column:red_cards;not null;default:0" json:"red_cards"`
	Saves        int       `gorm:"column:saves;not null;default:0" json:"saves"`
	Intercepts   int       `gorm:"column:intercepts;not null;default:0" json:"intercepts"`
	Win          bool      `gorm:"column:win;not null;default:false" json:"win"`
	Lose         bool      `gorm:"column:lose;not null;default:false" json:"lose"`
	Draw         bool      `gorm:"column:draw;not null;default:false" json:"draw"`
	CreatedAt    time.Time `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (MatchResult) TableName() string {
	return "match_results"
}

// Substitution records one player swap reported with a team result.
type Substitution struct {
	ID            uint      `gorm:"primaryKey;column:id" json:"id"`
	MatchResultID uint      `gorm:"column:match_result_id;not null;index" json:"match_result_id"`
	OutMemberID   uint      `gorm:"column:out_member_id;not null" json:"out_member_id"`
	InMemberID    uint      `gorm:"column:in_member_id;not null" json:"in_member_id"`
	Minute        int       `gorm:"column:minute;not null" json:"minute"`
	CreatedAt     time.Time `gorm:"column:created_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Substitution) TableName() string {
	return "substitutions"
}
