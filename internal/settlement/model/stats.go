// Package model provides domain models and DTOs for the settlement module.
package model

import "time"

// PlayerStats is one member's individual statistics for a single match.
type PlayerStats struct {
	ID            uint      `gorm:"primaryKey;column:id" json:"id"`
	MatchID       uint      `gorm:"column:match_id;not null;index:idx_player_stats_match_team" json:"match_id"`
	TeamID        uint      `gorm:"column:team_id;not null;index:idx_player_stats_match_team" json:"team_id"`
	MemberID      uint      `gorm:"column:member_id;not null;index" json:"member_id"`
	Goals         int       `gorm:"column:goals;not null;default:0" json:"goals"`
	Assists       int       `gorm:"column:assists;not null;default:0" json:"assists"`
	CleanSheet    bool      `gorm:"column:clean_sheet;not null;default:false" json:"clean_sheet"`
	YellowCards   int       `gorm:"column:yellow_cards;not null;default:0" json:"yellow_cards"`
	RedCards      int       `gorm:"column:red_cards;not null;default:0" json:"red_cards"`
	Substitutions int       `gorm:"column:substitutions;not null;default:0" json:"substitutions"`
	Saves         int       `gorm:"column:saves;not null;default:0" json:"saves"`
	CreatedAt     time.Time `gorm:"column:created_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (PlayerStats) TableName() string {
	return "player_stats"
}

// TeamStats is a team's cumulative record across all settled matches.
// Settlement increments it exactly once per match per team.
type TeamStats struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	TeamID     uint      `gorm:"column:team_id;not null;uniqueIndex" json:"team_id"`
	Wins       int       `gorm:"column:wins;not null;default:0" json:"wins"`
	Losses     int       `gorm:"column:losses;not null;default:0" json:"losses"`
	Draws      int       `gorm:"column:draws;not null;default:0" json:"draws"`
	TotalGames int       `gorm:"column:total_games;not null;default:0" json:"total_games"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (TeamStats) TableName() string {
	return "team_stats"
}
