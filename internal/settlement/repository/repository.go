// Package repository provides data access layer for the settlement module.
package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	settlementModel "github.com/clubsports/matchday/internal/settlement/model"
)

// Repository defines the interface for settlement data access operations.
type Repository interface {
	// PlayerStatsExist reports whether the team already submitted member
	// results for the match.
	PlayerStatsExist(ctx context.Context, matchID, teamID uint) (bool, error)

	// CreatePlayerStats persists a batch of member statistics rows.
	CreatePlayerStats(ctx context.Context, stats []settlementModel.PlayerStats) error

	// IncrementTeamStats applies one settled match to a team's cumulative
	// record, creating the row on first settlement.
	IncrementTeamStats(ctx context.Context, teamID uint, win, lose, draw bool) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new settlement repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// PlayerStatsExist reports whether the team already submitted member results.
func (r *repository) PlayerStatsExist(ctx context.Context, matchID, teamID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&settlementModel.PlayerStats{}).
		Where("match_id = ? AND team_id = ?", matchID, teamID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreatePlayerStats persists a batch of member statistics rows.
func (r *repository) CreatePlayerStats(ctx context.Context, stats []settlementModel.PlayerStats) error {
	if len(stats) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&stats).Error
}

// IncrementTeamStats applies one settled match to a team's cumulative record.
func (r *repository) IncrementTeamStats(ctx context.Context, teamID uint, win, lose, draw bool) error {
	wins, losses, draws := 0, 0, 0
	switch {
	case win:
		wins = 1
	case lose:
		losses = 1
	case draw:
		draws = 1
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "team_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"wins":        gorm.Expr("team_stats.wins + ?", wins),
			"losses":      gorm.Expr("team_stats.losses + ?", losses),
			"draws":       gorm.Expr("team_stats.draws + ?", draws),
			"total_games": gorm.Expr("team_stats.total_games + 1"),
		}),
	}).Create(&settlementModel.TeamStats{
		TeamID:     teamID,
		Wins:       wins,
		Losses:     losses,
		Draws:      draws,
		TotalGames: 1,
	}).Error
}
