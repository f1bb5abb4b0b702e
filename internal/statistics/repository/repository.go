// Package repository provides data access layer for the statistics module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	settlementModel "github.com/clubsports/matchday/internal/settlement/model"
	"github.com/clubsports/matchday/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// TeamRecord returns the team's settled cumulative record, zeroed when
	// the team has not settled a match yet.
	TeamRecord(ctx context.Context, teamID uint) (*settlementModel.TeamStats, error)

	// TeamTotals sums goals, assists and clean sheets across all of the
	// team's member statistics.
	TeamTotals(ctx context.Context, teamID uint) (goals, assists, cleanSheets int, err error)

	// PlayerTotals returns every member of the team with season totals,
	// including members with no recorded statistics.
	PlayerTotals(ctx context.Context, teamID uint) ([]model.PlayerTotals, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// TeamRecord returns the team's settled cumulative record.
func (r *repository) TeamRecord(ctx context.Context, teamID uint) (*settlementModel.TeamStats, error) {
	var stats settlementModel.TeamStats
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &settlementModel.TeamStats{TeamID: teamID}, nil
	}
	if err != nil {
		r.logger.Errorw("TeamRecord database error", "team_id", teamID, "error", err)
		return nil, err
	}
	return &stats, nil
}

// TeamTotals sums goals, assists and clean sheets for the team.
func (r *repository) TeamTotals(ctx context.Context, teamID uint) (int, int, int, error) {
	var totals struct {
		Goals       int `gorm:"column:goals"`
		Assists     int `gorm:"column:assists"`
		CleanSheets int `gorm:"column:clean_sheets"`
	}

	err := r.db.WithContext(ctx).
		Table("player_stats").
		Select(`
			COALESCE(SUM(goals), 0) as goals,
			COALESCE(SUM(assists), 0) as assists,
			COALESCE(SUM(CASE WHEN clean_sheet THEN 1 ELSE 0 END), 0) as clean_sheets
		`).
		Where("team_id = ?", teamID).
		Scan(&totals).Error
	if err != nil {
		r.logger.Errorw("TeamTotals database error", "team_id", teamID, "error", err)
		return 0, 0, 0, err
	}
	return totals.Goals, totals.Assists, totals.CleanSheets, nil
}

// PlayerTotals returns every member of the team with season totals.
func (r *repository) PlayerTotals(ctx context.Context, teamID uint) ([]model.PlayerTotals, error) {
	var totals []model.PlayerTotals

	err := r.db.WithContext(ctx).
		Table("members").
		Select(`
			members.id as member_id,
			members.name,
			COALESCE(COUNT(player_stats.id), 0) as appearances,
			COALESCE(SUM(player_stats.goals), 0) as goals,
			COALESCE(SUM(player_stats.assists), 0) as assists,
			COALESCE(SUM(player_stats.saves), 0) as saves,
			COALESCE(SUM(player_stats.yellow_cards), 0) as yellow_cards,
			COALESCE(SUM(player_stats.red_cards), 0) as red_cards,
			COALESCE(SUM(player_stats.goals + player_stats.assists), 0) as attack_points
		`).
		Joins("LEFT JOIN player_stats ON player_stats.member_id = members.id AND player_stats.team_id = members.team_id").
		Where("members.team_id = ?", teamID).
		Group("members.id, members.name").
		Order("attack_points DESC, members.id ASC").
		Scan(&totals).Error
	if err != nil {
		r.logger.Errorw("PlayerTotals database error", "team_id", teamID, "error", err)
		return nil, err
	}

	if totals == nil {
		totals = []model.PlayerTotals{}
	}
	return totals, nil
}
