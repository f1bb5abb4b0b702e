// Package repository provides data access layer for the result module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	resultModel "github.com/clubsports/matchday/internal/result/model"
)

// Repository defines the interface for match result data access operations.
type Repository interface {
	// ExistsForTeam reports whether a result exists for (matchID, teamID).
	ExistsForTeam(ctx context.Context, matchID, teamID uint) (bool, error)

	// Create persists a team's match result. Returns ErrResultExists when
	// the (match_id, team_id) unique index rejects the insert.
	Create(ctx context.Context, result *resultModel.MatchResult) error

	// CreateSubstitutions persists the substitutions of a result.
	CreateSubstitutions(ctx context.Context, subs []resultModel.Substitution) error

	// CountByMatch returns how many teams have reported for the match.
	CountByMatch(ctx context.Context, matchID uint) (int64, error)

	// ListByMatch returns all results reported for the match.
	ListByMatch(ctx context.Context, matchID uint) ([]resultModel.MatchResult, error)

	// SetOutcome records the settled goals and win/lose/draw flags.
	SetOutcome(ctx context.Context, resultID uint, goals int, win, lose, draw bool) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new result repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// ExistsForTeam reports whether a result exists for (matchID, teamID).
func (r *repository) ExistsForTeam(ctx context.Context, matchID, teamID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&resultModel.MatchResult{}).
		Where("match_id = ? AND team_id = ?", matchID, teamID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create persists a team's match result.
func (r *repository) Create(ctx context.Context, result *resultModel.MatchResult) error {
	err := r.db.WithContext(ctx).Create(result).Error
	if err != nil {
		if isDuplicateError(err) {
			return resultModel.ErrResultExists
		}
		return err
	}
	return nil
}

// CreateSubstitutions persists the substitutions of a result.
func (r *repository) CreateSubstitutions(ctx context.Context, subs []resultModel.Substitution) error {
	if len(subs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&subs).Error
}

// CountByMatch returns how many teams have reported for the match.
func (r *repository) CountByMatch(ctx context.Context, matchID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&resultModel.MatchResult{}).
		Where("match_id = ?", matchID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListByMatch returns all results reported for the match.
func (r *repository) ListByMatch(ctx context.Context, matchID uint) ([]resultModel.MatchResult, error) {
	var results []resultModel.MatchResult
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("team_id ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// SetOutcome records the settled goals and win/lose/draw flags.
func (r *repository) SetOutcome(ctx context.Context, resultID uint, goals int, win, lose, draw bool) error {
	result := r.db.WithContext(ctx).
		Model(&resultModel.MatchResult{}).
		Where("id = ?", resultID).
		Updates(map[string]interface{}{
			"goals": goals,
			"win":   win,
			"lose":  lose,
			"draw":  draw,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return resultModel.ErrResultNotFound
	}
	return nil
}
