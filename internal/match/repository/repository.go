// Package repository provides data access layer for the match module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	matchModel "github.com/clubsports/matchday/internal/match/model"
	resultModel "github.com/clubsports/matchday/internal/result/model"
)

// Repository defines the interface for match data access operations.
type Repository interface {
	// ExistsAtSlot reports whether a non-deleted match occupies (date, time).
	ExistsAtSlot(ctx context.Context, date, timeOfDay string) (bool, error)

	// Create persists a new match. Returns ErrSlotTaken when the slot
	// uniqueness index rejects the insert.
	Create(ctx context.Context, match *matchModel.Match) error

	// GetByID finds a non-deleted match by id.
	GetByID(ctx context.Context, matchID uint) (*matchModel.Match, error)

	// UpdateSchedule moves a match to a new date/time.
	UpdateSchedule(ctx context.Context, matchID uint, date, timeOfDay string) error

	// SoftDelete soft-deletes a match.
	SoftDelete(ctx context.Context, matchID uint) error

	// DeleteResults removes all result rows recorded for a match.
	DeleteResults(ctx context.Context, matchID uint) error

	// ListByTeam returns all non-deleted matches a team plays in,
	// earliest kickoff first.
	ListByTeam(ctx context.Context, teamID uint) ([]matchModel.Match, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new match repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// isDuplicateError checks if error is a unique constraint violation.
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

// ExistsAtSlot reports whether a non-deleted match occupies (date, time).
func (r *repository) ExistsAtSlot(ctx context.Context, date, timeOfDay string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&matchModel.Match{}).
		Where("match_date = ? AND match_time = ?", date, timeOfDay).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create persists a new match.
func (r *repository) Create(ctx context.Context, match *matchModel.Match) error {
	err := r.db.WithContext(ctx).Create(match).Error
	if err != nil {
		if isDuplicateError(err) {
			return matchModel.ErrSlotTaken
		}
		return err
	}
	return nil
}

// GetByID finds a non-deleted match by id.
func (r *repository) GetByID(ctx context.Context, matchID uint) (*matchModel.Match, error) {
	var match matchModel.Match
	err := r.db.WithContext(ctx).First(&match, matchID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, matchModel.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

// UpdateSchedule moves a match to a new date/time.
func (r *repository) UpdateSchedule(ctx context.Context, matchID uint, date, timeOfDay string) error {
	result := r.db.WithContext(ctx).
		Model(&matchModel.Match{}).
		Where("id = ?", matchID).
		Updates(map[string]interface{}{
			"match_date": date,
			"match_time": timeOfDay,
		})
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return matchModel.ErrSlotTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return matchModel.ErrMatchNotFound
	}
	return nil
}

// SoftDelete soft-deletes a match.
func (r *repository) SoftDelete(ctx context.Context, matchID uint) error {
	result := r.db.WithContext(ctx).Delete(&matchModel.Match{}, matchID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return matchModel.ErrMatchNotFound
	}
	return nil
}

// DeleteResults removes all result rows recorded for a match, along with
// their substitutions.
func (r *repository) DeleteResults(ctx context.Context, matchID uint) error {
	err := r.db.WithContext(ctx).
		Where("match_result_id IN (?)",
			r.db.Model(&resultModel.MatchResult{}).Select("id").Where("match_id = ?", matchID),
		).
		Delete(&resultModel.Substitution{}).Error
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Delete(&resultModel.MatchResult{}).Error
}

// ListByTeam returns all non-deleted matches a team plays in.
func (r *repository) ListByTeam(ctx context.Context, teamID uint) ([]matchModel.Match, error) {
	var matches []matchModel.Match
	err := r.db.WithContext(ctx).
		Where("home_team_id = ? OR away_team_id = ?", teamID, teamID).
		Order("match_date ASC, match_time ASC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []matchModel.Match{}
	}
	return matches, nil
}
