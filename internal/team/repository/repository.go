// Package repository provides data access for teams and their members.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	teamModel "github.com/clubsports/matchday/internal/team/model"
)

// Repository defines the authorization-oriented team queries used by the
// scheduling and settlement services.
type Repository interface {
	// GetByID finds a team by id.
	GetByID(ctx context.Context, teamID uint) (*teamModel.Team, error)

	// TeamsByCreator returns all teams created by the given user.
	// Returns ErrNotTeamCreator if the user created none.
	TeamsByCreator(ctx context.Context, userID uint) ([]teamModel.Team, error)

	// IsMember reports whether the member belongs to the team.
	IsMember(ctx context.Context, teamID, memberID uint) (bool, error)

	// GetMember finds a member of a team.
	GetMember(ctx context.Context, teamID, memberID uint) (*teamModel.Member, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, teamID uint) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).First(&team, teamID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// TeamsByCreator returns all teams created by the given user.
func (r *repository) TeamsByCreator(ctx context.Context, userID uint) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", userID).
		Order("id ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, teamModel.ErrNotTeamCreator
	}
	return teams, nil
}

// IsMember reports whether the member belongs to the team.
func (r *repository) IsMember(ctx context.Context, teamID, memberID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&teamModel.Member{}).
		Where("id = ? AND team_id = ?", memberID, teamID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetMember finds a member of a team.
func (r *repository) GetMember(ctx context.Context, teamID, memberID uint) (*teamModel.Member, error) {
	var member teamModel.Member
	err := r.db.WithContext(ctx).
		Where("id = ? AND team_id = ?", memberID, teamID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}
