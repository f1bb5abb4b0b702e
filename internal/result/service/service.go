// Package service provides business logic for result recording.
//
// A team's aggregate result is accepted at most once per match: the
// duplicate pre-check and the (match_id, team_id) unique index together
// make the transactional insert the unit of exactly-once per team.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	matchService "github.com/clubsports/matchday/internal/match/service"
	resultModel "github.com/clubsports/matchday/internal/result/model"
	"github.com/clubsports/matchday/internal/result/repository"
	settlementModel "github.com/clubsports/matchday/internal/settlement/model"
	"github.com/clubsports/matchday/internal/statistics/statcache"
	teamModel "github.com/clubsports/matchday/internal/team/model"
	teamRepository "github.com/clubsports/matchday/internal/team/repository"
)

// Service defines the interface for result recording operations.
type Service interface {
	// RecordTeamResult stores one team's aggregate statistics for a
	// concluded match. A second submission for the same (match, team)
	// fails with ErrResultExists and never overwrites the first.
	RecordTeamResult(ctx context.Context, userID, matchID uint, req *resultModel.RecordTeamResultRequest) error

	// RecordPlayerResult stores a single member's statistics for a
	// concluded match and evicts the team's cached aggregates.
	RecordPlayerResult(ctx context.Context, userID, matchID, memberID uint, req *resultModel.RecordPlayerResultRequest) error
}

type service struct {
	repo     repository.Repository
	teamRepo teamRepository.Repository
	matchSvc matchService.Service
	db       *gorm.DB
	cache    *statcache.Store
	logger   *zap.SugaredLogger
}

// New creates a new result service instance.
func New(
	repo repository.Repository,
	teamRepo teamRepository.Repository,
	matchSvc matchService.Service,
	db *gorm.DB,
	cache *statcache.Store,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:     repo,
		teamRepo: teamRepo,
		matchSvc: matchSvc,
		db:       db,
		cache:    cache,
		logger:   logger,
	}
}

// RecordTeamResult stores one team's aggregate statistics for a match.
func (s *service) RecordTeamResult(ctx context.Context, userID, matchID uint, req *resultModel.RecordTeamResultRequest) error {
	match, err := s.matchSvc.MatchOver(ctx, matchID)
	if err != nil {
		return err
	}

	if err := s.verifyReportingTeam(ctx, userID, req.TeamID, match.HomeTeamID, match.AwayTeamID); err != nil {
		return err
	}

	exists, err := s.repo.ExistsForTeam(ctx, matchID, req.TeamID)
	if err != nil {
		return err
	}
	if exists {
		return resultModel.ErrResultExists
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		result := &resultModel.MatchResult{
			MatchID:      matchID,
			TeamID:       req.TeamID,
			CornerKicks:  req.CornerKicks,
			Passes:       req.Passes,
			FreeKicks:    req.FreeKicks,
			PenaltyKicks: req.PenaltyKicks,
			Goals:        req.Goals,
			Assists:      req.Assists,
			YellowCards:  req.YellowCards,
			RedCards:     req.RedCards,
			Saves:        req.Saves,
			Intercepts:   req.Intercepts,
		}
		if err := txRepo.Create(ctx, result); err != nil {
			return err
		}

		subs := make([]resultModel.Substitution, 0, len(req.Substitutions))
		for _, entry := range req.Substitutions {
			subs = append(subs, resultModel.Substitution{
				MatchResultID: result.ID,
				OutMemberID:   entry.OutMemberID,
				InMemberID:    entry.InMemberID,
				Minute:        entry.Minute,
			})
		}
		return txRepo.CreateSubstitutions(ctx, subs)
	})
	if err != nil {
		return err
	}

	s.cache.InvalidateTeam(ctx, req.TeamID)
	s.logger.Infow("team result recorded", "match_id", matchID, "team_id", req.TeamID)
	return nil
}

// RecordPlayerResult stores a single member's statistics for a match.
func (s *service) RecordPlayerResult(ctx context.Context, userID, matchID, memberID uint, req *resultModel.RecordPlayerResultRequest) error {
	match, err := s.matchSvc.MatchOver(ctx, matchID)
	if err != nil {
		return err
	}

	if err := s.verifyReportingTeam(ctx, userID, req.TeamID, match.HomeTeamID, match.AwayTeamID); err != nil {
		return err
	}

	isMember, err := s.teamRepo.IsMember(ctx, req.TeamID, memberID)
	if err != nil {
		return err
	}
	if !isMember {
		return teamModel.ErrMemberNotFound
	}

	stats := &settlementModel.PlayerStats{
		MatchID:       matchID,
		TeamID:        req.TeamID,
		MemberID:      memberID,
		Goals:         req.Goals,
		Assists:       req.Assists,
		CleanSheet:    req.CleanSheet,
		YellowCards:   req.YellowCards,
		RedCards:      req.RedCards,
		Substitutions: req.Substitutions,
		Saves:         req.Saves,
		CreatedAt:     time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(stats).Error; err != nil {
		return err
	}

	// Evict, don't recompute: the next aggregate read repopulates lazily.
	s.cache.InvalidateTeam(ctx, req.TeamID)
	s.logger.Infow("player result recorded", "match_id", matchID, "team_id", req.TeamID, "member_id", memberID)
	return nil
}

// verifyReportingTeam checks the caller created the reporting team and
// that the team plays in the match.
func (s *service) verifyReportingTeam(ctx context.Context, userID, teamID, homeTeamID, awayTeamID uint) error {
	teams, err := s.teamRepo.TeamsByCreator(ctx, userID)
	if err != nil {
		return err
	}

	created := false
	for _, team := range teams {
		if team.ID == teamID {
			created = true
			break
		}
	}
	if !created {
		return teamModel.ErrNotTeamCreator
	}

	if teamID != homeTeamID && teamID != awayTeamID {
		return resultModel.ErrResultNotFound
	}
	return nil
}
