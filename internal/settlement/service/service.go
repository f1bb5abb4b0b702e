// Package service provides business logic for match settlement.
//
// Settlement runs inside a single transaction and fires only once per
// match: the outcome flags on the stored results double as the settled
// marker, so a second submission can insert its member rows without
// incrementing the cumulative records again.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	matchModel "github.com/clubsports/matchday/internal/match/model"
	matchService "github.com/clubsports/matchday/internal/match/service"
	resultModel "github.com/clubsports/matchday/internal/result/model"
	resultRepository "github.com/clubsports/matchday/internal/result/repository"
	settlementModel "github.com/clubsports/matchday/internal/settlement/model"
	"github.com/clubsports/matchday/internal/settlement/repository"
	"github.com/clubsports/matchday/internal/statistics/statcache"
	teamModel "github.com/clubsports/matchday/internal/team/model"
	teamRepository "github.com/clubsports/matchday/internal/team/repository"
)

// Service defines the interface for settlement operations.
type Service interface {
	// SettleMatchResults stores one team's member statistics and, once
	// both teams' aggregate results exist, decides the outcome and
	// applies it to both cumulative records exactly once.
	SettleMatchResults(ctx context.Context, userID, matchID uint, req *settlementModel.SettleMatchRequest) error
}

type service struct {
	repo       repository.Repository
	resultRepo resultRepository.Repository
	teamRepo   teamRepository.Repository
	matchSvc   matchService.Service
	db         *gorm.DB
	cache      *statcache.Store
	logger     *zap.SugaredLogger
}

// New creates a new settlement service instance.
func New(
	repo repository.Repository,
	resultRepo resultRepository.Repository,
	teamRepo teamRepository.Repository,
	matchSvc matchService.Service,
	db *gorm.DB,
	cache *statcache.Store,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:       repo,
		resultRepo: resultRepo,
		teamRepo:   teamRepo,
		matchSvc:   matchSvc,
		db:         db,
		cache:      cache,
		logger:     logger,
	}
}

// SettleMatchResults stores member statistics and settles the match when
// both teams have reported.
func (s *service) SettleMatchResults(ctx context.Context, userID, matchID uint, req *settlementModel.SettleMatchRequest) error {
	match, err := s.matchSvc.MatchOver(ctx, matchID)
	if err != nil {
		return err
	}

	if err := s.verifySubmittingTeam(ctx, userID, req.TeamID, match); err != nil {
		return err
	}

	for _, entry := range req.Results {
		isMember, err := s.teamRepo.IsMember(ctx, req.TeamID, entry.MemberID)
		if err != nil {
			return err
		}
		if !isMember {
			return teamModel.ErrMemberNotFound
		}
	}

	exists, err := s.repo.PlayerStatsExist(ctx, matchID, req.TeamID)
	if err != nil {
		return err
	}
	if exists {
		return settlementModel.ErrStatsExist
	}

	settled := false
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)
		txResultRepo := resultRepository.New(tx)

		rows := make([]settlementModel.PlayerStats, 0, len(req.Results))
		for _, entry := range req.Results {
			rows = append(rows, settlementModel.PlayerStats{
				MatchID:       matchID,
				TeamID:        req.TeamID,
				MemberID:      entry.MemberID,
				Goals:         entry.Goals,
				Assists:       entry.Assists,
				CleanSheet:    entry.CleanSheet,
				YellowCards:   entry.YellowCards,
				RedCards:      entry.RedCards,
				Substitutions: entry.Substitutions,
				Saves:         entry.Saves,
			})
		}
		if err := txRepo.CreatePlayerStats(ctx, rows); err != nil {
			return err
		}

		results, err := txResultRepo.ListByMatch(ctx, matchID)
		if err != nil {
			return err
		}
		if len(results) < 2 || alreadySettled(results) {
			return nil
		}

		if err := s.settle(ctx, txRepo, txResultRepo, results); err != nil {
			return err
		}
		settled = true
		return nil
	})
	if err != nil {
		return err
	}

	// Eviction happens after commit only: a rolled-back settlement must
	// leave cached aggregates untouched.
	s.cache.InvalidateTeam(ctx, req.TeamID)
	if settled {
		s.cache.InvalidateTeam(ctx, match.HomeTeamID)
		s.cache.InvalidateTeam(ctx, match.AwayTeamID)
		s.logger.Infow("match settled", "match_id", matchID)
	}
	return nil
}

// settle compares the two reported goal counts, stamps the outcome on both
// results and applies one game to both cumulative records. The outcome is
// decided from the teams' aggregate submissions so it does not depend on
// the order in which member statistics arrive.
func (s *service) settle(
	ctx context.Context,
	repo repository.Repository,
	resultRepo resultRepository.Repository,
	results []resultModel.MatchResult,
) error {
	sides := results[:2]
	for i, current := range sides {
		other := sides[1-i]
		win := current.Goals > other.Goals
		lose := current.Goals < other.Goals
		draw := current.Goals == other.Goals

		if err := resultRepo.SetOutcome(ctx, current.ID, current.Goals, win, lose, draw); err != nil {
			return err
		}
		if err := repo.IncrementTeamStats(ctx, current.TeamID, win, lose, draw); err != nil {
			return err
		}
	}
	return nil
}

// alreadySettled reports whether an outcome has been stamped on any result.
// A settled result always carries exactly one of the three flags, draws
// included.
func alreadySettled(results []resultModel.MatchResult) bool {
	for _, result := range results {
		if result.Win || result.Lose || result.Draw {
			return true
		}
	}
	return false
}

// verifySubmittingTeam checks the caller created the submitting team and
// that the team plays in the match.
func (s *service) verifySubmittingTeam(ctx context.Context, userID, teamID uint, match *matchModel.Match) error {
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

	if teamID != match.HomeTeamID && teamID != match.AwayTeamID {
		return matchModel.ErrNotParticipant
	}
	return nil
}
