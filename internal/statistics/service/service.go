// Package service provides cache-aside reads of team statistics.
//
// Every read tries the cache first; on a miss the aggregate is recomputed
// from the settled tables, stored with its category TTL and returned. A
// failing cache never fails a read, it only costs the recomputation.
package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/clubsports/matchday/internal/cache"
	"github.com/clubsports/matchday/internal/statistics/model"
	"github.com/clubsports/matchday/internal/statistics/repository"
	"github.com/clubsports/matchday/internal/statistics/statcache"
	teamRepository "github.com/clubsports/matchday/internal/team/repository"
)

const rankingSize = 3

// Service defines the interface for statistics read operations.
type Service interface {
	// TeamSummary returns the team's settled record and season totals.
	TeamSummary(ctx context.Context, teamID uint) (*model.TeamSummaryResponse, error)

	// TopPlayers returns the team's bundled per-metric top-3 rankings.
	TopPlayers(ctx context.Context, teamID uint) (*model.TopPlayersResponse, error)

	// Players returns every member of the team with season totals.
	Players(ctx context.Context, teamID uint) (*model.PlayersResponse, error)

	// Cards returns the team's accumulated bookings.
	Cards(ctx context.Context, teamID uint) (*model.CardsResponse, error)
}

type service struct {
	repo     repository.Repository
	teamRepo teamRepository.Repository
	cache    *statcache.Store
	logger   *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(
	repo repository.Repository,
	teamRepo teamRepository.Repository,
	cache *statcache.Store,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:     repo,
		teamRepo: teamRepo,
		cache:    cache,
		logger:   logger,
	}
}

// TeamSummary returns the team's settled record and season totals.
func (s *service) TeamSummary(ctx context.Context, teamID uint) (*model.TeamSummaryResponse, error) {
	var cached model.TeamSummaryResponse
	if err := s.cache.GetJSON(ctx, statcache.StatsKey(teamID), &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warnw("team summary cache read failed", "team_id", teamID, "error", err)
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.TeamRecord(ctx, teamID)
	if err != nil {
		return nil, err
	}
	goals, assists, cleanSheets, err := s.repo.TeamTotals(ctx, teamID)
	if err != nil {
		return nil, err
	}

	summary := &model.TeamSummaryResponse{
		TeamID:      teamID,
		TeamName:    team.Name,
		Wins:        record.Wins,
		Losses:      record.Losses,
		Draws:       record.Draws,
		TotalGames:  record.TotalGames,
		Goals:       goals,
		Assists:     assists,
		CleanSheets: cleanSheets,
	}
	s.storeCached(ctx, statcache.StatsKey(teamID), summary)
	return summary, nil
}

// TopPlayers returns the team's bundled per-metric top-3 rankings.
func (s *service) TopPlayers(ctx context.Context, teamID uint) (*model.TopPlayersResponse, error) {
	var cached model.TopPlayersResponse
	if err := s.cache.GetJSON(ctx, statcache.TopPlayersKey(teamID), &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warnw("top players cache read failed", "team_id", teamID, "error", err)
	}

	totals, err := s.playerTotals(ctx, teamID)
	if err != nil {
		return nil, err
	}

	top := &model.TopPlayersResponse{
		TeamID:       teamID,
		Goals:        ranking(totals, func(p model.PlayerTotals) int { return p.Goals }),
		Assists:      ranking(totals, func(p model.PlayerTotals) int { return p.Assists }),
		Appearances:  ranking(totals, func(p model.PlayerTotals) int { return p.Appearances }),
		Saves:        ranking(totals, func(p model.PlayerTotals) int { return p.Saves }),
		AttackPoints: ranking(totals, func(p model.PlayerTotals) int { return p.AttackPoints }),
	}
	s.storeCached(ctx, statcache.TopPlayersKey(teamID), top)
	return top, nil
}

// Players returns every member of the team with season totals.
func (s *service) Players(ctx context.Context, teamID uint) (*model.PlayersResponse, error) {
	var cached model.PlayersResponse
	if err := s.cache.GetJSON(ctx, statcache.PlayersKey(teamID), &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warnw("players cache read failed", "team_id", teamID, "error", err)
	}

	totals, err := s.playerTotals(ctx, teamID)
	if err != nil {
		return nil, err
	}

	resp := &model.PlayersResponse{
		TeamID:  teamID,
		Players: totals,
		Total:   len(totals),
	}
	s.storeCached(ctx, statcache.PlayersKey(teamID), resp)
	return resp, nil
}

// Cards returns the team's accumulated bookings.
func (s *service) Cards(ctx context.Context, teamID uint) (*model.CardsResponse, error) {
	var cached model.CardsResponse
	if err := s.cache.GetJSON(ctx, statcache.CardsKey(teamID), &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warnw("cards cache read failed", "team_id", teamID, "error", err)
	}

	totals, err := s.playerTotals(ctx, teamID)
	if err != nil {
		return nil, err
	}

	resp := &model.CardsResponse{TeamID: teamID, Players: make([]model.PlayerCards, 0, len(totals))}
	for _, player := range totals {
		resp.YellowCards += player.YellowCards
		resp.RedCards += player.RedCards
		resp.Players = append(resp.Players, model.PlayerCards{
			MemberID:    player.MemberID,
			Name:        player.Name,
			YellowCards: player.YellowCards,
			RedCards:    player.RedCards,
		})
	}
	s.storeCached(ctx, statcache.CardsKey(teamID), resp)
	return resp, nil
}

func (s *service) playerTotals(ctx context.Context, teamID uint) ([]model.PlayerTotals, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.repo.PlayerTotals(ctx, teamID)
}

func (s *service) storeCached(ctx context.Context, key string, value interface{}) {
	if err := s.cache.SetJSON(ctx, key, value, statcache.TTLAggregates); err != nil {
		s.logger.Warnw("failed to cache statistics", "key", key, "error", err)
	}
}

// ranking extracts the top entries for one metric. Ties are broken by the
// incoming order, which is stable across recomputations.
func ranking(totals []model.PlayerTotals, metric func(model.PlayerTotals) int) []model.RankingEntry {
	sorted := make([]model.PlayerTotals, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return metric(sorted[i]) > metric(sorted[j])
	})

	limit := rankingSize
	if len(sorted) < limit {
		limit = len(sorted)
	}

	entries := make([]model.RankingEntry, 0, limit)
	for _, player := range sorted[:limit] {
		entries = append(entries, model.RankingEntry{
			MemberID: player.MemberID,
			Name:     player.Name,
			Value:    metric(player),
		})
	}
	return entries
}
