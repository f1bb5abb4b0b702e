// Package statcache is the cache-aside layer for per-team aggregate
// statistics. Values are stored as versioned JSON envelopes so a future
// change of an aggregate's shape invalidates old entries instead of
// deserializing into the wrong structure.
package statcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/clubsports/matchday/internal/cache"
)

// envelopeVersion is bumped whenever a cached aggregate changes shape.
const envelopeVersion = 1

// TTLs per cached category.
const (
	// TTLAggregates applies to team summaries, rankings and card counts.
	TTLAggregates = time.Hour
	// TTLImageURL applies to short-lived presigned links embedded in
	// player payloads.
	TTLImageURL = 3 * time.Minute
)

type envelope struct {
	V    int             `json:"v"`
	Data json.RawMessage `json:"data"`
}

// Store wraps the key-value client with envelope handling and the
// fixed key layout for team statistics.
type Store struct {
	client cache.Client
	logger *zap.SugaredLogger
}

// New creates a statistics cache store.
func New(client cache.Client, logger *zap.SugaredLogger) *Store {
	return &Store{client: client, logger: logger}
}

// StatsKey is the team win/loss/draw summary key.
func StatsKey(teamID uint) string { return fmt.Sprintf("team:stats:%d", teamID) }

// TopPlayersKey is the bundled top-player rankings key.
func TopPlayersKey(teamID uint) string { return fmt.Sprintf("team:top:%d", teamID) }

// PlayersKey is the full player season totals key.
func PlayersKey(teamID uint) string { return fmt.Sprintf("team:players:%d", teamID) }

// CardsKey is the card counts key.
func CardsKey(teamID uint) string { return fmt.Sprintf("team:cards:%d", teamID) }

// GetJSON reads a cached value into out. Version mismatches and decode
// failures are reported as cache.ErrMiss so the caller recomputes.
func (s *Store) GetJSON(ctx context.Context, key string, out interface{}) error {
	raw, err := s.client.Get(ctx, key)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil || env.V != envelopeVersion {
		return cache.ErrMiss
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return cache.ErrMiss
	}
	return nil
}

// SetJSON stores a value at key wrapped in the current envelope version.
func (s *Store) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(envelope{V: envelopeVersion, Data: data})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, string(raw), ttl)
}

// InvalidateTeam evicts every cached aggregate of a team. Eviction
// failures are logged, not propagated: a stale entry ages out via its
// TTL and must never fail a committed write.
func (s *Store) InvalidateTeam(ctx context.Context, teamID uint) {
	keys := []string{StatsKey(teamID), TopPlayersKey(teamID), PlayersKey(teamID), CardsKey(teamID)}
	if err := s.client.Del(ctx, keys...); err != nil && !errors.Is(err, cache.ErrMiss) {
		s.logger.Warnw("failed to invalidate team statistics cache", "team_id", teamID, "error", err)
	}
}
