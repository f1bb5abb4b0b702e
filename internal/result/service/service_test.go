package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/clubsports/matchday/internal/cache"
	matchModel "github.com/clubsports/matchday/internal/match/model"
	matchRepository "github.com/clubsports/matchday/internal/match/repository"
	matchService "github.com/clubsports/matchday/internal/match/service"
	"github.com/clubsports/matchday/internal/notifier"
	resultModel "github.com/clubsports/matchday/internal/result/model"
	"github.com/clubsports/matchday/internal/result/repository"
	settlementModel "github.com/clubsports/matchday/internal/settlement/model"
	"github.com/clubsports/matchday/internal/statistics/statcache"
	teamModel "github.com/clubsports/matchday/internal/team/model"
	teamRepository "github.com/clubsports/matchday/internal/team/repository"
	"github.com/clubsports/matchday/pkg/token"
)

type fixture struct {
	svc   Service
	db    *gorm.DB
	store *statcache.Store
	mem   *cache.Memory
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&teamModel.Team{}, &teamModel.Member{},
		&matchModel.Match{}, &resultModel.MatchResult{}, &resultModel.Substitution{},
		&settlementModel.PlayerStats{},
	))

	require.NoError(t, db.Create(&teamModel.Team{ID: 1, Name: "FC United", CreatorID: 100, Email: "united@club.example"}).Error)
	require.NoError(t, db.Create(&teamModel.Team{ID: 2, Name: "Rovers", CreatorID: 200, Email: "rovers@club.example"}).Error)
	require.NoError(t, db.Create(&teamModel.Member{ID: 11, TeamID: 1, UserID: 101, Name: "Sam Carter"}).Error)
	require.NoError(t, db.Create(&teamModel.Member{ID: 21, TeamID: 2, UserID: 201, Name: "Robin Novak"}).Error)

	// Match 1 concluded long ago, match 2 kicks off far in the future.
	require.NoError(t, db.Create(&matchModel.Match{
		ID: 1, RequestingTeamID: 1, HomeTeamID: 1, AwayTeamID: 2, FieldID: 173,
		MatchDate: "2024-02-25", MatchTime: "18:00:00",
	}).Error)
	require.NoError(t, db.Create(&matchModel.Match{
		ID: 2, RequestingTeamID: 1, HomeTeamID: 1, AwayTeamID: 2, FieldID: 173,
		MatchDate: "2099-01-01", MatchTime: "18:00:00",
	}).Error)

	logger := zap.NewNop().Sugar()
	mem := cache.NewMemory()
	store := statcache.New(mem, logger)

	matchSvc := matchService.New(
		matchRepository.New(db),
		teamRepository.New(db),
		db,
		token.New("test-secret", time.Hour),
		cache.NewMemory(),
		notifier.NewNoop(logger),
		"http://localhost:8080",
		logger,
	)

	svc := New(repository.New(db), teamRepository.New(db), matchSvc, db, store, logger)
	return &fixture{svc: svc, db: db, store: store, mem: mem}
}

func teamResult(teamID uint) *resultModel.RecordTeamResultRequest {
	return &resultModel.RecordTeamResultRequest{
		TeamID: teamID, Goals: 2, Assists: 1, Passes: 340, CornerKicks: 5,
		Substitutions: []resultModel.SubstitutionEntry{
			{OutMemberID: 11, InMemberID: 21, Minute: 60},
		},
	}
}

func TestService_RecordTeamResult(t *testing.T) {
	ctx := context.Background()

	t.Run("persists result with substitutions", func(t *testing.T) {
		f := setup(t)

		require.NoError(t, f.svc.RecordTeamResult(ctx, 100, 1, teamResult(1)))

		var result resultModel.MatchResult
		require.NoError(t, f.db.Where("match_id = ? AND team_id = ?", 1, 1).First(&result).Error)
		assert.Equal(t, 2, result.Goals)
		assert.Equal(t, 340, result.Passes)
		assert.False(t, result.Win)

		var subs []resultModel.Substitution
		require.NoError(t, f.db.Where("match_result_id = ?", result.ID).Find(&subs).Error)
		require.Len(t, subs, 1)
		assert.Equal(t, 60, subs[0].Minute)
	})

	t.Run("second submission for same team is rejected", func(t *testing.T) {
		f := setup(t)

		require.NoError(t, f.svc.RecordTeamResult(ctx, 100, 1, teamResult(1)))
		err := f.svc.RecordTeamResult(ctx, 100, 1, teamResult(1))
		assert.ErrorIs(t, err, resultModel.ErrResultExists)

		var count int64
		f.db.Model(&resultModel.MatchResult{}).Count(&count)
		assert.EqualValues(t, 1, count)
	})

	t.Run("both teams can report independently", func(t *testing.T) {
		f := setup(t)

		require.NoError(t, f.svc.RecordTeamResult(ctx, 100, 1, teamResult(1)))
		require.NoError(t, f.svc.RecordTeamResult(ctx, 200, 1, teamResult(2)))

		var count int64
		f.db.Model(&resultModel.MatchResult{}).Where("match_id = ?", 1).Count(&count)
		assert.EqualValues(t, 2, count)
	})

	t.Run("match not yet over", func(t *testing.T) {
		f := setup(t)

		err := f.svc.RecordTeamResult(ctx, 100, 2, teamResult(1))
		assert.ErrorIs(t, err, matchModel.ErrMatchNotOver)
	})

	t.Run("unknown match", func(t *testing.T) {
		f := setup(t)

		err := f.svc.RecordTeamResult(ctx, 100, 999, teamResult(1))
		assert.ErrorIs(t, err, matchModel.ErrMatchNotFound)
	})

	t.Run("caller did not create the reporting team", func(t *testing.T) {
		f := setup(t)

		err := f.svc.RecordTeamResult(ctx, 200, 1, teamResult(1))
		assert.ErrorIs(t, err, teamModel.ErrNotTeamCreator)
	})

	t.Run("reporting team is not a participant", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.db.Create(&teamModel.Team{ID: 3, Name: "Wanderers", CreatorID: 100, Email: "wanderers@club.example"}).Error)

		err := f.svc.RecordTeamResult(ctx, 100, 1, teamResult(3))
		assert.ErrorIs(t, err, resultModel.ErrResultNotFound)
	})

	t.Run("evicts cached team aggregates", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.store.SetJSON(ctx, statcache.StatsKey(1), map[string]int{"wins": 9}, time.Minute))

		require.NoError(t, f.svc.RecordTeamResult(ctx, 100, 1, teamResult(1)))

		var out map[string]int
		assert.ErrorIs(t, f.store.GetJSON(ctx, statcache.StatsKey(1), &out), cache.ErrMiss)
	})
}

func TestService_RecordPlayerResult(t *testing.T) {
	ctx := context.Background()

	t.Run("persists member statistics", func(t *testing.T) {
		f := setup(t)

		err := f.svc.RecordPlayerResult(ctx, 100, 1, 11, &resultModel.RecordPlayerResultRequest{
			TeamID: 1, Goals: 1, Assists: 2, Saves: 0, YellowCards: 1,
		})
		require.NoError(t, err)

		var stats settlementModel.PlayerStats
		require.NoError(t, f.db.Where("match_id = ? AND member_id = ?", 1, 11).First(&stats).Error)
		assert.Equal(t, 1, stats.Goals)
		assert.Equal(t, 2, stats.Assists)
		assert.Equal(t, 1, stats.YellowCards)
	})

	t.Run("member must belong to the reporting team", func(t *testing.T) {
		f := setup(t)

		err := f.svc.RecordPlayerResult(ctx, 100, 1, 21, &resultModel.RecordPlayerResultRequest{
			TeamID: 1, Goals: 1,
		})
		assert.ErrorIs(t, err, teamModel.ErrMemberNotFound)
	})

	t.Run("match not yet over", func(t *testing.T) {
		f := setup(t)

		err := f.svc.RecordPlayerResult(ctx, 100, 2, 11, &resultModel.RecordPlayerResultRequest{
			TeamID: 1, Goals: 1,
		})
		assert.ErrorIs(t, err, matchModel.ErrMatchNotOver)
	})

	t.Run("evicts cached team aggregates", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.store.SetJSON(ctx, statcache.PlayersKey(1), map[string]int{"goals": 4}, time.Minute))

		err := f.svc.RecordPlayerResult(ctx, 100, 1, 11, &resultModel.RecordPlayerResultRequest{
			TeamID: 1, Goals: 1,
		})
		require.NoError(t, err)

		var out map[string]int
		assert.ErrorIs(t, f.store.GetJSON(ctx, statcache.PlayersKey(1), &out), cache.ErrMiss)
	})
}
