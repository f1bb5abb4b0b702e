package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	settlementModel "github.com/clubsports/matchday/internal/settlement/model"
	teamModel "github.com/clubsports/matchday/internal/team/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&teamModel.Team{}, &teamModel.Member{},
		&settlementModel.PlayerStats{}, &settlementModel.TeamStats{},
	))

	require.NoError(t, db.Create(&teamModel.Team{ID: 1, Name: "FC United", CreatorID: 100, Email: "united@club.example"}).Error)
	require.NoError(t, db.Create(&teamModel.Member{ID: 11, TeamID: 1, UserID: 101, Name: "Sam Carter"}).Error)
	require.NoError(t, db.Create(&teamModel.Member{ID: 12, TeamID: 1, UserID: 102, Name: "Jo Keller"}).Error)
	return db
}

func TestRepository_TeamRecord(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := New(db, zap.NewNop().Sugar())

	t.Run("zeroed record before first settlement", func(t *testing.T) {
		record, err := repo.TeamRecord(ctx, 1)
		require.NoError(t, err)
		assert.Zero(t, record.TotalGames)
		assert.EqualValues(t, 1, record.TeamID)
	})

	t.Run("settled record", func(t *testing.T) {
		require.NoError(t, db.Create(&settlementModel.TeamStats{TeamID: 1, Wins: 2, Draws: 1, TotalGames: 3}).Error)

		record, err := repo.TeamRecord(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, record.Wins)
		assert.Equal(t, 1, record.Draws)
		assert.Equal(t, 3, record.TotalGames)
	})
}

func TestRepository_TeamTotals(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := New(db, zap.NewNop().Sugar())

	t.Run("zero totals without statistics", func(t *testing.T) {
		goals, assists, cleanSheets, err := repo.TeamTotals(ctx, 1)
		require.NoError(t, err)
		assert.Zero(t, goals)
		assert.Zero(t, assists)
		assert.Zero(t, cleanSheets)
	})

	t.Run("sums across matches and members", func(t *testing.T) {
		require.NoError(t, db.Create(&settlementModel.PlayerStats{MatchID: 1, TeamID: 1, MemberID: 11, Goals: 2, Assists: 1, CleanSheet: true}).Error)
		require.NoError(t, db.Create(&settlementModel.PlayerStats{MatchID: 2, TeamID: 1, MemberID: 11, Goals: 1}).Error)
		require.NoError(t, db.Create(&settlementModel.PlayerStats{MatchID: 1, TeamID: 1, MemberID: 12, Assists: 2}).Error)
		// Another team's rows never leak into the totals.
		require.NoError(t, db.Create(&settlementModel.PlayerStats{MatchID: 1, TeamID: 2, MemberID: 21, Goals: 9}).Error)

		goals, assists, cleanSheets, err := repo.TeamTotals(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, goals)
		assert.Equal(t, 3, assists)
		assert.Equal(t, 1, cleanSheets)
	})
}

func TestRepository_PlayerTotals(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := New(db, zap.NewNop().Sugar())

	require.NoError(t, db.Create(&settlementModel.PlayerStats{MatchID: 1, TeamID: 1, MemberID: 11, Goals: 2, Assists: 1, Saves: 3, YellowCards: 1}).Error)
	require.NoError(t, db.Create(&settlementModel.PlayerStats{MatchID: 2, TeamID: 1, MemberID: 11, Goals: 1, RedCards: 1}).Error)

	totals, err := repo.PlayerTotals(ctx, 1)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	// Ordered by attack points, so the scoring member comes first.
	assert.EqualValues(t, 11, totals[0].MemberID)
	assert.Equal(t, "Sam Carter", totals[0].Name)
	assert.Equal(t, 2, totals[0].Appearances)
	assert.Equal(t, 3, totals[0].Goals)
	assert.Equal(t, 1, totals[0].Assists)
	assert.Equal(t, 3, totals[0].Saves)
	assert.Equal(t, 1, totals[0].YellowCards)
	assert.Equal(t, 1, totals[0].RedCards)
	assert.Equal(t, 4, totals[0].AttackPoints)

	// A member with no recorded statistics still appears with zeroes.
	assert.EqualValues(t, 12, totals[1].MemberID)
	assert.Zero(t, totals[1].Appearances)
	assert.Zero(t, totals[1].Goals)
}
