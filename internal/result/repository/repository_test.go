package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	resultModel "github.com/clubsports/matchday/internal/result/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&resultModel.MatchResult{}, &resultModel.Substitution{}))
	return db
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := New(db)

	t.Run("first result per team", func(t *testing.T) {
		err := repo.Create(ctx, &resultModel.MatchResult{MatchID: 10, TeamID: 1, Goals: 2})
		require.NoError(t, err)
	})

	t.Run("duplicate pair violates the unique index", func(t *testing.T) {
		err := repo.Create(ctx, &resultModel.MatchResult{MatchID: 10, TeamID: 1, Goals: 5})
		assert.ErrorIs(t, err, resultModel.ErrResultExists)

		// The original row is untouched.
		var result resultModel.MatchResult
		require.NoError(t, db.Where("match_id = ? AND team_id = ?", 10, 1).First(&result).Error)
		assert.Equal(t, 2, result.Goals)
	})

	t.Run("same team in a different match", func(t *testing.T) {
		err := repo.Create(ctx, &resultModel.MatchResult{MatchID: 11, TeamID: 1})
		require.NoError(t, err)
	})
}

func TestRepository_ExistsForTeam(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := New(db)

	exists, err := repo.ExistsForTeam(ctx, 10, 1)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, &resultModel.MatchResult{MatchID: 10, TeamID: 1}))

	exists, err = repo.ExistsForTeam(ctx, 10, 1)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_CountAndList(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := New(db)

	require.NoError(t, repo.Create(ctx, &resultModel.MatchResult{MatchID: 10, TeamID: 2, Goals: 1}))
	require.NoError(t, repo.Create(ctx, &resultModel.MatchResult{MatchID: 10, TeamID: 1, Goals: 3}))
	require.NoError(t, repo.Create(ctx, &resultModel.MatchResult{MatchID: 11, TeamID: 1}))

	count, err := repo.CountByMatch(ctx, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	results, err := repo.ListByMatch(ctx, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.EqualValues(t, 1, results[0].TeamID)
	assert.EqualValues(t, 2, results[1].TeamID)
}

func TestRepository_SetOutcome(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := New(db)

	result := &resultModel.MatchResult{MatchID: 10, TeamID: 1, Goals: 3}
	require.NoError(t, repo.Create(ctx, result))

	require.NoError(t, repo.SetOutcome(ctx, result.ID, 3, true, false, false))

	var stored resultModel.MatchResult
	require.NoError(t, db.First(&stored, result.ID).Error)
	assert.True(t, stored.Win)
	assert.False(t, stored.Lose)
	assert.Equal(t, 3, stored.Goals)

	t.Run("unknown result", func(t *testing.T) {
		err := repo.SetOutcome(ctx, 999, 0, false, false, true)
		assert.ErrorIs(t, err, resultModel.ErrResultNotFound)
	})
}

func TestRepository_CreateSubstitutions(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := New(db)

	result := &resultModel.MatchResult{MatchID: 10, TeamID: 1}
	require.NoError(t, repo.Create(ctx, result))

	t.Run("empty batch is a no-op", func(t *testing.T) {
		require.NoError(t, repo.CreateSubstitutions(ctx, nil))
	})

	t.Run("batch insert", func(t *testing.T) {
		subs := []resultModel.Substitution{
			{MatchResultID: result.ID, OutMemberID: 11, InMemberID: 12, Minute: 60},
			{MatchResultID: result.ID, OutMemberID: 13, InMemberID: 14, Minute: 75},
		}
		require.NoError(t, repo.CreateSubstitutions(ctx, subs))

		var count int64
		db.Model(&resultModel.Substitution{}).Where("match_result_id = ?", result.ID).Count(&count)
		assert.EqualValues(t, 2, count)
	})
}
