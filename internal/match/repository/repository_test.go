package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	matchModel "github.com/clubsports/matchday/internal/match/model"
	resultModel "github.com/clubsports/matchday/internal/result/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&matchModel.Match{}, &resultModel.MatchResult{}, &resultModel.Substitution{})
	require.NoError(t, err)

	return db
}

func newMatch(date, timeOfDay string) *matchModel.Match {
	return &matchModel.Match{
		RequestingTeamID: 1,
		HomeTeamID:       1,
		AwayTeamID:       2,
		FieldID:          173,
		MatchDate:        date,
		MatchTime:        timeOfDay,
	}
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		match := newMatch("2024-02-25", "18:00:00")
		err := repo.Create(ctx, match)

		require.NoError(t, err)
		assert.NotZero(t, match.ID)
	})

	t.Run("same slot rejected by unique index", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		require.NoError(t, repo.Create(ctx, newMatch("2024-02-25", "18:00:00")))
		err := repo.Create(ctx, newMatch("2024-02-25", "18:00:00"))

		assert.ErrorIs(t, err, matchModel.ErrSlotTaken)
	})

	t.Run("slot freed by soft delete can be rebooked", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		first := newMatch("2024-02-25", "18:00:00")
		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.SoftDelete(ctx, first.ID))

		err := repo.Create(ctx, newMatch("2024-02-25", "18:00:00"))
		assert.NoError(t, err)
	})
}

func TestRepository_ExistsAtSlot(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db)

	require.NoError(t, repo.Create(ctx, newMatch("2024-02-25", "18:00:00")))

	t.Run("occupied slot", func(t *testing.T) {
		taken, err := repo.ExistsAtSlot(ctx, "2024-02-25", "18:00:00")
		require.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("free slot", func(t *testing.T) {
		taken, err := repo.ExistsAtSlot(ctx, "2024-02-25", "20:00:00")
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("soft-deleted match does not occupy the slot", func(t *testing.T) {
		match := newMatch("2024-03-01", "10:00:00")
		require.NoError(t, repo.Create(ctx, match))
		require.NoError(t, repo.SoftDelete(ctx, match.ID))

		taken, err := repo.ExistsAtSlot(ctx, "2024-03-01", "10:00:00")
		require.NoError(t, err)
		assert.False(t, taken)
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db)

	match := newMatch("2024-02-25", "18:00:00")
	require.NoError(t, repo.Create(ctx, match))

	t.Run("success", func(t *testing.T) {
		found, err := repo.GetByID(ctx, match.ID)
		require.NoError(t, err)
		assert.Equal(t, "2024-02-25", found.MatchDate)
	})

	t.Run("not found", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 999)
		assert.Nil(t, found)
		assert.ErrorIs(t, err, matchModel.ErrMatchNotFound)
	})

	t.Run("soft-deleted match is not found", func(t *testing.T) {
		gone := newMatch("2024-04-01", "12:00:00")
		require.NoError(t, repo.Create(ctx, gone))
		require.NoError(t, repo.SoftDelete(ctx, gone.ID))

		found, err := repo.GetByID(ctx, gone.ID)
		assert.Nil(t, found)
		assert.ErrorIs(t, err, matchModel.ErrMatchNotFound)
	})
}

func TestRepository_UpdateSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		match := newMatch("2024-02-25", "18:00:00")
		require.NoError(t, repo.Create(ctx, match))

		err := repo.UpdateSchedule(ctx, match.ID, "2024-02-26", "19:00:00")
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, match.ID)
		require.NoError(t, err)
		assert.Equal(t, "2024-02-26", found.MatchDate)
		assert.Equal(t, "19:00:00", found.MatchTime)
	})

	t.Run("moving onto an occupied slot", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		require.NoError(t, repo.Create(ctx, newMatch("2024-02-25", "18:00:00")))
		other := newMatch("2024-02-26", "18:00:00")
		require.NoError(t, repo.Create(ctx, other))

		err := repo.UpdateSchedule(ctx, other.ID, "2024-02-25", "18:00:00")
		assert.ErrorIs(t, err, matchModel.ErrSlotTaken)
	})

	t.Run("unknown match", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		err := repo.UpdateSchedule(ctx, 999, "2024-02-26", "19:00:00")
		assert.ErrorIs(t, err, matchModel.ErrMatchNotFound)
	})
}

func TestRepository_DeleteResults(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db)

	match := newMatch("2024-02-25", "18:00:00")
	require.NoError(t, repo.Create(ctx, match))

	result := &resultModel.MatchResult{MatchID: match.ID, TeamID: 1, Goals: 2}
	require.NoError(t, db.Create(result).Error)
	require.NoError(t, db.Create(&resultModel.Substitution{
		MatchResultID: result.ID, OutMemberID: 10, InMemberID: 11, Minute: 60,
	}).Error)

	require.NoError(t, repo.DeleteResults(ctx, match.ID))

	var resultCount, subCount int64
	db.Model(&resultModel.MatchResult{}).Where("match_id = ?", match.ID).Count(&resultCount)
	db.Model(&resultModel.Substitution{}).Count(&subCount)
	assert.Zero(t, resultCount)
	assert.Zero(t, subCount)
}

func TestRepository_ListByTeam(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db)

	early := newMatch("2024-02-25", "10:00:00")
	late := newMatch("2024-02-25", "18:00:00")
	require.NoError(t, repo.Create(ctx, late))
	require.NoError(t, repo.Create(ctx, early))

	other := newMatch("2024-02-26", "10:00:00")
	other.HomeTeamID = 3
	other.AwayTeamID = 4
	require.NoError(t, repo.Create(ctx, other))

	matches, err := repo.ListByTeam(ctx, 2)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "10:00:00", matches[0].MatchTime)
	assert.Equal(t, "18:00:00", matches[1].MatchTime)
}
