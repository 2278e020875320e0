package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/cricket-tournament/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(TournamentTable)

	first := &models.Tournament{Name: "Summer Cup", StartDate: models.NewDate(2025, time.June, 1), Venue: "Oval", Status: "Active"}
	second := &models.Tournament{Name: "Winter Cup", StartDate: models.NewDate(2025, time.December, 1), Venue: "Eden", Status: "Active"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	got.Name = "mutated"
	again, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Summer Cup", again.Name)

	second.Venue = "Lord's"
	require.NoError(t, repo.Update(ctx, second))
	got, err = repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Lord's", got.Venue)

	require.NoError(t, repo.Delete(ctx, 1))
	_, err = repo.GetByID(ctx, 1)
	assert.True(t, errors.Is(err, ErrNotFound))

	third := &models.Tournament{Name: "Spring Cup", StartDate: models.NewDate(2026, time.March, 1), Venue: "Oval"}
	require.NoError(t, repo.Create(ctx, third))
	assert.Equal(t, int64(3), third.ID, "ids are never reused")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, int64(3), list[1].ID)
}

func TestMemoryRepository_MissingRows(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(TeamTable)

	err := repo.Update(ctx, &models.Team{ID: 42, Name: "Ghosts", Captain: "Nobody"})
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, 999), ErrNotFound))

	ok, err := repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMemoryRepository_Count(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(MatchTable)

	for _, m := range []*models.Match{
		{TournamentID: int64Ptr(1), Date: models.NewDate(2025, time.June, 2), Venue: "Oval", Status: "Scheduled"},
		{TournamentID: int64Ptr(1), Date: models.NewDate(2025, time.June, 3), Venue: "Oval", Status: "Completed"},
		{TournamentID: int64Ptr(2), Date: models.NewDate(2025, time.June, 4), Venue: "Eden", Status: "Scheduled"},
		{Date: models.NewDate(2025, time.June, 5), Venue: "Eden", Status: "Scheduled"},
	} {
		require.NoError(t, repo.Create(ctx, m))
	}

	n, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = repo.Count(ctx, map[string]any{"status": "Scheduled"})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = repo.Count(ctx, map[string]any{"status": "Scheduled", "tournament_id": 1})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = repo.Count(ctx, map[string]any{"winner": 1})
	assert.True(t, errors.Is(err, ErrUnknownColumn))
}
