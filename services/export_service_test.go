package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/cricket-tournament/models"
	"github.com/Dosada05/cricket-tournament/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exportFixture struct {
	tournaments CRUDService[*models.Tournament]
	teams       CRUDService[*models.Team]
	players     CRUDService[*models.Player]
	matches     CRUDService[*models.Match]
}

func newExportFixture(t *testing.T) exportFixture {
	t.Helper()
	ctx := context.Background()
	f := exportFixture{
		tournaments: NewCRUDService(models.KindTournament, repositories.NewMemoryRepository(repositories.TournamentTable), nil, nil, nil),
		teams:       NewCRUDService(models.KindTeam, repositories.NewMemoryRepository(repositories.TeamTable), nil, nil, nil),
		players:     NewCRUDService(models.KindPlayer, repositories.NewMemoryRepository(repositories.PlayerTable), nil, nil, nil),
		matches:     NewCRUDService(models.KindMatch, repositories.NewMemoryRepository(repositories.MatchTable), nil, nil, nil),
	}
	_, err := f.tournaments.Create(ctx, newTournament("Summer Cup"))
	require.NoError(t, err)
	_, err = f.teams.Create(ctx, &models.Team{Name: "Lions", Captain: "Ravi", TournamentID: int64Ptr(1)})
	require.NoError(t, err)
	_, err = f.players.Create(ctx, &models.Player{Name: "Asha", Role: "Bowler", TeamID: int64Ptr(1)})
	require.NoError(t, err)
	return f
}

func TestExportService_Disabled(t *testing.T) {
	f := newExportFixture(t)
	svc := NewExportService(f.tournaments, f.teams, f.players, f.matches, nil, nil)

	_, err := svc.Export(context.Background())
	assert.True(t, errors.Is(err, ErrExportDisabled))

	snap, err := svc.Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Tournaments, 1)
	assert.Len(t, snap.Teams, 1)
	assert.Len(t, snap.Players, 1)
	assert.Empty(t, snap.Matches)
}

func TestExportService_Export(t *testing.T) {
	f := newExportFixture(t)
	uploader := &FakeUploader{}
	svc := NewExportService(f.tournaments, f.teams, f.players, f.matches, uploader, nil).(*exportService)
	svc.now = func() time.Time { return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC) }

	result, err := svc.Export(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Key, "exports/2025-06-01/"), result.Key)
	assert.True(t, strings.HasSuffix(result.Key, ".json"), result.Key)
	assert.Equal(t, "https://cdn.example.com/"+result.Key, result.URL)
	assert.Equal(t, 3, result.Records)
	assert.Equal(t, "2025-06-01T12:00:00Z", result.Exported)

	body, ok := uploader.Objects[result.Key]
	require.True(t, ok)
	assert.Equal(t, len(body), result.Size)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(body, &snap))
	require.Len(t, snap.Tournaments, 1)
	assert.Equal(t, "Summer Cup", snap.Tournaments[0].Name)
	assert.NotNil(t, snap.Matches)
}

func TestExportService_UploadFailure(t *testing.T) {
	f := newExportFixture(t)
	uploader := &FakeUploader{Err: errors.New("bucket unavailable")}
	svc := NewExportService(f.tournaments, f.teams, f.players, f.matches, uploader, nil)

	_, err := svc.Export(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket unavailable")
}
