package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/cricket-tournament/models"
	"github.com/Dosada05/cricket-tournament/storage"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Snapshot is a point-in-time copy of every entity collection.
type Snapshot struct {
	ExportedAt  time.Time            `json:"exported_at"`
	Tournaments []*models.Tournament `json:"tournaments"`
	Teams       []*models.Team       `json:"teams"`
	Players     []*models.Player     `json:"players"`
	Matches     []*models.Match      `json:"matches"`
}

type ExportResult struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	Size     int    `json:"size"`
	Records  int    `json:"records"`
	Exported string `json:"exported_at"`
}

type ExportService interface {
	Collect(ctx context.Context) (*Snapshot, error)
	Export(ctx context.Context) (*ExportResult, error)
}

type exportService struct {
	tournaments CRUDService[*models.Tournament]
	teams       CRUDService[*models.Team]
	players     CRUDService[*models.Player]
	matches     CRUDService[*models.Match]
	uploader    storage.FileUploader
	logger      *slog.Logger
	now         func() time.Time
}

// NewExportService returns a service that can always Collect; Export needs a
// non-nil uploader and returns ErrExportDisabled otherwise.
func NewExportService(
	tournaments CRUDService[*models.Tournament],
	teams CRUDService[*models.Team],
	players CRUDService[*models.Player],
	matches CRUDService[*models.Match],
	uploader storage.FileUploader,
	logger *slog.Logger,
) ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &exportService{
		tournaments: tournaments,
		teams:       teams,
		players:     players,
		matches:     matches,
		uploader:    uploader,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *exportService) Collect(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{ExportedAt: s.now().UTC()}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Tournaments, err = s.tournaments.List(gCtx)
		return err
	})
	g.Go(func() (err error) {
		snap.Teams, err = s.teams.List(gCtx)
		return err
	})
	g.Go(func() (err error) {
		snap.Players, err = s.players.List(gCtx)
		return err
	})
	g.Go(func() (err error) {
		snap.Matches, err = s.matches.List(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *exportService) Export(ctx context.Context) (*ExportResult, error) {
	if s.uploader == nil {
		return nil, ErrExportDisabled
	}

	snap, err := s.Collect(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := fmt.Sprintf("exports/%s/%s.json", snap.ExportedAt.Format("2006-01-02"), uuid.NewString())
	res, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to upload snapshot: %w", err)
	}

	records := len(snap.Tournaments) + len(snap.Teams) + len(snap.Players) + len(snap.Matches)
	s.logger.Info("snapshot exported",
		slog.String("key", res.Key),
		slog.Int("records", records),
		slog.Int("bytes", len(body)),
	)

	return &ExportResult{
		Key:      res.Key,
		URL:      s.uploader.GetPublicURL(res.Key),
		Size:     len(body),
		Records:  records,
		Exported: snap.ExportedAt.Format(time.RFC3339),
	}, nil
}
