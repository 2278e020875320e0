package services

import (
	"context"
	"fmt"

	"github.com/Dosada05/cricket-tournament/models"
	"github.com/Dosada05/cricket-tournament/repositories"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	playerRepo     repositories.PlayerRepository
	matchRepo      repositories.MatchRepository
}

func NewDashboardService(
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
) DashboardService {
	return &dashboardService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		matchRepo:      matchRepo,
	}
}

type counter interface {
	Count(ctx context.Context, filter map[string]any) (int, error)
}

func (s *dashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats

	jobs := []struct {
		repo   counter
		filter map[string]any
		dst    *int
	}{
		{s.tournamentRepo, nil, &stats.TournamentsTotal},
		{s.tournamentRepo, map[string]any{"status": models.DefaultTournamentStatus}, &stats.ActiveTournaments},
		{s.teamRepo, nil, &stats.TeamsTotal},
		{s.playerRepo, nil, &stats.PlayersTotal},
		{s.matchRepo, nil, &stats.MatchesTotal},
		{s.matchRepo, map[string]any{"status": models.DefaultMatchStatus}, &stats.ScheduledMatches},
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			n, err := job.repo.Count(gCtx, job.filter)
			if err != nil {
				return err
			}
			*job.dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, fmt.Errorf("%w: failed to collect dashboard stats: %w", ErrPersistenceFailed, err)
	}
	return stats, nil
}
