package services

import (
	"context"
	"fmt"

	"github.com/Dosada05/cricket-tournament/models"
	"github.com/Dosada05/cricket-tournament/repositories"
)

// ReferenceChecker verifies that soft foreign keys point at existing rows.
type ReferenceChecker interface {
	Check(ctx context.Context, refs []models.Reference) error
}

type existsFunc func(ctx context.Context, id int64) (bool, error)

type referenceChecker struct {
	lookups map[models.Kind]existsFunc
}

func NewReferenceChecker(
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
) ReferenceChecker {
	return &referenceChecker{
		lookups: map[models.Kind]existsFunc{
			models.KindTournament: tournamentRepo.Exists,
			models.KindTeam:       teamRepo.Exists,
		},
	}
}

func (c *referenceChecker) Check(ctx context.Context, refs []models.Reference) error {
	for _, ref := range refs {
		if ref.ID == nil {
			continue
		}
		lookup, ok := c.lookups[ref.Kind]
		if !ok {
			return fmt.Errorf("no lookup registered for %s references", ref.Kind)
		}
		exists, err := lookup(ctx, *ref.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s %d (%s)", ErrReferenceNotFound, ref.Kind, *ref.ID, ref.Field)
		}
	}
	return nil
}
