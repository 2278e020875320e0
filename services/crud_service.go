package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/cricket-tournament/models"
	"github.com/Dosada05/cricket-tournament/repositories"
)

// CRUDService is the operations layer shared by every entity type.
type CRUDService[T models.Entity] interface {
	Kind() models.Kind
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, id int64, entity T) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Notifier receives an event after every successful write.
type Notifier interface {
	Publish(ctx context.Context, event models.ChangeEvent)
}

type crudService[T models.Entity] struct {
	kind     models.Kind
	repo     repositories.Repository[T]
	refs     ReferenceChecker
	notifier Notifier
	logger   *slog.Logger
}

// NewCRUDService wires a store to the operations layer. refs and notifier are
// optional; a nil refs leaves soft references unchecked.
func NewCRUDService[T models.Entity](
	kind models.Kind,
	repo repositories.Repository[T],
	refs ReferenceChecker,
	notifier Notifier,
	logger *slog.Logger,
) CRUDService[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &crudService[T]{
		kind:     kind,
		repo:     repo,
		refs:     refs,
		notifier: notifier,
		logger:   logger.With(slog.String("entity", string(kind))),
	}
}

func (s *crudService[T]) Kind() models.Kind {
	return s.kind
}

func (s *crudService[T]) List(ctx context.Context) ([]T, error) {
	entities, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}
	if entities == nil {
		return []T{}, nil
	}
	return entities, nil
}

func (s *crudService[T]) Get(ctx context.Context, id int64) (T, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		var zero T
		return zero, s.mapRepositoryError(id, err)
	}
	return entity, nil
}

func (s *crudService[T]) Create(ctx context.Context, entity T) (T, error) {
	var zero T
	// Identity is always assigned by the store.
	entity.SetID(0)

	if err := s.checkReferences(ctx, entity); err != nil {
		return zero, err
	}
	if err := s.repo.Create(ctx, entity); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	s.logger.Info("record created", slog.Int64("id", entity.GetID()))
	s.publish(ctx, models.ActionCreated, entity.GetID(), entity)
	return entity, nil
}

func (s *crudService[T]) Update(ctx context.Context, id int64, entity T) (T, error) {
	var zero T
	entity.SetID(id)

	if err := s.checkReferences(ctx, entity); err != nil {
		return zero, err
	}
	if err := s.repo.Update(ctx, entity); err != nil {
		return zero, s.mapRepositoryError(id, err)
	}

	s.logger.Info("record updated", slog.Int64("id", id))
	s.publish(ctx, models.ActionUpdated, id, entity)
	return entity, nil
}

func (s *crudService[T]) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepositoryError(id, err)
	}

	s.logger.Info("record deleted", slog.Int64("id", id))
	s.publish(ctx, models.ActionDeleted, id, nil)
	return nil
}

func (s *crudService[T]) checkReferences(ctx context.Context, entity T) error {
	if s.refs == nil {
		return nil
	}
	return s.refs.Check(ctx, entity.References())
}

func (s *crudService[T]) publish(ctx context.Context, action models.ChangeAction, id int64, payload any) {
	if s.notifier == nil {
		return
	}
	s.notifier.Publish(ctx, models.ChangeEvent{
		Kind:    s.kind,
		Action:  action,
		ID:      id,
		Payload: payload,
	})
}

func (s *crudService[T]) mapRepositoryError(id int64, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%s %d %w", s.kind, id, ErrNotFound)
	}
	return fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
}
