package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/cricket-tournament/models"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrUnknownColumn       = errors.New("unknown column")
)

// Repository is the keyed store for a single entity type.
type Repository[T models.Entity] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, entity T) error
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context, filter map[string]any) (int, error)
}

// Table describes how an entity maps onto its relational table. The id
// column is implicit and always comes first in SELECT lists.
type Table[T models.Entity] struct {
	Name    string
	Kind    models.Kind
	Columns []string
	New     func() T
	// Values returns the column values of an entity, in Columns order.
	Values func(T) []any
	// Fields returns scan destinations for Columns, in the same order.
	Fields func(T) []any
}

func (t Table[T]) columnIndex(column string) (int, error) {
	for i, c := range t.Columns {
		if c == column {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w %q for table %s", ErrUnknownColumn, column, t.Name)
}

func (t Table[T]) notFound(id int64) error {
	return fmt.Errorf("%s %d: %w", t.Kind, id, ErrNotFound)
}

func (t Table[T]) columnList() string {
	return strings.Join(t.Columns, ", ")
}
