package repositories

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/Dosada05/cricket-tournament/models"
)

// memoryRepository keeps JSON snapshots of each record so callers never share
// memory with the stored copy.
type memoryRepository[T models.Entity] struct {
	mu     sync.RWMutex
	table  Table[T]
	nextID int64
	rows   map[int64][]byte
}

// NewMemoryRepository returns a process-local Repository, used for local
// development (STORAGE_DRIVER=memory) and tests.
func NewMemoryRepository[T models.Entity](table Table[T]) Repository[T] {
	return &memoryRepository[T]{
		table:  table,
		nextID: 1,
		rows:   make(map[int64][]byte),
	}
}

func (r *memoryRepository[T]) decode(id int64, raw []byte) (T, error) {
	entity := r.table.New()
	if err := json.Unmarshal(raw, entity); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to decode %s %d: %w", r.table.Kind, id, err)
	}
	entity.SetID(id)
	return entity, nil
}

func (r *memoryRepository[T]) sortedIDs() []int64 {
	ids := make([]int64, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *memoryRepository[T]) List(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entities := make([]T, 0, len(r.rows))
	for _, id := range r.sortedIDs() {
		entity, err := r.decode(id, r.rows[id])
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (r *memoryRepository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	raw, ok := r.rows[id]
	if !ok {
		var zero T
		return zero, r.table.notFound(id)
	}
	return r.decode(id, raw)
}

func (r *memoryRepository[T]) Create(ctx context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	entity.SetID(id)
	raw, err := json.Marshal(entity)
	if err != nil {
		entity.SetID(0)
		return fmt.Errorf("failed to insert %s: %w", r.table.Kind, err)
	}
	r.rows[id] = raw
	r.nextID++
	return nil
}

func (r *memoryRepository[T]) Update(ctx context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.GetID()
	if _, ok := r.rows[id]; !ok {
		return r.table.notFound(id)
	}
	raw, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to update %s %d: %w", r.table.Kind, id, err)
	}
	r.rows[id] = raw
	return nil
}

func (r *memoryRepository[T]) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return r.table.notFound(id)
	}
	delete(r.rows, id)
	return nil
}

func (r *memoryRepository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rows[id]
	return ok, nil
}

func (r *memoryRepository[T]) Count(ctx context.Context, filter map[string]any) (int, error) {
	columns := sortedKeys(filter)
	indexes := make([]int, len(columns))
	wanted := make([]driver.Value, len(columns))
	for i, column := range columns {
		idx, err := r.table.columnIndex(column)
		if err != nil {
			return 0, err
		}
		v, err := driver.DefaultParameterConverter.ConvertValue(filter[column])
		if err != nil {
			return 0, fmt.Errorf("invalid filter value for %s: %w", column, err)
		}
		indexes[i] = idx
		wanted[i] = v
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for id, raw := range r.rows {
		entity, err := r.decode(id, raw)
		if err != nil {
			return 0, err
		}
		if matchesFilter(r.table.Values(entity), indexes, wanted) {
			count++
		}
	}
	return count, nil
}

func matchesFilter(values []any, indexes []int, wanted []driver.Value) bool {
	for i, idx := range indexes {
		got, err := driver.DefaultParameterConverter.ConvertValue(values[idx])
		if err != nil || got != wanted[i] {
			return false
		}
	}
	return true
}
