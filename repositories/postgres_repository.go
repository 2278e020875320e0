package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/cricket-tournament/models"
)

type postgresRepository[T models.Entity] struct {
	db    *sql.DB
	table Table[T]

	insertQuery string
	selectQuery string
	updateQuery string
	deleteQuery string
}

// NewPostgresRepository builds a Repository for table on top of a lib/pq
// connection pool.
func NewPostgresRepository[T models.Entity](db *sql.DB, table Table[T]) Repository[T] {
	placeholders := make([]string, len(table.Columns))
	assignments := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		assignments[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}

	return &postgresRepository[T]{
		db:    db,
		table: table,
		insertQuery: fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING id`,
			table.Name, table.columnList(), strings.Join(placeholders, ", ")),
		selectQuery: fmt.Sprintf(`SELECT id, %s FROM %s`, table.columnList(), table.Name),
		updateQuery: fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d`,
			table.Name, strings.Join(assignments, ", "), len(table.Columns)+1),
		deleteQuery: fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table.Name),
	}
}

func (r *postgresRepository[T]) scanDest(entity T, id *int64) []any {
	return append([]any{id}, r.table.Fields(entity)...)
}

func (r *postgresRepository[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, r.selectQuery+" ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.table.Name, err)
	}
	defer rows.Close()

	entities := make([]T, 0)
	for rows.Next() {
		var id int64
		entity := r.table.New()
		if scanErr := rows.Scan(r.scanDest(entity, &id)...); scanErr != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.table.Kind, scanErr)
		}
		entity.SetID(id)
		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during %s rows iteration: %w", r.table.Name, err)
	}
	return entities, nil
}

func (r *postgresRepository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	var zero T
	var scanned int64
	entity := r.table.New()

	err := r.db.QueryRowContext(ctx, r.selectQuery+" WHERE id = $1", id).Scan(r.scanDest(entity, &scanned)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, r.table.notFound(id)
		}
		return zero, fmt.Errorf("failed to get %s by id %d: %w", r.table.Kind, id, err)
	}
	entity.SetID(scanned)
	return entity, nil
}

func (r *postgresRepository[T]) Create(ctx context.Context, entity T) error {
	var id int64
	err := r.db.QueryRowContext(ctx, r.insertQuery, r.table.Values(entity)...).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to insert %s: %w", r.table.Kind, handlePQError(err))
	}
	entity.SetID(id)
	return nil
}

func (r *postgresRepository[T]) Update(ctx context.Context, entity T) error {
	args := append(r.table.Values(entity), entity.GetID())
	result, err := r.db.ExecContext(ctx, r.updateQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s %d: %w", r.table.Kind, entity.GetID(), handlePQError(err))
	}
	return checkAffectedRows(result, r.table.notFound(entity.GetID()))
}

func (r *postgresRepository[T]) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, r.deleteQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", r.table.Kind, id, handlePQError(err))
	}
	return checkAffectedRows(result, r.table.notFound(id))
}

func (r *postgresRepository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, r.table.Name)
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s %d existence: %w", r.table.Kind, id, err)
	}
	return exists, nil
}

func (r *postgresRepository[T]) Count(ctx context.Context, filter map[string]any) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE 1=1`, r.table.Name)
	args := []any{}
	argID := 1

	for _, column := range sortedKeys(filter) {
		if _, err := r.table.columnIndex(column); err != nil {
			return 0, err
		}
		query += fmt.Sprintf(" AND %s = $%d", column, argID)
		args = append(args, filter[column])
		argID++
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.table.Name, err)
	}
	return count, nil
}
