package positioninfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/recruiting/position"
)

// PostgresPositionRepository implementación de PostgreSQL para PositionRepository
type PostgresPositionRepository struct {
	db *sqlx.DB
}

// NewPostgresPositionRepository crea una nueva instancia del repositorio de vacantes
func NewPostgresPositionRepository(db *sqlx.DB) position.PositionRepository {
	return &PostgresPositionRepository{
		db: db,
	}
}

// FindByID busca una vacante por su id
func (r *PostgresPositionRepository) FindByID(ctx context.Context, id kernel.PositionID) (*position.Position, error) {
	query := `
		SELECT id, title, department, location, seniority, status,
			work_start, work_end, created_at, updated_at
		FROM positions
		WHERE id = $1`

	var p position.Position
	err := r.db.GetContext(ctx, &p, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, position.ErrPositionNotFound().WithDetail("position_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to find position", errx.TypeInternal).
			WithDetail("position_id", id.String())
	}

	return &p, nil
}

// FindAll lista vacantes con filtros opcionales de estado y departamento
func (r *PostgresPositionRepository) FindAll(ctx context.Context, filters position.ListFilters, pagination kernel.PaginationOptions) (*kernel.Paginated[position.Position], error) {
	pagination = pagination.Normalize()

	where := ""
	args := []any{}

	if filters.Status != nil {
		args = append(args, string(*filters.Status))
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filters.Department != nil {
		args = append(args, *filters.Department)
		where += fmt.Sprintf(" AND department = $%d", len(args))
	}

	countQuery := `SELECT COUNT(*) FROM positions WHERE 1=1` + where
	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, errx.Wrap(err, "failed to count positions", errx.TypeInternal)
	}

	args = append(args, pagination.PageSize, pagination.Offset())
	query := fmt.Sprintf(`
		SELECT id, title, department, location, seniority, status,
			work_start, work_end, created_at, updated_at
		FROM positions
		WHERE 1=1%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	var positions []position.Position
	if err := r.db.SelectContext(ctx, &positions, query, args...); err != nil {
		return nil, errx.Wrap(err, "failed to list positions", errx.TypeInternal)
	}

	return &kernel.Paginated[position.Position]{
		Items:    positions,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

// Create inserta una nueva vacante
func (r *PostgresPositionRepository) Create(ctx context.Context, p position.Position) error {
	query := `
		INSERT INTO positions (
			id, title, department, location, seniority, status,
			work_start, work_end, created_at, updated_at
		) VALUES (
			:id, :title, :department, :location, :seniority, :status,
			:work_start, :work_end, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return errx.Wrap(err, "failed to create position", errx.TypeInternal).
			WithDetail("position_id", p.ID.String())
	}

	return nil
}

// Update actualiza una vacante existente
func (r *PostgresPositionRepository) Update(ctx context.Context, p position.Position) error {
	query := `
		UPDATE positions SET
			title = :title,
			department = :department,
			location = :location,
			seniority = :seniority,
			status = :status,
			work_start = :work_start,
			work_end = :work_end,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return errx.Wrap(err, "failed to update position", errx.TypeInternal).
			WithDetail("position_id", p.ID.String())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}

	if rowsAffected == 0 {
		return position.ErrPositionNotFound().WithDetail("position_id", p.ID.String())
	}

	return nil
}

// Delete elimina una vacante
func (r *PostgresPositionRepository) Delete(ctx context.Context, id kernel.PositionID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM positions WHERE id = $1`, id.String())
	if err != nil {
		return errx.Wrap(err, "failed to delete position", errx.TypeInternal).
			WithDetail("position_id", id.String())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}

	if rowsAffected == 0 {
		return position.ErrPositionNotFound().WithDetail("position_id", id.String())
	}

	return nil
}
