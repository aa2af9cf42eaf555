package candidateinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/recruiting/candidate"
)

// PostgresCandidateRepository implementación de PostgreSQL para CandidateRepository
type PostgresCandidateRepository struct {
	db *sqlx.DB
}

// NewPostgresCandidateRepository crea una nueva instancia del repositorio de candidatos
func NewPostgresCandidateRepository(db *sqlx.DB) candidate.CandidateRepository {
	return &PostgresCandidateRepository{
		db: db,
	}
}

const candidateColumns = `
	id, full_name, email, phone, source, seniority, current_location,
	resume_url, notes, status, created_at, updated_at`

// FindByID busca un candidato por su id
func (r *PostgresCandidateRepository) FindByID(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`

	var c candidate.Candidate
	err := r.db.GetContext(ctx, &c, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to find candidate", errx.TypeInternal).
			WithDetail("candidate_id", id.String())
	}

	return &c, nil
}

// FindByEmail busca un candidato por email
func (r *PostgresCandidateRepository) FindByEmail(ctx context.Context, email string) (*candidate.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE lower(email) = lower($1)`

	var c candidate.Candidate
	err := r.db.GetContext(ctx, &c, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidate.ErrCandidateNotFound().WithDetail("email", email)
		}
		return nil, errx.Wrap(err, "failed to find candidate by email", errx.TypeInternal).
			WithDetail("email", email)
	}

	return &c, nil
}

// FindAll lista candidatos con filtro opcional de estado y búsqueda por nombre o email
func (r *PostgresCandidateRepository) FindAll(ctx context.Context, filters candidate.ListFilters, pagination kernel.PaginationOptions) (*kernel.Paginated[candidate.Candidate], error) {
	pagination = pagination.Normalize()

	where := ""
	args := []any{}

	if filters.Status != nil {
		args = append(args, string(*filters.Status))
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filters.Search != nil {
		args = append(args, "%"+*filters.Search+"%")
		where += fmt.Sprintf(" AND (full_name ILIKE $%d OR email ILIKE $%d)", len(args), len(args))
	}

	countQuery := `SELECT COUNT(*) FROM candidates WHERE 1=1` + where
	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, errx.Wrap(err, "failed to count candidates", errx.TypeInternal)
	}

	args = append(args, pagination.PageSize, pagination.Offset())
	query := fmt.Sprintf(`SELECT `+candidateColumns+`
		FROM candidates
		WHERE 1=1%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	var candidates []candidate.Candidate
	if err := r.db.SelectContext(ctx, &candidates, query, args...); err != nil {
		return nil, errx.Wrap(err, "failed to list candidates", errx.TypeInternal)
	}

	return &kernel.Paginated[candidate.Candidate]{
		Items:    candidates,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

// Create inserta un nuevo candidato
func (r *PostgresCandidateRepository) Create(ctx context.Context, c candidate.Candidate) error {
	query := `
		INSERT INTO candidates (
			id, full_name, email, phone, source, seniority, current_location,
			resume_url, notes, status, created_at, updated_at
		) VALUES (
			:id, :full_name, :email, :phone, :source, :seniority, :current_location,
			:resume_url, :notes, :status, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "candidates_email_key" {
				return candidate.ErrEmailAlreadyUsed().WithDetail("email", c.Email)
			}
		}
		return errx.Wrap(err, "failed to create candidate", errx.TypeInternal).
			WithDetail("candidate_id", c.ID.String())
	}

	return nil
}

// Update actualiza un candidato existente
func (r *PostgresCandidateRepository) Update(ctx context.Context, c candidate.Candidate) error {
	query := `
		UPDATE candidates SET
			full_name = :full_name,
			phone = :phone,
			source = :source,
			seniority = :seniority,
			current_location = :current_location,
			resume_url = :resume_url,
			notes = :notes,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return errx.Wrap(err, "failed to update candidate", errx.TypeInternal).
			WithDetail("candidate_id", c.ID.String())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}

	if rowsAffected == 0 {
		return candidate.ErrCandidateNotFound().WithDetail("candidate_id", c.ID.String())
	}

	return nil
}
