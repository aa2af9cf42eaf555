package applicationinfra

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/recruiting/application"
)

// PostgresApplicationRepository implementación de PostgreSQL para ApplicationRepository
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository crea una nueva instancia del repositorio de postulaciones
func NewPostgresApplicationRepository(db *sqlx.DB) application.ApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

const applicationColumns = `
	id, candidate_id, position_id, status, current_stage, priority,
	salary_expectation, availability_date, created_at, updated_at`

// FindByID busca una postulación por su id
func (r *PostgresApplicationRepository) FindByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	var a application.Application
	err := r.db.GetContext(ctx, &a, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to find application", errx.TypeInternal).
			WithDetail("application_id", id.String())
	}

	return &a, nil
}

// FindLatestByCandidate retorna la postulación más reciente del candidato.
// El orden por created_at DESC define qué significa "la más reciente".
func (r *PostgresApplicationRepository) FindLatestByCandidate(ctx context.Context, candidateID kernel.CandidateID) (*application.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM applications
		WHERE candidate_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	var a application.Application
	err := r.db.GetContext(ctx, &a, query, candidateID.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrApplicationNotFound().WithDetail("candidate_id", candidateID.String())
		}
		return nil, errx.Wrap(err, "failed to find latest application", errx.TypeInternal).
			WithDetail("candidate_id", candidateID.String())
	}

	return &a, nil
}

// FindByCandidate lista todas las postulaciones de un candidato, la más reciente primero
func (r *PostgresApplicationRepository) FindByCandidate(ctx context.Context, candidateID kernel.CandidateID) ([]application.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM applications
		WHERE candidate_id = $1
		ORDER BY created_at DESC`

	var apps []application.Application
	err := r.db.SelectContext(ctx, &apps, query, candidateID.String())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal).
			WithDetail("candidate_id", candidateID.String())
	}

	return apps, nil
}

// Create inserta una nueva postulación
func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	query := `
		INSERT INTO applications (
			id, candidate_id, position_id, status, current_stage, priority,
			salary_expectation, availability_date, created_at, updated_at
		) VALUES (
			:id, :candidate_id, :position_id, :status, :current_stage, :priority,
			:salary_expectation, :availability_date, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, a)
	if err != nil {
		return errx.Wrap(err, "failed to create application", errx.TypeInternal).
			WithDetail("application_id", a.ID.String()).
			WithDetail("candidate_id", a.CandidateID.String())
	}

	return nil
}

// Update actualiza una postulación existente
func (r *PostgresApplicationRepository) Update(ctx context.Context, a application.Application) error {
	query := `
		UPDATE applications SET
			position_id = :position_id,
			status = :status,
			current_stage = :current_stage,
			priority = :priority,
			salary_expectation = :salary_expectation,
			availability_date = :availability_date,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, a)
	if err != nil {
		return errx.Wrap(err, "failed to update application", errx.TypeInternal).
			WithDetail("application_id", a.ID.String())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}

	if rowsAffected == 0 {
		return application.ErrApplicationNotFound().WithDetail("application_id", a.ID.String())
	}

	return nil
}
