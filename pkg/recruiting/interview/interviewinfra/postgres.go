package interviewinfra

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/recruiting/interview"
)

// PostgresInterviewRepository implementación de PostgreSQL para InterviewRepository
type PostgresInterviewRepository struct {
	db *sqlx.DB
}

// NewPostgresInterviewRepository crea una nueva instancia del repositorio de entrevistas
func NewPostgresInterviewRepository(db *sqlx.DB) interview.InterviewRepository {
	return &PostgresInterviewRepository{
		db: db,
	}
}

const interviewColumns = `
	id, application_id, interview_type, status, scheduled_at, duration_minutes,
	location, meeting_url, feedback_summary, next_steps, decision, created_at, updated_at`

// FindByID busca una entrevista por su id
func (r *PostgresInterviewRepository) FindByID(ctx context.Context, id kernel.InterviewID) (*interview.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`

	var i interview.Interview
	err := r.db.GetContext(ctx, &i, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, interview.ErrInterviewNotFound().WithDetail("interview_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to find interview", errx.TypeInternal).
			WithDetail("interview_id", id.String())
	}

	return &i, nil
}

// FindByApplication lista las entrevistas de una postulación
func (r *PostgresInterviewRepository) FindByApplication(ctx context.Context, applicationID kernel.ApplicationID) ([]interview.Interview, error) {
	query := `SELECT ` + interviewColumns + `
		FROM interviews
		WHERE application_id = $1
		ORDER BY scheduled_at ASC`

	var interviews []interview.Interview
	err := r.db.SelectContext(ctx, &interviews, query, applicationID.String())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list interviews", errx.TypeInternal).
			WithDetail("application_id", applicationID.String())
	}

	return interviews, nil
}

// Create inserta una nueva entrevista
func (r *PostgresInterviewRepository) Create(ctx context.Context, i interview.Interview) error {
	query := `
		INSERT INTO interviews (
			id, application_id, interview_type, status, scheduled_at, duration_minutes,
			location, meeting_url, feedback_summary, next_steps, decision, created_at, updated_at
		) VALUES (
			:id, :application_id, :interview_type, :status, :scheduled_at, :duration_minutes,
			:location, :meeting_url, :feedback_summary, :next_steps, :decision, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, i)
	if err != nil {
		return errx.Wrap(err, "failed to create interview", errx.TypeInternal).
			WithDetail("interview_id", i.ID.String()).
			WithDetail("application_id", i.ApplicationID.String())
	}

	return nil
}

// Update actualiza una entrevista existente
func (r *PostgresInterviewRepository) Update(ctx context.Context, i interview.Interview) error {
	query := `
		UPDATE interviews SET
			interview_type = :interview_type,
			status = :status,
			scheduled_at = :scheduled_at,
			duration_minutes = :duration_minutes,
			location = :location,
			meeting_url = :meeting_url,
			feedback_summary = :feedback_summary,
			next_steps = :next_steps,
			decision = :decision,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, i)
	if err != nil {
		return errx.Wrap(err, "failed to update interview", errx.TypeInternal).
			WithDetail("interview_id", i.ID.String())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}

	if rowsAffected == 0 {
		return interview.ErrInterviewNotFound().WithDetail("interview_id", i.ID.String())
	}

	return nil
}

// Delete elimina una entrevista. Es un borrado duro y sin guardas de estado.
func (r *PostgresInterviewRepository) Delete(ctx context.Context, id kernel.InterviewID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM interviews WHERE id = $1`, id.String())
	if err != nil {
		return errx.Wrap(err, "failed to delete interview", errx.TypeInternal).
			WithDetail("interview_id", id.String())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}

	if rowsAffected == 0 {
		return interview.ErrInterviewNotFound().WithDetail("interview_id", id.String())
	}

	return nil
}
