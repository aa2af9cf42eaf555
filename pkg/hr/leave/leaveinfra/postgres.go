package leaveinfra

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/hr/leave"
	"github.com/talenta-pe/talenta/pkg/kernel"
)

// PostgresBalanceRepository implementación de PostgreSQL para BalanceRepository
type PostgresBalanceRepository struct {
	db *sqlx.DB
}

// NewPostgresBalanceRepository crea una nueva instancia del repositorio de saldos
func NewPostgresBalanceRepository(db *sqlx.DB) leave.BalanceRepository {
	return &PostgresBalanceRepository{
		db: db,
	}
}

// FindByUserAndYear busca el saldo de una cuenta para un año
func (r *PostgresBalanceRepository) FindByUserAndYear(ctx context.Context, userID kernel.UserID, year int) (*leave.Balance, error) {
	query := `
		SELECT user_id, year, total, used, available, created_at, updated_at
		FROM leave_balances
		WHERE user_id = $1 AND year = $2`

	var b leave.Balance
	err := r.db.GetContext(ctx, &b, query, userID.String(), year)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, leave.ErrBalanceNotFound().
				WithDetail("user_id", userID.String()).
				WithDetail("year", year)
		}
		return nil, errx.Wrap(err, "failed to find leave balance", errx.TypeInternal).
			WithDetail("user_id", userID.String()).
			WithDetail("year", year)
	}

	return &b, nil
}

// UpsertInitial crea el saldo inicial del año. ON CONFLICT DO NOTHING sobre
// (user_id, year): idempotente ante contrataciones repetidas.
func (r *PostgresBalanceRepository) UpsertInitial(ctx context.Context, b leave.Balance) error {
	query := `
		INSERT INTO leave_balances (user_id, year, total, used, available, created_at, updated_at)
		VALUES (:user_id, :year, :total, :used, :available, :created_at, :updated_at)
		ON CONFLICT (user_id, year) DO NOTHING`

	_, err := r.db.NamedExecContext(ctx, query, b)
	if err != nil {
		return errx.Wrap(err, "failed to upsert leave balance", errx.TypeInternal).
			WithDetail("user_id", b.UserID.String()).
			WithDetail("year", b.Year)
	}

	return nil
}

// Save actualiza un saldo existente
func (r *PostgresBalanceRepository) Save(ctx context.Context, b leave.Balance) error {
	query := `
		UPDATE leave_balances SET
			total = :total,
			used = :used,
			available = :available,
			updated_at = :updated_at
		WHERE user_id = :user_id AND year = :year`

	result, err := r.db.NamedExecContext(ctx, query, b)
	if err != nil {
		return errx.Wrap(err, "failed to save leave balance", errx.TypeInternal).
			WithDetail("user_id", b.UserID.String()).
			WithDetail("year", b.Year)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}

	if rowsAffected == 0 {
		return leave.ErrBalanceNotFound().
			WithDetail("user_id", b.UserID.String()).
			WithDetail("year", b.Year)
	}

	return nil
}
