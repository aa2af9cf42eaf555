package accountinfra

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/iam/account"
	"github.com/talenta-pe/talenta/pkg/kernel"
)

// PostgresAccountRepository implementación de PostgreSQL para AccountRepository
type PostgresAccountRepository struct {
	db *sqlx.DB
}

// NewPostgresAccountRepository crea una nueva instancia del repositorio de cuentas
func NewPostgresAccountRepository(db *sqlx.DB) account.AccountRepository {
	return &PostgresAccountRepository{
		db: db,
	}
}

// FindByID busca una cuenta por ID
func (r *PostgresAccountRepository) FindByID(ctx context.Context, id kernel.UserID) (*account.Account, error) {
	query := `
		SELECT id, email, full_name, password_hash, must_change_password, created_at, updated_at
		FROM accounts
		WHERE id = $1`

	var a account.Account
	err := r.db.GetContext(ctx, &a, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrAccountNotFound().WithDetail("account_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to find account by id", errx.TypeInternal).
			WithDetail("account_id", id.String())
	}

	return &a, nil
}

// FindByEmail busca una cuenta por email
func (r *PostgresAccountRepository) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	query := `
		SELECT id, email, full_name, password_hash, must_change_password, created_at, updated_at
		FROM accounts
		WHERE lower(email) = lower($1)`

	var a account.Account
	err := r.db.GetContext(ctx, &a, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrAccountNotFound().WithDetail("email", email)
		}
		return nil, errx.Wrap(err, "failed to find account by email", errx.TypeInternal).
			WithDetail("email", email)
	}

	return &a, nil
}

// Create crea una nueva cuenta
func (r *PostgresAccountRepository) Create(ctx context.Context, a account.Account) error {
	query := `
		INSERT INTO accounts (
			id, email, full_name, password_hash, must_change_password, created_at, updated_at
		) VALUES (
			:id, :email, :full_name, :password_hash, :must_change_password, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, a)
	if err != nil {
		// Violación de constraint de email único: dos contrataciones
		// concurrentes pueden pasar ambas el lookup previo
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" && pqErr.Constraint == "accounts_email_key" {
				return account.ErrAccountAlreadyExists().
					WithDetail("email", a.Email)
			}
		}
		return errx.Wrap(err, "failed to create account", errx.TypeInternal).
			WithDetail("account_id", a.ID.String()).
			WithDetail("email", a.Email)
	}

	return nil
}

// Update actualiza una cuenta existente
func (r *PostgresAccountRepository) Update(ctx context.Context, a account.Account) error {
	query := `
		UPDATE accounts SET
			email = :email,
			full_name = :full_name,
			password_hash = :password_hash,
			must_change_password = :must_change_password,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, a)
	if err != nil {
		return errx.Wrap(err, "failed to update account", errx.TypeInternal).
			WithDetail("account_id", a.ID.String())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}

	if rowsAffected == 0 {
		return account.ErrAccountNotFound().WithDetail("account_id", a.ID.String())
	}

	return nil
}

// ExistsByEmail verifica si existe una cuenta con el email dado
func (r *PostgresAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM accounts WHERE lower(email) = lower($1))`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, errx.Wrap(err, "failed to check account existence by email", errx.TypeInternal).
			WithDetail("email", email)
	}

	return exists, nil
}

// ============================================================================
// Role Repository
// ============================================================================

// PostgresRoleRepository implementación de PostgreSQL para RoleRepository
type PostgresRoleRepository struct {
	db *sqlx.DB
}

// NewPostgresRoleRepository crea una nueva instancia del repositorio de roles
func NewPostgresRoleRepository(db *sqlx.DB) account.RoleRepository {
	return &PostgresRoleRepository{
		db: db,
	}
}

// Grant asigna un rol a una cuenta. Upsert sobre (user_id, role):
// reintentar una contratación no duplica la fila.
func (r *PostgresRoleRepository) Grant(ctx context.Context, userID kernel.UserID, role string) error {
	query := `
		INSERT INTO user_roles (user_id, role, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, role) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, userID.String(), role)
	if err != nil {
		return errx.Wrap(err, "failed to grant role", errx.TypeInternal).
			WithDetail("account_id", userID.String()).
			WithDetail("role", role)
	}

	return nil
}

// FindByUser busca los roles asignados a una cuenta
func (r *PostgresRoleRepository) FindByUser(ctx context.Context, userID kernel.UserID) ([]account.RoleGrant, error) {
	query := `
		SELECT user_id, role, created_at
		FROM user_roles
		WHERE user_id = $1
		ORDER BY role ASC`

	var grants []account.RoleGrant
	err := r.db.SelectContext(ctx, &grants, query, userID.String())
	if err != nil {
		return nil, errx.Wrap(err, "failed to find roles by user", errx.TypeInternal).
			WithDetail("account_id", userID.String())
	}

	return grants, nil
}

// Revoke elimina un rol de una cuenta
func (r *PostgresRoleRepository) Revoke(ctx context.Context, userID kernel.UserID, role string) error {
	query := `DELETE FROM user_roles WHERE user_id = $1 AND role = $2`

	_, err := r.db.ExecContext(ctx, query, userID.String(), role)
	if err != nil {
		return errx.Wrap(err, "failed to revoke role", errx.TypeInternal).
			WithDetail("account_id", userID.String()).
			WithDetail("role", role)
	}

	return nil
}
