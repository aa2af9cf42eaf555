package employeeinfra

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/hr/employee"
	"github.com/talenta-pe/talenta/pkg/kernel"
)

// PostgresEmployeeRepository implementación de PostgreSQL para EmployeeRepository
type PostgresEmployeeRepository struct {
	db *sqlx.DB
}

// NewPostgresEmployeeRepository crea una nueva instancia del repositorio de empleados
func NewPostgresEmployeeRepository(db *sqlx.DB) employee.EmployeeRepository {
	return &PostgresEmployeeRepository{
		db: db,
	}
}

// FindByUserID busca un perfil por el id de su cuenta
func (r *PostgresEmployeeRepository) FindByUserID(ctx context.Context, userID kernel.UserID) (*employee.Employee, error) {
	query := `
		SELECT user_id, full_name, email, phone, department, position, status,
			to_char(hire_date, 'YYYY-MM-DD') AS hire_date, address, created_at, updated_at
		FROM employees
		WHERE user_id = $1`

	var e employee.Employee
	err := r.db.GetContext(ctx, &e, query, userID.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, employee.ErrEmployeeNotFound().WithDetail("user_id", userID.String())
		}
		return nil, errx.Wrap(err, "failed to find employee by user id", errx.TypeInternal).
			WithDetail("user_id", userID.String())
	}

	return &e, nil
}

// FindByEmail busca un perfil por email
func (r *PostgresEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	query := `
		SELECT user_id, full_name, email, phone, department, position, status,
			to_char(hire_date, 'YYYY-MM-DD') AS hire_date, address, created_at, updated_at
		FROM employees
		WHERE lower(email) = lower($1)`

	var e employee.Employee
	err := r.db.GetContext(ctx, &e, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, employee.ErrEmployeeNotFound().WithDetail("email", email)
		}
		return nil, errx.Wrap(err, "failed to find employee by email", errx.TypeInternal).
			WithDetail("email", email)
	}

	return &e, nil
}

// FindAll lista los perfiles de empleados paginados
func (r *PostgresEmployeeRepository) FindAll(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[employee.Employee], error) {
	pagination = pagination.Normalize()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM employees`); err != nil {
		return nil, errx.Wrap(err, "failed to count employees", errx.TypeInternal)
	}

	query := `
		SELECT user_id, full_name, email, phone, department, position, status,
			to_char(hire_date, 'YYYY-MM-DD') AS hire_date, address, created_at, updated_at
		FROM employees
		ORDER BY full_name ASC
		LIMIT $1 OFFSET $2`

	var employees []employee.Employee
	err := r.db.SelectContext(ctx, &employees, query, pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list employees", errx.TypeInternal)
	}

	return &kernel.Paginated[employee.Employee]{
		Items:    employees,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

// Upsert inserta el perfil o actualiza el existente de la cuenta
func (r *PostgresEmployeeRepository) Upsert(ctx context.Context, e employee.Employee) error {
	query := `
		INSERT INTO employees (
			user_id, full_name, email, phone, department, position, status,
			hire_date, address, created_at, updated_at
		) VALUES (
			:user_id, :full_name, :email, :phone, :department, :position, :status,
			to_date(:hire_date, 'YYYY-MM-DD'), :address, :created_at, :updated_at
		)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			department = EXCLUDED.department,
			position = EXCLUDED.position,
			status = EXCLUDED.status,
			hire_date = EXCLUDED.hire_date,
			address = EXCLUDED.address,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, e)
	if err != nil {
		return errx.Wrap(err, "failed to upsert employee", errx.TypeInternal).
			WithDetail("user_id", e.UserID.String()).
			WithDetail("email", e.Email)
	}

	return nil
}
