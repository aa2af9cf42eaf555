package employee

import (
	"net/http"
	"time"

	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/kernel"
)

// ============================================================================
// Employee Entity
// ============================================================================

// EmployeeStatus define los posibles estados de un perfil de empleado
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "activo"
	EmployeeStatusInactive EmployeeStatus = "inactivo"
)

// Employee es el perfil de empleado ligado a una cuenta.
// La clave es el id de la cuenta (user_id): un perfil por cuenta.
type Employee struct {
	UserID     kernel.UserID  `db:"user_id" json:"user_id"`
	FullName   string         `db:"full_name" json:"full_name"`
	Email      string         `db:"email" json:"email"`
	Phone      string         `db:"phone" json:"phone"`
	Department string         `db:"department" json:"department"`
	Position   string         `db:"position" json:"position"`
	Status     EmployeeStatus `db:"status" json:"status"`
	// HireDate es la fecha local de contratación en formato ISO YYYY-MM-DD
	HireDate  string    `db:"hire_date" json:"hire_date"`
	Address   string    `db:"address" json:"address"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// IsActive verifica si el empleado está activo
func (e *Employee) IsActive() bool {
	return e.Status == EmployeeStatusActive
}

// Deactivate marca el perfil como inactivo
func (e *Employee) Deactivate() {
	e.Status = EmployeeStatusInactive
	e.UpdatedAt = time.Now()
}

// ============================================================================
// Error Registry - Errores específicos de Employee
// ============================================================================

var ErrRegistry = errx.NewRegistry("EMPLOYEE")

var (
	CodeEmployeeNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Empleado no encontrado")
)

func ErrEmployeeNotFound() *errx.Error {
	return ErrRegistry.New(CodeEmployeeNotFound)
}
