package employee

import (
	"context"

	"github.com/talenta-pe/talenta/pkg/kernel"
)

// EmployeeRepository define el contrato para la persistencia de perfiles
type EmployeeRepository interface {
	FindByUserID(ctx context.Context, userID kernel.UserID) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindAll(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Employee], error)
	// Upsert inserta el perfil o lo actualiza si ya existe uno para la cuenta
	Upsert(ctx context.Context, e Employee) error
}
