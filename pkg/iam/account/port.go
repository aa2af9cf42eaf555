package account

import (
	"context"

	"github.com/talenta-pe/talenta/pkg/kernel"
)

// AccountRepository define el contrato para la persistencia de cuentas
type AccountRepository interface {
	FindByID(ctx context.Context, id kernel.UserID) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	Create(ctx context.Context, a Account) error
	Update(ctx context.Context, a Account) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RoleRepository define el contrato para las asignaciones de roles
type RoleRepository interface {
	// Grant asigna un rol a una cuenta; es idempotente sobre (user_id, role)
	Grant(ctx context.Context, userID kernel.UserID, role string) error
	FindByUser(ctx context.Context, userID kernel.UserID) ([]RoleGrant, error)
	Revoke(ctx context.Context, userID kernel.UserID, role string) error
}

// PasswordService define el contrato para el manejo de contraseñas
type PasswordService interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hashedPassword, password string) bool
}
