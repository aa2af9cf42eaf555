package leave

import (
	"context"

	"github.com/talenta-pe/talenta/pkg/kernel"
)

// BalanceRepository define el contrato para la persistencia de saldos
type BalanceRepository interface {
	FindByUserAndYear(ctx context.Context, userID kernel.UserID, year int) (*Balance, error)
	// UpsertInitial crea el saldo del año si no existe; si ya existe no lo
	// modifica (re-ejecutar una contratación no re-otorga días)
	UpsertInitial(ctx context.Context, b Balance) error
	Save(ctx context.Context, b Balance) error
}
