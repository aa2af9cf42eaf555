package position

import (
	"context"

	"github.com/talenta-pe/talenta/pkg/kernel"
)

// PositionRepository define el contrato para la persistencia de vacantes
type PositionRepository interface {
	FindByID(ctx context.Context, id kernel.PositionID) (*Position, error)
	FindAll(ctx context.Context, filters ListFilters, pagination kernel.PaginationOptions) (*kernel.Paginated[Position], error)
	Create(ctx context.Context, p Position) error
	Update(ctx context.Context, p Position) error
	Delete(ctx context.Context, id kernel.PositionID) error
}
