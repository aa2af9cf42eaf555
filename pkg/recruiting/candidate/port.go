package candidate

import (
	"context"
	"time"

	"github.com/talenta-pe/talenta/pkg/kernel"
)

// CandidateRepository define el contrato para la persistencia de candidatos
type CandidateRepository interface {
	FindByID(ctx context.Context, id kernel.CandidateID) (*Candidate, error)
	FindByEmail(ctx context.Context, email string) (*Candidate, error)
	FindAll(ctx context.Context, filters ListFilters, pagination kernel.PaginationOptions) (*kernel.Paginated[Candidate], error)
	Create(ctx context.Context, c Candidate) error
	Update(ctx context.Context, c Candidate) error
}

// DetailCache define el contrato para la caché de la vista de detalle.
// Get retorna (nil, nil) cuando no hay entrada cacheada.
type DetailCache interface {
	Get(ctx context.Context, id kernel.CandidateID) (*Detail, error)
	Set(ctx context.Context, detail *Detail, ttl time.Duration) error
	Invalidate(ctx context.Context, id kernel.CandidateID) error
}
