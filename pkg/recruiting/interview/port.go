package interview

import (
	"context"

	"github.com/talenta-pe/talenta/pkg/kernel"
)

// InterviewRepository define el contrato para la persistencia de entrevistas
type InterviewRepository interface {
	FindByID(ctx context.Context, id kernel.InterviewID) (*Interview, error)
	// FindByApplication lista las entrevistas de una postulación ordenadas por
	// fecha agendada ascendente
	FindByApplication(ctx context.Context, applicationID kernel.ApplicationID) ([]Interview, error)
	Create(ctx context.Context, i Interview) error
	Update(ctx context.Context, i Interview) error
	Delete(ctx context.Context, id kernel.InterviewID) error
}
