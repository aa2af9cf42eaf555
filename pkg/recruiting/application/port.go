package application

import (
	"context"

	"github.com/talenta-pe/talenta/pkg/kernel"
)

// ApplicationRepository define el contrato para la persistencia de postulaciones
type ApplicationRepository interface {
	FindByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)
	// FindLatestByCandidate retorna la postulación creada más recientemente del
	// candidato, o ErrApplicationNotFound si no tiene ninguna
	FindLatestByCandidate(ctx context.Context, candidateID kernel.CandidateID) (*Application, error)
	FindByCandidate(ctx context.Context, candidateID kernel.CandidateID) ([]Application, error)
	Create(ctx context.Context, a Application) error
	Update(ctx context.Context, a Application) error
}
