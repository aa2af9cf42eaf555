package positionsrv

import (
	"context"
	"time"

	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/recruiting/position"
)

// PositionService proporciona operaciones de negocio para vacantes
type PositionService struct {
	positionRepo position.PositionRepository
}

// NewPositionService crea una nueva instancia del servicio de vacantes
func NewPositionService(positionRepo position.PositionRepository) *PositionService {
	return &PositionService{
		positionRepo: positionRepo,
	}
}

// CreatePosition crea una nueva vacante en estado abierta
func (s *PositionService) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (*position.Position, error) {
	now := time.Now()
	p := position.Position{
		ID:         kernel.GeneratePositionID(),
		Title:      req.Title,
		Department: req.Department,
		Location:   req.Location,
		Seniority:  req.Seniority,
		Status:     position.StatusOpen,
		WorkStart:  req.WorkStart,
		WorkEnd:    req.WorkEnd,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.positionRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	return &p, nil
}

// GetPosition obtiene una vacante por id
func (s *PositionService) GetPosition(ctx context.Context, id kernel.PositionID) (*position.Position, error) {
	return s.positionRepo.FindByID(ctx, id)
}

// ListPositions lista vacantes con filtros opcionales
func (s *PositionService) ListPositions(ctx context.Context, filters position.ListFilters, pagination kernel.PaginationOptions) (*kernel.Paginated[position.Position], error) {
	return s.positionRepo.FindAll(ctx, filters, pagination)
}

// UpdatePosition aplica los campos presentes de la petición sobre la vacante.
// Las transiciones de estado son libres, solo se valida la pertenencia al enum.
func (s *PositionService) UpdatePosition(ctx context.Context, id kernel.PositionID, req position.UpdatePositionRequest) (*position.Position, error) {
	p, err := s.positionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Department != nil {
		p.Department = *req.Department
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Seniority != nil {
		p.Seniority = *req.Seniority
	}
	if req.Status != nil {
		if !position.IsValidStatus(*req.Status) {
			return nil, position.ErrInvalidStatus().WithDetail("status", string(*req.Status))
		}
		p.Status = *req.Status
	}
	if req.WorkStart != nil {
		p.WorkStart = req.WorkStart
	}
	if req.WorkEnd != nil {
		p.WorkEnd = req.WorkEnd
	}
	p.UpdatedAt = time.Now()

	if err := s.positionRepo.Update(ctx, *p); err != nil {
		return nil, err
	}

	return p, nil
}

// DeletePosition elimina una vacante
func (s *PositionService) DeletePosition(ctx context.Context, id kernel.PositionID) error {
	return s.positionRepo.Delete(ctx, id)
}
