package position

import (
	"net/http"
	"time"

	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/kernel"
)

// ============================================================================
// Position Entity
// ============================================================================

// Status define los posibles estados de una vacante.
// Las transiciones son libres: una vacante puede moverse a cualquier estado.
type Status string

const (
	StatusOpen       Status = "abierta"
	StatusInProgress Status = "en_proceso"
	StatusPaused     Status = "pausada"
	StatusClosed     Status = "cerrada"
)

// ValidStatuses lista los estados reconocidos de una vacante
var ValidStatuses = []Status{StatusOpen, StatusInProgress, StatusPaused, StatusClosed}

// IsValidStatus verifica si el estado es un miembro reconocido
func IsValidStatus(s Status) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Position es una vacante en proceso de reclutamiento
type Position struct {
	ID         kernel.PositionID `db:"id" json:"id"`
	Title      string            `db:"title" json:"title"`
	Department string            `db:"department" json:"department"`
	Location   string            `db:"location" json:"location"`
	Seniority  string            `db:"seniority" json:"seniority"`
	Status     Status            `db:"status" json:"status"`
	// WorkStart y WorkEnd definen la ventana diaria de trabajo (HH:MM),
	// opcional para vacantes sin horario fijo
	WorkStart *string   `db:"work_start" json:"work_start,omitempty"`
	WorkEnd   *string   `db:"work_end" json:"work_end,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// IsOpen verifica si la vacante acepta candidatos
func (p *Position) IsOpen() bool {
	return p.Status == StatusOpen || p.Status == StatusInProgress
}

// ============================================================================
// Service DTOs
// ============================================================================

// CreatePositionRequest representa la petición para crear una vacante
type CreatePositionRequest struct {
	Title      string  `json:"title" validate:"required,min=2"`
	Department string  `json:"department" validate:"required"`
	Location   string  `json:"location"`
	Seniority  string  `json:"seniority"`
	WorkStart  *string `json:"work_start,omitempty"`
	WorkEnd    *string `json:"work_end,omitempty"`
}

// UpdatePositionRequest representa la petición para actualizar una vacante
type UpdatePositionRequest struct {
	Title      *string `json:"title,omitempty"`
	Department *string `json:"department,omitempty"`
	Location   *string `json:"location,omitempty"`
	Seniority  *string `json:"seniority,omitempty"`
	Status     *Status `json:"status,omitempty"`
	WorkStart  *string `json:"work_start,omitempty"`
	WorkEnd    *string `json:"work_end,omitempty"`
}

// ListFilters filtra el listado de vacantes
type ListFilters struct {
	Status     *Status
	Department *string
}

// ============================================================================
// Error Registry - Errores específicos de Position
// ============================================================================

var ErrRegistry = errx.NewRegistry("POSITION")

var (
	CodePositionNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Vacante no encontrada")
	CodeInvalidStatus    = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Estado de vacante no reconocido")
)

func ErrPositionNotFound() *errx.Error {
	return ErrRegistry.New(CodePositionNotFound)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}
