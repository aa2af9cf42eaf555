package candidate

import (
	"net/http"
	"time"

	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/kernel"
)

// ============================================================================
// Candidate Entity
// ============================================================================

// Status define los posibles estados de un candidato en el pipeline
type Status string

const (
	StatusNew       Status = "nuevo"
	StatusInProcess Status = "en_proceso"
	StatusInterview Status = "entrevista"
	StatusOffer     Status = "oferta"
	StatusHired     Status = "contratado"
	StatusRejected  Status = "rechazado"
)

// ValidStatuses lista los estados reconocidos de un candidato
var ValidStatuses = []Status{
	StatusNew, StatusInProcess, StatusInterview,
	StatusOffer, StatusHired, StatusRejected,
}

// IsValidStatus verifica si el estado es un miembro reconocido
func IsValidStatus(s Status) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Candidate es una persona en evaluación para un puesto.
// El email se trata como único a efectos de contratación: es la llave con la
// que la transacción de contratación busca una cuenta existente.
type Candidate struct {
	ID              kernel.CandidateID `db:"id" json:"id"`
	FullName        string             `db:"full_name" json:"full_name"`
	Email           string             `db:"email" json:"email"`
	Phone           string             `db:"phone" json:"phone"`
	Source          string             `db:"source" json:"source"`
	Seniority       string             `db:"seniority" json:"seniority"`
	CurrentLocation string             `db:"current_location" json:"current_location"`
	// ResumeURL referencia el CV almacenado en el filesystem configurado
	ResumeURL *string   `db:"resume_url" json:"resume_url,omitempty"`
	Notes     string    `db:"notes" json:"notes"`
	Status    Status    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// IsHired verifica si el candidato ya fue contratado
func (c *Candidate) IsHired() bool {
	return c.Status == StatusHired
}

// MarkHired marca al candidato como contratado
func (c *Candidate) MarkHired() {
	c.Status = StatusHired
	c.UpdatedAt = time.Now()
}

// ============================================================================
// Service DTOs
// ============================================================================

// CreateCandidateRequest representa la petición para crear un candidato
type CreateCandidateRequest struct {
	FullName        string `json:"full_name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	Source          string `json:"source"`
	Seniority       string `json:"seniority"`
	CurrentLocation string `json:"current_location"`
	Notes           string `json:"notes"`
}

// UpdateCandidateRequest representa la petición para actualizar un candidato
type UpdateCandidateRequest struct {
	FullName        *string `json:"full_name,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Source          *string `json:"source,omitempty"`
	Seniority       *string `json:"seniority,omitempty"`
	CurrentLocation *string `json:"current_location,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Status          *Status `json:"status,omitempty"`
}

// ListFilters filtra el listado de candidatos
type ListFilters struct {
	Status *Status
	Search *string
}

// ============================================================================
// Error Registry - Errores específicos de Candidate
// ============================================================================

var ErrRegistry = errx.NewRegistry("CANDIDATE")

var (
	CodeCandidateNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Candidato no encontrado")
	CodeInvalidStatus     = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Estado de candidato no reconocido")
	CodeEmailAlreadyUsed  = ErrRegistry.Register("EMAIL_ALREADY_USED", errx.TypeConflict, http.StatusConflict, "Ya existe un candidato con este email")
)

func ErrCandidateNotFound() *errx.Error {
	return ErrRegistry.New(CodeCandidateNotFound)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrEmailAlreadyUsed() *errx.Error {
	return ErrRegistry.New(CodeEmailAlreadyUsed)
}
