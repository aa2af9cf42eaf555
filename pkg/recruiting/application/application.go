package application

import (
	"net/http"
	"time"

	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/kernel"
)

// ============================================================================
// Application Entity
// ============================================================================

// Estados conocidos de una postulación. El campo status admite otros valores
// históricos; solo estos dos tienen significado para el pipeline.
const (
	StatusInReview = "en_revision"
	StatusHired    = "contratado"
)

// Etapas conocidas del pipeline (current_stage es texto libre)
const (
	StageScreening = "screening"
	StageHired     = "contratado"
)

// Application es la postulación de un candidato a una vacante.
// Un candidato puede acumular varias postulaciones en el tiempo; el pipeline
// siempre opera sobre la creada más recientemente.
type Application struct {
	ID          kernel.ApplicationID `db:"id" json:"id"`
	CandidateID kernel.CandidateID   `db:"candidate_id" json:"candidate_id"`
	// PositionID es opcional: una postulación puede existir sin vacante ligada
	PositionID *kernel.PositionID `db:"position_id" json:"position_id,omitempty"`
	Status     string             `db:"status" json:"status"`
	// CurrentStage es una etiqueta libre de etapa del pipeline
	CurrentStage      string    `db:"current_stage" json:"current_stage"`
	Priority          string    `db:"priority" json:"priority"`
	SalaryExpectation *string   `db:"salary_expectation" json:"salary_expectation,omitempty"`
	AvailabilityDate  *string   `db:"availability_date" json:"availability_date,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// NewApplication crea una postulación en la etapa inicial de revisión
func NewApplication(candidateID kernel.CandidateID, positionID *kernel.PositionID) Application {
	now := time.Now()
	return Application{
		ID:           kernel.GenerateApplicationID(),
		CandidateID:  candidateID,
		PositionID:   positionID,
		Status:       StatusInReview,
		CurrentStage: StageScreening,
		Priority:     "media",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// MarkHired marca la postulación como contratada
func (a *Application) MarkHired() {
	a.Status = StatusHired
	a.CurrentStage = StageHired
	a.UpdatedAt = time.Now()
}

// ============================================================================
// Service DTOs
// ============================================================================

// CreateApplicationRequest representa la petición para crear una postulación
type CreateApplicationRequest struct {
	CandidateID       string  `json:"candidate_id" validate:"required"`
	PositionID        *string `json:"position_id,omitempty"`
	Priority          string  `json:"priority"`
	SalaryExpectation *string `json:"salary_expectation,omitempty"`
	AvailabilityDate  *string `json:"availability_date,omitempty"`
}

// ============================================================================
// Error Registry - Errores específicos de Application
// ============================================================================

var ErrRegistry = errx.NewRegistry("APPLICATION")

var (
	CodeApplicationNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Postulación no encontrada")
	CodeNoActiveApplication = ErrRegistry.Register("NO_ACTIVE_APPLICATION", errx.TypeBusiness, http.StatusUnprocessableEntity, "El candidato no tiene una postulación activa")
)

func ErrApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotFound)
}

func ErrNoActiveApplication() *errx.Error {
	return ErrRegistry.New(CodeNoActiveApplication)
}
