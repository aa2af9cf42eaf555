package interview

import (
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/kernel"
)

// ============================================================================
// Interview Entity
// ============================================================================

// Status define el ciclo de vida de una entrevista.
// programada es el estado inicial; completada y cancelada son terminales.
type Status string

const (
	StatusScheduled  Status = "programada"
	StatusInProgress Status = "en_progreso"
	StatusCompleted  Status = "completada"
	StatusCancelled  Status = "cancelada"
)

// Decision define el resultado registrado en una entrevista. Es una dimensión
// ortogonal al estado: pendiente es el valor inicial; otra señala que hace
// falta otra ronda y no bloquea agendar más entrevistas.
type Decision string

const (
	DecisionPending  Decision = "pendiente"
	DecisionApproved Decision = "aprobado"
	DecisionRejected Decision = "rechazado"
	DecisionOther    Decision = "otra"
)

// Type clasifica la entrevista dentro del proceso
type Type string

const (
	TypeScreening Type = "screening"
	TypeTechnical Type = "tecnica"
	TypeCultural  Type = "cultural"
	TypeOffer     Type = "oferta"
)

// MaxFeedbackLength limita feedback_summary y next_steps
const MaxFeedbackLength = 2000

// ParseStatus normaliza un estado almacenado. Valores no reconocidos caen al
// estado inicial programada, para tolerar ediciones externas de los datos.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return Status(s)
	default:
		return StatusScheduled
	}
}

// ParseDecision normaliza una decisión almacenada. Valores no reconocidos caen
// al valor inicial pendiente.
func ParseDecision(s string) Decision {
	switch Decision(s) {
	case DecisionPending, DecisionApproved, DecisionRejected, DecisionOther:
		return Decision(s)
	default:
		return DecisionPending
	}
}

// IsFinal indica si la decisión cierra la postulación.
// otra no es final: pide otra ronda de entrevistas.
func (d Decision) IsFinal() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// Interview es una reunión agendada o completada de una postulación
type Interview struct {
	ID              kernel.InterviewID   `db:"id" json:"id"`
	ApplicationID   kernel.ApplicationID `db:"application_id" json:"application_id"`
	InterviewType   Type                 `db:"interview_type" json:"interview_type"`
	Status          Status               `db:"status" json:"status"`
	ScheduledAt     time.Time            `db:"scheduled_at" json:"scheduled_at"`
	DurationMinutes int                  `db:"duration_minutes" json:"duration_minutes"`
	Location        string               `db:"location" json:"location"`
	MeetingURL      string               `db:"meeting_url" json:"meeting_url"`
	FeedbackSummary string               `db:"feedback_summary" json:"feedback_summary"`
	NextSteps       string               `db:"next_steps" json:"next_steps"`
	Decision        Decision             `db:"decision" json:"decision"`
	CreatedAt       time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time            `db:"updated_at" json:"updated_at"`
}

// IsCompleted verifica si la entrevista ya fue completada
func (i *Interview) IsCompleted() bool {
	return ParseStatus(string(i.Status)) == StatusCompleted
}

// ============================================================================
// Lifecycle rules
// ============================================================================

// HasFinalDecision indica si alguna entrevista del conjunto ya registró una
// decisión final (aprobado o rechazado)
func HasFinalDecision(interviews []Interview) bool {
	for _, i := range interviews {
		if ParseDecision(string(i.Decision)).IsFinal() {
			return true
		}
	}
	return false
}

// CanSchedule responde si puede agendarse una nueva entrevista dado el
// conjunto existente de la postulación: se bloquea en cuanto alguna registró
// una decisión final
func CanSchedule(interviews []Interview) bool {
	return !HasFinalDecision(interviews)
}

// ValidateUpdate aplica las reglas del ciclo de vida sobre una actualización:
//   - una entrevista cuyo estado almacenado es completada no se vuelve a editar
//   - feedback y próximos pasos respetan el largo máximo
//   - completar con decisión final exige la confirmación explícita del actor
//
// Las transiciones de estado en sí son libres: cualquier estado puede fijarse
// desde cualquier otro.
func ValidateUpdate(current *Interview, req UpdateInterviewRequest) error {
	if current.IsCompleted() {
		return ErrInterviewCompleted().WithDetail("interview_id", current.ID.String())
	}

	// El límite se mide en caracteres, no en bytes: el feedback en español
	// lleva tildes multibyte en UTF-8
	if utf8.RuneCountInString(req.FeedbackSummary) > MaxFeedbackLength {
		return ErrFeedbackTooLong().WithDetail("field", "feedback_summary")
	}
	if utf8.RuneCountInString(req.NextSteps) > MaxFeedbackLength {
		return ErrFeedbackTooLong().WithDetail("field", "next_steps")
	}

	status := ParseStatus(req.Status)
	decision := ParseDecision(req.Decision)
	if status == StatusCompleted && decision != DecisionPending && !req.Confirm {
		return ErrConfirmationRequired().
			WithDetail("status", string(status)).
			WithDetail("decision", string(decision))
	}

	return nil
}

// ApplyUpdate escribe los campos editables normalizados sobre la entrevista.
// Debe validarse antes con ValidateUpdate.
func (i *Interview) ApplyUpdate(req UpdateInterviewRequest) {
	i.Status = ParseStatus(req.Status)
	i.Decision = ParseDecision(req.Decision)
	i.FeedbackSummary = req.FeedbackSummary
	i.NextSteps = req.NextSteps
	i.UpdatedAt = time.Now()
}

// ============================================================================
// Service DTOs
// ============================================================================

// ScheduleInterviewRequest representa la petición para agendar una entrevista
type ScheduleInterviewRequest struct {
	InterviewType   string    `json:"interview_type" validate:"required"`
	ScheduledAt     time.Time `json:"scheduled_at" validate:"required"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location"`
	MeetingURL      string    `json:"meeting_url"`
	// Decision es opcional; por defecto la entrevista nace pendiente
	Decision string `json:"decision,omitempty"`
}

// UpdateInterviewRequest representa la petición para actualizar una entrevista.
// Confirm debe venir en true cuando la actualización completa la entrevista
// con una decisión final.
type UpdateInterviewRequest struct {
	Status          string `json:"status" validate:"required"`
	Decision        string `json:"decision" validate:"required"`
	FeedbackSummary string `json:"feedback_summary"`
	NextSteps       string `json:"next_steps"`
	Confirm         bool   `json:"confirm"`
}

// ============================================================================
// Error Registry - Errores específicos de Interview
// ============================================================================

var ErrRegistry = errx.NewRegistry("INTERVIEW")

var (
	CodeInterviewNotFound    = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Entrevista no encontrada")
	CodeInterviewCompleted   = ErrRegistry.Register("COMPLETED", errx.TypeBusiness, http.StatusUnprocessableEntity, "Una entrevista completada no puede modificarse")
	CodeConfirmationRequired = ErrRegistry.Register("CONFIRMATION_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Completar con decisión final requiere confirmación explícita")
	CodeFeedbackTooLong      = ErrRegistry.Register("FEEDBACK_TOO_LONG", errx.TypeValidation, http.StatusBadRequest, "El texto excede el largo máximo permitido")
	CodeFinalDecisionReached = ErrRegistry.Register("FINAL_DECISION_REACHED", errx.TypeBusiness, http.StatusUnprocessableEntity, "La postulación ya tiene una decisión final; no pueden agendarse más entrevistas")
)

func ErrInterviewNotFound() *errx.Error {
	return ErrRegistry.New(CodeInterviewNotFound)
}

func ErrInterviewCompleted() *errx.Error {
	return ErrRegistry.New(CodeInterviewCompleted)
}

func ErrConfirmationRequired() *errx.Error {
	return ErrRegistry.New(CodeConfirmationRequired)
}

func ErrFeedbackTooLong() *errx.Error {
	return ErrRegistry.New(CodeFeedbackTooLong)
}

func ErrFinalDecisionReached() *errx.Error {
	return ErrRegistry.New(CodeFinalDecisionReached)
}
