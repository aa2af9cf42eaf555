package hiring

import (
	"net/http"
	"strings"

	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/recruiting/application"
	"github.com/talenta-pe/talenta/pkg/recruiting/candidate"
	"github.com/talenta-pe/talenta/pkg/recruiting/interview"
)

// ============================================================================
// Hiring Gate
// ============================================================================

// Razones de inelegibilidad, en orden de precedencia. La primera condición
// que falla define la razón mostrada al usuario.
const (
	ReasonNoApplication     = "El candidato no tiene una postulación activa"
	ReasonAlreadyHired      = "El candidato ya fue contratado"
	ReasonNoApprovedOutcome = "Ninguna entrevista completada tiene resultado aprobatorio"
	ReasonCandidateRejected = "El candidato tiene una entrevista con decisión de rechazo"
)

// Heurística histórica: entrevistas registradas antes del uso consistente del
// campo decision marcaban el resultado en el texto libre.
const (
	positiveFeedbackMark  = "aprob"
	positiveNextStepsMark = "contratar"
)

// Evaluation es el resultado del gate de contratación sobre el conjunto de
// entrevistas de la postulación más reciente del candidato
type Evaluation struct {
	HasApprovedDecision           bool   `json:"has_approved_decision"`
	HasPositiveFeedback           bool   `json:"has_positive_feedback"`
	HasCompletedPositiveInterview bool   `json:"has_completed_positive_interview"`
	HasRejectedDecision           bool   `json:"has_rejected_decision"`
	Eligible                      bool   `json:"eligible"`
	// Reason queda vacía cuando el candidato es elegible
	Reason string `json:"reason,omitempty"`
}

// HasApprovedDecision indica si alguna entrevista completada registró la
// decisión aprobado
func HasApprovedDecision(interviews []interview.Interview) bool {
	for _, i := range interviews {
		if i.IsCompleted() && interview.ParseDecision(string(i.Decision)) == interview.DecisionApproved {
			return true
		}
	}
	return false
}

// HasPositiveFeedback indica si alguna entrevista completada sugiere un
// resultado positivo en su texto libre. Es un respaldo deliberadamente laxo
// para entrevistas anteriores al uso del campo decision.
func HasPositiveFeedback(interviews []interview.Interview) bool {
	for _, i := range interviews {
		if !i.IsCompleted() {
			continue
		}
		if strings.Contains(strings.ToLower(i.FeedbackSummary), positiveFeedbackMark) {
			return true
		}
		if strings.Contains(strings.ToLower(i.NextSteps), positiveNextStepsMark) {
			return true
		}
	}
	return false
}

// HasRejectedDecision indica si alguna entrevista registró la decisión
// rechazado, sin importar su estado
func HasRejectedDecision(interviews []interview.Interview) bool {
	for _, i := range interviews {
		if interview.ParseDecision(string(i.Decision)) == interview.DecisionRejected {
			return true
		}
	}
	return false
}

// Evaluate calcula la elegibilidad de contratación del candidato dada su
// postulación más reciente (nil si no tiene) y las entrevistas de esta.
// Las condiciones se evalúan en orden fijo y la primera que falla manda.
func Evaluate(cand *candidate.Candidate, latestApp *application.Application, interviews []interview.Interview) Evaluation {
	eval := Evaluation{
		HasApprovedDecision: HasApprovedDecision(interviews),
		HasPositiveFeedback: HasPositiveFeedback(interviews),
		HasRejectedDecision: HasRejectedDecision(interviews),
	}
	eval.HasCompletedPositiveInterview = eval.HasApprovedDecision || eval.HasPositiveFeedback

	switch {
	case latestApp == nil:
		eval.Reason = ReasonNoApplication
	case cand.IsHired():
		eval.Reason = ReasonAlreadyHired
	case !eval.HasCompletedPositiveInterview:
		eval.Reason = ReasonNoApprovedOutcome
	case eval.HasRejectedDecision:
		eval.Reason = ReasonCandidateRejected
	default:
		eval.Eligible = true
	}

	return eval
}

// ============================================================================
// Hire Result
// ============================================================================

// Result es el desenlace de la transacción de contratación.
// TemporaryPassword solo viene cuando se aprovisionó una cuenta nueva; se
// muestra una única vez y no se persiste en forma recuperable.
type Result struct {
	CandidateID       kernel.CandidateID `json:"candidate_id"`
	UserID            kernel.UserID      `json:"user_id"`
	AccountCreated    bool               `json:"account_created"`
	TemporaryPassword *string            `json:"temporary_password,omitempty"`
}

// ============================================================================
// Error Registry - Errores específicos de Hiring
// ============================================================================

var ErrRegistry = errx.NewRegistry("HIRING")

var (
	CodeNotEligible = ErrRegistry.Register("NOT_ELIGIBLE", errx.TypeBusiness, http.StatusUnprocessableEntity, "El candidato no es elegible para contratación")
	CodeStepFailed  = ErrRegistry.Register("STEP_FAILED", errx.TypeInternal, http.StatusInternalServerError, "La contratación falló a mitad de la secuencia")
)

func ErrNotEligible() *errx.Error {
	return ErrRegistry.New(CodeNotEligible)
}

func ErrStepFailed() *errx.Error {
	return ErrRegistry.New(CodeStepFailed)
}
