package hiring_test

import (
	"testing"

	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/recruiting/application"
	"github.com/talenta-pe/talenta/pkg/recruiting/candidate"
	"github.com/talenta-pe/talenta/pkg/recruiting/hiring"
	"github.com/talenta-pe/talenta/pkg/recruiting/interview"
)

func completed(decision interview.Decision, feedback, nextSteps string) interview.Interview {
	return interview.Interview{
		ID:              kernel.GenerateInterviewID(),
		Status:          interview.StatusCompleted,
		Decision:        decision,
		FeedbackSummary: feedback,
		NextSteps:       nextSteps,
	}
}

func pendingCandidate() *candidate.Candidate {
	return &candidate.Candidate{
		ID:     kernel.GenerateCandidateID(),
		Status: candidate.StatusNew,
	}
}

func someApplication() *application.Application {
	app := application.NewApplication(kernel.GenerateCandidateID(), nil)
	return &app
}

// ── Gate booleans ──────────────────────────────────────────────────────────

func TestHasApprovedDecision(t *testing.T) {
	cases := []struct {
		name       string
		interviews []interview.Interview
		want       bool
	}{
		{"empty set", nil, false},
		{"completed approved", []interview.Interview{completed(interview.DecisionApproved, "", "")}, true},
		{"approved but not completed", []interview.Interview{{
			Status:   interview.StatusInProgress,
			Decision: interview.DecisionApproved,
		}}, false},
		{"completed pending", []interview.Interview{completed(interview.DecisionPending, "", "")}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := hiring.HasApprovedDecision(c.interviews); got != c.want {
				t.Errorf("HasApprovedDecision = %v, want %v", got, c.want)
			}
		})
	}
}

func TestHasPositiveFeedback(t *testing.T) {
	cases := []struct {
		name       string
		interviews []interview.Interview
		want       bool
	}{
		{"aprob in feedback", []interview.Interview{completed(interview.DecisionPending, "Candidato APROBADO por el panel", "")}, true},
		{"contratar in next steps", []interview.Interview{completed(interview.DecisionPending, "", "Recomendamos CONTRATAR de inmediato")}, true},
		{"contratar only in feedback does not count", []interview.Interview{completed(interview.DecisionPending, "habría que contratar", "")}, false},
		{"positive text on non-completed interview", []interview.Interview{{
			Status:          interview.StatusInProgress,
			FeedbackSummary: "aprobado",
		}}, false},
		{"neutral text", []interview.Interview{completed(interview.DecisionPending, "buen perfil técnico", "otra ronda")}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := hiring.HasPositiveFeedback(c.interviews); got != c.want {
				t.Errorf("HasPositiveFeedback = %v, want %v", got, c.want)
			}
		})
	}
}

func TestHasRejectedDecision_IgnoresStatus(t *testing.T) {
	interviews := []interview.Interview{{
		Status:   interview.StatusScheduled,
		Decision: interview.DecisionRejected,
	}}
	if !hiring.HasRejectedDecision(interviews) {
		t.Error("a rechazado decision should count regardless of interview status")
	}
}

// ── Evaluate: eligibility and reason precedence ────────────────────────────

func TestEvaluate_Eligible(t *testing.T) {
	eval := hiring.Evaluate(pendingCandidate(), someApplication(), []interview.Interview{
		completed(interview.DecisionApproved, "", ""),
	})

	if !eval.Eligible {
		t.Fatalf("expected eligible, got reason %q", eval.Reason)
	}
	if eval.Reason != "" {
		t.Errorf("eligible evaluation should carry no reason, got %q", eval.Reason)
	}
}

func TestEvaluate_NoApplication(t *testing.T) {
	eval := hiring.Evaluate(pendingCandidate(), nil, nil)

	if eval.Eligible {
		t.Fatal("candidate without application must not be eligible")
	}
	if eval.Reason != hiring.ReasonNoApplication {
		t.Errorf("Reason = %q, want %q", eval.Reason, hiring.ReasonNoApplication)
	}
}

func TestEvaluate_AlreadyHired(t *testing.T) {
	hired := pendingCandidate()
	hired.Status = candidate.StatusHired

	eval := hiring.Evaluate(hired, someApplication(), []interview.Interview{
		completed(interview.DecisionApproved, "", ""),
	})

	if eval.Eligible {
		t.Fatal("hired candidate must not be eligible again")
	}
	if eval.Reason != hiring.ReasonAlreadyHired {
		t.Errorf("Reason = %q, want %q", eval.Reason, hiring.ReasonAlreadyHired)
	}
}

func TestEvaluate_NoApprovedOutcome(t *testing.T) {
	eval := hiring.Evaluate(pendingCandidate(), someApplication(), []interview.Interview{
		completed(interview.DecisionPending, "buen perfil", ""),
	})

	if eval.Eligible {
		t.Fatal("candidate without positive outcome must not be eligible")
	}
	if eval.Reason != hiring.ReasonNoApprovedOutcome {
		t.Errorf("Reason = %q, want %q", eval.Reason, hiring.ReasonNoApprovedOutcome)
	}
}

func TestEvaluate_RejectionOverridesApproval(t *testing.T) {
	eval := hiring.Evaluate(pendingCandidate(), someApplication(), []interview.Interview{
		completed(interview.DecisionApproved, "", ""),
		completed(interview.DecisionRejected, "", ""),
	})

	if eval.Eligible {
		t.Fatal("a rechazado decision must veto an earlier approval")
	}
	if eval.Reason != hiring.ReasonCandidateRejected {
		t.Errorf("Reason = %q, want %q", eval.Reason, hiring.ReasonCandidateRejected)
	}
}

func TestEvaluate_PositiveFeedbackAloneQualifies(t *testing.T) {
	eval := hiring.Evaluate(pendingCandidate(), someApplication(), []interview.Interview{
		completed(interview.DecisionPending, "panel aprobó por unanimidad", ""),
	})

	if !eval.Eligible {
		t.Fatalf("legacy positive feedback should qualify, got reason %q", eval.Reason)
	}
	if eval.HasApprovedDecision {
		t.Error("HasApprovedDecision should be false for feedback-only approval")
	}
	if !eval.HasPositiveFeedback {
		t.Error("HasPositiveFeedback should be true")
	}
}

func TestEvaluate_ReasonPrecedence_NoApplicationFirst(t *testing.T) {
	// Sin postulación, la razón es esa incluso si el candidato ya está contratado
	hired := pendingCandidate()
	hired.Status = candidate.StatusHired

	eval := hiring.Evaluate(hired, nil, nil)
	if eval.Reason != hiring.ReasonNoApplication {
		t.Errorf("Reason = %q, want %q (first failing condition wins)", eval.Reason, hiring.ReasonNoApplication)
	}
}
