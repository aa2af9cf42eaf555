package interview_test

import (
	"strings"
	"testing"

	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/recruiting/interview"
)

// ── ParseStatus / ParseDecision ────────────────────────────────────────────

func TestParseStatus_ValidValues(t *testing.T) {
	valid := []string{"programada", "en_progreso", "completada", "cancelada"}
	for _, s := range valid {
		if got := interview.ParseStatus(s); string(got) != s {
			t.Errorf("ParseStatus(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseStatus_UnknownFallsBackToScheduled(t *testing.T) {
	for _, s := range []string{"", "PROGRAMADA", "done", "finalizada"} {
		if got := interview.ParseStatus(s); got != interview.StatusScheduled {
			t.Errorf("ParseStatus(%q) = %q, want %q", s, got, interview.StatusScheduled)
		}
	}
}

func TestParseDecision_ValidValues(t *testing.T) {
	valid := []string{"pendiente", "aprobado", "rechazado", "otra"}
	for _, s := range valid {
		if got := interview.ParseDecision(s); string(got) != s {
			t.Errorf("ParseDecision(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseDecision_UnknownFallsBackToPending(t *testing.T) {
	for _, s := range []string{"", "APROBADO", "maybe"} {
		if got := interview.ParseDecision(s); got != interview.DecisionPending {
			t.Errorf("ParseDecision(%q) = %q, want %q", s, got, interview.DecisionPending)
		}
	}
}

// ── Decision.IsFinal ───────────────────────────────────────────────────────

func TestDecisionIsFinal(t *testing.T) {
	cases := []struct {
		decision interview.Decision
		want     bool
	}{
		{interview.DecisionApproved, true},
		{interview.DecisionRejected, true},
		{interview.DecisionPending, false},
		{interview.DecisionOther, false},
	}
	for _, c := range cases {
		if got := c.decision.IsFinal(); got != c.want {
			t.Errorf("IsFinal(%s) = %v, want %v", c.decision, got, c.want)
		}
	}
}

// ── CanSchedule ────────────────────────────────────────────────────────────

func withDecision(d interview.Decision) interview.Interview {
	return interview.Interview{
		ID:       kernel.GenerateInterviewID(),
		Status:   interview.StatusCompleted,
		Decision: d,
	}
}

func TestCanSchedule_EmptySet(t *testing.T) {
	if !interview.CanSchedule(nil) {
		t.Error("CanSchedule(nil) should be true")
	}
}

func TestCanSchedule_NoFinalDecision(t *testing.T) {
	interviews := []interview.Interview{
		withDecision(interview.DecisionPending),
		withDecision(interview.DecisionOther),
	}
	if !interview.CanSchedule(interviews) {
		t.Error("CanSchedule should be true when no interview has a final decision")
	}
}

func TestCanSchedule_BlockedByApproval(t *testing.T) {
	interviews := []interview.Interview{
		withDecision(interview.DecisionPending),
		withDecision(interview.DecisionApproved),
	}
	if interview.CanSchedule(interviews) {
		t.Error("CanSchedule should be false once a decision is aprobado")
	}
}

func TestCanSchedule_BlockedByRejection(t *testing.T) {
	interviews := []interview.Interview{
		withDecision(interview.DecisionRejected),
	}
	if interview.CanSchedule(interviews) {
		t.Error("CanSchedule should be false once a decision is rechazado")
	}
}

func TestCanSchedule_OtraDoesNotBlock(t *testing.T) {
	interviews := []interview.Interview{
		withDecision(interview.DecisionOther),
		withDecision(interview.DecisionOther),
	}
	if !interview.CanSchedule(interviews) {
		t.Error("CanSchedule should be true when decisions are only otra")
	}
}

func TestCanSchedule_UnknownStoredDecisionDoesNotBlock(t *testing.T) {
	interviews := []interview.Interview{
		withDecision(interview.Decision("desconocida")),
	}
	if !interview.CanSchedule(interviews) {
		t.Error("CanSchedule should normalize unknown decisions to pendiente")
	}
}

// ── ValidateUpdate ─────────────────────────────────────────────────────────

func scheduled() *interview.Interview {
	return &interview.Interview{
		ID:       kernel.GenerateInterviewID(),
		Status:   interview.StatusScheduled,
		Decision: interview.DecisionPending,
	}
}

func TestValidateUpdate_FreeStatusTransitions(t *testing.T) {
	targets := []string{"programada", "en_progreso", "cancelada"}
	for _, target := range targets {
		err := interview.ValidateUpdate(scheduled(), interview.UpdateInterviewRequest{
			Status:   target,
			Decision: "pendiente",
		})
		if err != nil {
			t.Errorf("ValidateUpdate to %q returned unexpected error: %v", target, err)
		}
	}
}

func TestValidateUpdate_CompletedIsImmutable(t *testing.T) {
	completed := &interview.Interview{
		ID:       kernel.GenerateInterviewID(),
		Status:   interview.StatusCompleted,
		Decision: interview.DecisionApproved,
	}
	err := interview.ValidateUpdate(completed, interview.UpdateInterviewRequest{
		Status:   "en_progreso",
		Decision: "pendiente",
	})
	if err == nil {
		t.Fatal("ValidateUpdate on a completed interview should fail")
	}
	if !errx.IsType(err, errx.TypeBusiness) {
		t.Errorf("expected business error, got %v", err)
	}
}

func TestValidateUpdate_CompletingWithDecisionRequiresConfirm(t *testing.T) {
	for _, decision := range []string{"aprobado", "rechazado", "otra"} {
		err := interview.ValidateUpdate(scheduled(), interview.UpdateInterviewRequest{
			Status:   "completada",
			Decision: decision,
		})
		if err == nil {
			t.Errorf("completing with decision %q without confirm should fail", decision)
		}
	}
}

func TestValidateUpdate_CompletingWithConfirmSucceeds(t *testing.T) {
	err := interview.ValidateUpdate(scheduled(), interview.UpdateInterviewRequest{
		Status:   "completada",
		Decision: "aprobado",
		Confirm:  true,
	})
	if err != nil {
		t.Errorf("completing with confirm should succeed, got %v", err)
	}
}

func TestValidateUpdate_CompletingWhilePendingNeedsNoConfirm(t *testing.T) {
	err := interview.ValidateUpdate(scheduled(), interview.UpdateInterviewRequest{
		Status:   "completada",
		Decision: "pendiente",
	})
	if err != nil {
		t.Errorf("completing with decision pendiente should not require confirm, got %v", err)
	}
}

func TestValidateUpdate_FeedbackTooLong(t *testing.T) {
	long := strings.Repeat("a", interview.MaxFeedbackLength+1)
	err := interview.ValidateUpdate(scheduled(), interview.UpdateInterviewRequest{
		Status:          "en_progreso",
		Decision:        "pendiente",
		FeedbackSummary: long,
	})
	if err == nil {
		t.Error("feedback over the limit should fail validation")
	}

	err = interview.ValidateUpdate(scheduled(), interview.UpdateInterviewRequest{
		Status:    "en_progreso",
		Decision:  "pendiente",
		NextSteps: long,
	})
	if err == nil {
		t.Error("next steps over the limit should fail validation")
	}
}

func TestValidateUpdate_FeedbackLimitCountsCharacters(t *testing.T) {
	// 2000 caracteres acentuados ocupan más de 2000 bytes en UTF-8 y aun
	// así están dentro del límite
	accented := strings.Repeat("á", interview.MaxFeedbackLength)
	err := interview.ValidateUpdate(scheduled(), interview.UpdateInterviewRequest{
		Status:          "en_progreso",
		Decision:        "pendiente",
		FeedbackSummary: accented,
		NextSteps:       accented,
	})
	if err != nil {
		t.Errorf("accented feedback at exactly the limit should pass, got %v", err)
	}

	err = interview.ValidateUpdate(scheduled(), interview.UpdateInterviewRequest{
		Status:          "en_progreso",
		Decision:        "pendiente",
		FeedbackSummary: accented + "á",
	})
	if err == nil {
		t.Error("accented feedback one character over the limit should fail")
	}
}

// ── ApplyUpdate ────────────────────────────────────────────────────────────

func TestApplyUpdate_NormalizesEnums(t *testing.T) {
	i := scheduled()
	i.ApplyUpdate(interview.UpdateInterviewRequest{
		Status:          "no_es_un_estado",
		Decision:        "no_es_una_decision",
		FeedbackSummary: "buen perfil",
		NextSteps:       "coordinar referencia",
	})

	if i.Status != interview.StatusScheduled {
		t.Errorf("Status = %q, want normalized %q", i.Status, interview.StatusScheduled)
	}
	if i.Decision != interview.DecisionPending {
		t.Errorf("Decision = %q, want normalized %q", i.Decision, interview.DecisionPending)
	}
	if i.FeedbackSummary != "buen perfil" || i.NextSteps != "coordinar referencia" {
		t.Error("ApplyUpdate should persist feedback and next steps")
	}
}
