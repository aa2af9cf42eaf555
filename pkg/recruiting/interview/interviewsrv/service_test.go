package interviewsrv_test

import (
	"context"
	"testing"
	"time"

	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/recruiting/application"
	"github.com/talenta-pe/talenta/pkg/recruiting/candidate"
	"github.com/talenta-pe/talenta/pkg/recruiting/interview"
	"github.com/talenta-pe/talenta/pkg/recruiting/interview/interviewsrv"
)

// ── In-memory fakes ────────────────────────────────────────────────────────

type fakeCandidateRepo struct {
	candidates map[kernel.CandidateID]candidate.Candidate
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: make(map[kernel.CandidateID]candidate.Candidate)}
}

func (r *fakeCandidateRepo) FindByID(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	c, ok := r.candidates[id]
	if !ok {
		return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", id.String())
	}
	return &c, nil
}

func (r *fakeCandidateRepo) FindByEmail(ctx context.Context, email string) (*candidate.Candidate, error) {
	for _, c := range r.candidates {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, candidate.ErrCandidateNotFound().WithDetail("email", email)
}

func (r *fakeCandidateRepo) FindAll(ctx context.Context, filters candidate.ListFilters, pagination kernel.PaginationOptions) (*kernel.Paginated[candidate.Candidate], error) {
	return &kernel.Paginated[candidate.Candidate]{}, nil
}

func (r *fakeCandidateRepo) Create(ctx context.Context, c candidate.Candidate) error {
	r.candidates[c.ID] = c
	return nil
}

func (r *fakeCandidateRepo) Update(ctx context.Context, c candidate.Candidate) error {
	if _, ok := r.candidates[c.ID]; !ok {
		return candidate.ErrCandidateNotFound().WithDetail("candidate_id", c.ID.String())
	}
	r.candidates[c.ID] = c
	return nil
}

type fakeApplicationRepo struct {
	applications map[kernel.ApplicationID]application.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[kernel.ApplicationID]application.Application)}
}

func (r *fakeApplicationRepo) FindByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	a, ok := r.applications[id]
	if !ok {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}
	return &a, nil
}

func (r *fakeApplicationRepo) FindLatestByCandidate(ctx context.Context, candidateID kernel.CandidateID) (*application.Application, error) {
	var latest *application.Application
	for _, a := range r.applications {
		if a.CandidateID != candidateID {
			continue
		}
		a := a
		if latest == nil || a.CreatedAt.After(latest.CreatedAt) {
			latest = &a
		}
	}
	if latest == nil {
		return nil, application.ErrApplicationNotFound().WithDetail("candidate_id", candidateID.String())
	}
	return latest, nil
}

func (r *fakeApplicationRepo) FindByCandidate(ctx context.Context, candidateID kernel.CandidateID) ([]application.Application, error) {
	var apps []application.Application
	for _, a := range r.applications {
		if a.CandidateID == candidateID {
			apps = append(apps, a)
		}
	}
	return apps, nil
}

func (r *fakeApplicationRepo) Create(ctx context.Context, a application.Application) error {
	r.applications[a.ID] = a
	return nil
}

func (r *fakeApplicationRepo) Update(ctx context.Context, a application.Application) error {
	if _, ok := r.applications[a.ID]; !ok {
		return application.ErrApplicationNotFound().WithDetail("application_id", a.ID.String())
	}
	r.applications[a.ID] = a
	return nil
}

type fakeInterviewRepo struct {
	interviews map[kernel.InterviewID]interview.Interview
	creates    int
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{interviews: make(map[kernel.InterviewID]interview.Interview)}
}

func (r *fakeInterviewRepo) FindByID(ctx context.Context, id kernel.InterviewID) (*interview.Interview, error) {
	i, ok := r.interviews[id]
	if !ok {
		return nil, interview.ErrInterviewNotFound().WithDetail("interview_id", id.String())
	}
	return &i, nil
}

func (r *fakeInterviewRepo) FindByApplication(ctx context.Context, applicationID kernel.ApplicationID) ([]interview.Interview, error) {
	var result []interview.Interview
	for _, i := range r.interviews {
		if i.ApplicationID == applicationID {
			result = append(result, i)
		}
	}
	return result, nil
}

func (r *fakeInterviewRepo) Create(ctx context.Context, i interview.Interview) error {
	r.creates++
	r.interviews[i.ID] = i
	return nil
}

func (r *fakeInterviewRepo) Update(ctx context.Context, i interview.Interview) error {
	if _, ok := r.interviews[i.ID]; !ok {
		return interview.ErrInterviewNotFound().WithDetail("interview_id", i.ID.String())
	}
	r.interviews[i.ID] = i
	return nil
}

func (r *fakeInterviewRepo) Delete(ctx context.Context, id kernel.InterviewID) error {
	if _, ok := r.interviews[id]; !ok {
		return interview.ErrInterviewNotFound().WithDetail("interview_id", id.String())
	}
	delete(r.interviews, id)
	return nil
}

type fakeDetailCache struct {
	invalidations int
}

func (c *fakeDetailCache) Get(ctx context.Context, id kernel.CandidateID) (*candidate.Detail, error) {
	return nil, nil
}

func (c *fakeDetailCache) Set(ctx context.Context, detail *candidate.Detail, ttl time.Duration) error {
	return nil
}

func (c *fakeDetailCache) Invalidate(ctx context.Context, id kernel.CandidateID) error {
	c.invalidations++
	return nil
}

// ── Fixture ────────────────────────────────────────────────────────────────

type fixture struct {
	service      *interviewsrv.InterviewService
	candidates   *fakeCandidateRepo
	applications *fakeApplicationRepo
	interviews   *fakeInterviewRepo
	cache        *fakeDetailCache
	candidateID  kernel.CandidateID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	candidates := newFakeCandidateRepo()
	applications := newFakeApplicationRepo()
	interviews := newFakeInterviewRepo()
	cache := &fakeDetailCache{}

	candidateID := kernel.GenerateCandidateID()
	candidates.candidates[candidateID] = candidate.Candidate{
		ID:       candidateID,
		FullName: "Lucía Campos",
		Email:    "lucia.campos@example.com",
		Status:   candidate.StatusNew,
	}

	return &fixture{
		service:      interviewsrv.NewInterviewService(interviews, applications, candidates, cache, nil, nil),
		candidates:   candidates,
		applications: applications,
		interviews:   interviews,
		cache:        cache,
		candidateID:  candidateID,
	}
}

func (f *fixture) addApplication(t *testing.T) application.Application {
	t.Helper()
	app := application.NewApplication(f.candidateID, nil)
	if err := f.applications.Create(context.Background(), app); err != nil {
		t.Fatalf("seeding application: %v", err)
	}
	return app
}

func (f *fixture) addInterview(t *testing.T, appID kernel.ApplicationID, status interview.Status, decision interview.Decision) interview.Interview {
	t.Helper()
	i := interview.Interview{
		ID:            kernel.GenerateInterviewID(),
		ApplicationID: appID,
		InterviewType: interview.TypeScreening,
		Status:        status,
		Decision:      decision,
	}
	f.interviews.interviews[i.ID] = i
	return i
}

func scheduleRequest() interview.ScheduleInterviewRequest {
	return interview.ScheduleInterviewRequest{
		InterviewType: "tecnica",
		ScheduledAt:   time.Now().Add(48 * time.Hour),
	}
}

// ── ScheduleInterview ──────────────────────────────────────────────────────

func TestScheduleInterview_CreatesImplicitApplication(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.ScheduleInterview(context.Background(), f.candidateID, scheduleRequest())
	if err != nil {
		t.Fatalf("ScheduleInterview returned error: %v", err)
	}

	app, err := f.applications.FindLatestByCandidate(context.Background(), f.candidateID)
	if err != nil {
		t.Fatalf("expected an implicit application, got %v", err)
	}
	if app.Status != application.StatusInReview {
		t.Errorf("implicit application status = %q, want %q", app.Status, application.StatusInReview)
	}
	if app.CurrentStage != application.StageScreening {
		t.Errorf("implicit application stage = %q, want %q", app.CurrentStage, application.StageScreening)
	}
	if created.ApplicationID != app.ID {
		t.Error("interview should be linked to the implicit application")
	}
}

func TestScheduleInterview_ForcesInitialState(t *testing.T) {
	f := newFixture(t)
	f.addApplication(t)

	req := scheduleRequest()
	req.Decision = "aprobado" // explicit decision is kept

	created, err := f.service.ScheduleInterview(context.Background(), f.candidateID, req)
	if err != nil {
		t.Fatalf("ScheduleInterview returned error: %v", err)
	}
	if created.Status != interview.StatusScheduled {
		t.Errorf("Status = %q, want forced %q", created.Status, interview.StatusScheduled)
	}
	if created.Decision != interview.DecisionApproved {
		t.Errorf("Decision = %q, want explicit %q", created.Decision, interview.DecisionApproved)
	}
}

func TestScheduleInterview_DecisionDefaultsToPending(t *testing.T) {
	f := newFixture(t)
	f.addApplication(t)

	created, err := f.service.ScheduleInterview(context.Background(), f.candidateID, scheduleRequest())
	if err != nil {
		t.Fatalf("ScheduleInterview returned error: %v", err)
	}
	if created.Decision != interview.DecisionPending {
		t.Errorf("Decision = %q, want default %q", created.Decision, interview.DecisionPending)
	}
}

func TestScheduleInterview_BlockedByFinalDecision(t *testing.T) {
	f := newFixture(t)
	app := f.addApplication(t)
	f.addInterview(t, app.ID, interview.StatusCompleted, interview.DecisionRejected)

	creates := f.interviews.creates
	_, err := f.service.ScheduleInterview(context.Background(), f.candidateID, scheduleRequest())
	if err == nil {
		t.Fatal("scheduling should be blocked once a decision is final")
	}
	if f.interviews.creates != creates {
		t.Error("no insert should be attempted when the gate blocks scheduling")
	}
}

func TestScheduleInterview_OtraDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	app := f.addApplication(t)
	f.addInterview(t, app.ID, interview.StatusCompleted, interview.DecisionOther)

	if _, err := f.service.ScheduleInterview(context.Background(), f.candidateID, scheduleRequest()); err != nil {
		t.Fatalf("decision otra should not block scheduling, got %v", err)
	}
}

func TestScheduleInterview_MovesCandidateToInterviewStage(t *testing.T) {
	f := newFixture(t)
	f.addApplication(t)

	if _, err := f.service.ScheduleInterview(context.Background(), f.candidateID, scheduleRequest()); err != nil {
		t.Fatalf("ScheduleInterview returned error: %v", err)
	}

	c, _ := f.candidates.FindByID(context.Background(), f.candidateID)
	if c.Status != candidate.StatusInterview {
		t.Errorf("candidate status = %q, want %q", c.Status, candidate.StatusInterview)
	}
}

// ── UpdateInterview ────────────────────────────────────────────────────────

func TestUpdateInterview_CompletedIsRejected(t *testing.T) {
	f := newFixture(t)
	app := f.addApplication(t)
	i := f.addInterview(t, app.ID, interview.StatusCompleted, interview.DecisionApproved)

	_, err := f.service.UpdateInterview(context.Background(), i.ID, interview.UpdateInterviewRequest{
		Status:   "en_progreso",
		Decision: "pendiente",
	})
	if err == nil {
		t.Fatal("updating a completed interview should fail")
	}
}

func TestUpdateInterview_CompleteWithConfirmPersists(t *testing.T) {
	f := newFixture(t)
	app := f.addApplication(t)
	i := f.addInterview(t, app.ID, interview.StatusScheduled, interview.DecisionPending)

	updated, err := f.service.UpdateInterview(context.Background(), i.ID, interview.UpdateInterviewRequest{
		Status:          "completada",
		Decision:        "aprobado",
		FeedbackSummary: "sólido en diseño de sistemas",
		NextSteps:       "pasar a oferta",
		Confirm:         true,
	})
	if err != nil {
		t.Fatalf("UpdateInterview returned error: %v", err)
	}
	if updated.Status != interview.StatusCompleted || updated.Decision != interview.DecisionApproved {
		t.Errorf("persisted state = (%s, %s), want (completada, aprobado)", updated.Status, updated.Decision)
	}

	stored, _ := f.interviews.FindByID(context.Background(), i.ID)
	if stored.FeedbackSummary != "sólido en diseño de sistemas" {
		t.Error("feedback should be persisted on the interview row")
	}
}

func TestUpdateInterview_CompleteWithoutConfirmFails(t *testing.T) {
	f := newFixture(t)
	app := f.addApplication(t)
	i := f.addInterview(t, app.ID, interview.StatusScheduled, interview.DecisionPending)

	_, err := f.service.UpdateInterview(context.Background(), i.ID, interview.UpdateInterviewRequest{
		Status:   "completada",
		Decision: "rechazado",
	})
	if err == nil {
		t.Fatal("completing with a decision and no confirmation should fail")
	}
}

func TestUpdateInterview_InvalidatesCandidateDetail(t *testing.T) {
	f := newFixture(t)
	app := f.addApplication(t)
	i := f.addInterview(t, app.ID, interview.StatusScheduled, interview.DecisionPending)

	before := f.cache.invalidations
	if _, err := f.service.UpdateInterview(context.Background(), i.ID, interview.UpdateInterviewRequest{
		Status:   "en_progreso",
		Decision: "pendiente",
	}); err != nil {
		t.Fatalf("UpdateInterview returned error: %v", err)
	}
	if f.cache.invalidations <= before {
		t.Error("updating an interview should invalidate the owning candidate's detail cache")
	}
}

// ── DeleteInterview ────────────────────────────────────────────────────────

func TestDeleteInterview_NoStateGuard(t *testing.T) {
	f := newFixture(t)
	app := f.addApplication(t)
	i := f.addInterview(t, app.ID, interview.StatusCompleted, interview.DecisionApproved)

	if err := f.service.DeleteInterview(context.Background(), i.ID); err != nil {
		t.Fatalf("DeleteInterview returned error: %v", err)
	}
	if _, err := f.interviews.FindByID(context.Background(), i.ID); err == nil {
		t.Error("interview should be hard deleted")
	}
}

func TestDeleteInterview_NotFound(t *testing.T) {
	f := newFixture(t)

	if err := f.service.DeleteInterview(context.Background(), kernel.GenerateInterviewID()); err == nil {
		t.Error("deleting a missing interview should fail")
	}
}
