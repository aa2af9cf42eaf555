package candidatesrv_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/talenta-pe/talenta/pkg/fsx"
	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/ptrx"
	"github.com/talenta-pe/talenta/pkg/recruiting/application"
	"github.com/talenta-pe/talenta/pkg/recruiting/candidate"
	"github.com/talenta-pe/talenta/pkg/recruiting/candidate/candidatesrv"
	"github.com/talenta-pe/talenta/pkg/recruiting/interview"
	"github.com/talenta-pe/talenta/pkg/recruiting/position"
)

// ── In-memory fakes ────────────────────────────────────────────────────────

type fakeCandidateRepo struct {
	candidates map[kernel.CandidateID]candidate.Candidate
	finds      int
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: make(map[kernel.CandidateID]candidate.Candidate)}
}

func (r *fakeCandidateRepo) FindByID(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	r.finds++
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
	r.interviews[i.ID] = i
	return nil
}

func (r *fakeInterviewRepo) Update(ctx context.Context, i interview.Interview) error {
	r.interviews[i.ID] = i
	return nil
}

func (r *fakeInterviewRepo) Delete(ctx context.Context, id kernel.InterviewID) error {
	delete(r.interviews, id)
	return nil
}

type fakePositionRepo struct {
	positions map[kernel.PositionID]position.Position
}

func newFakePositionRepo() *fakePositionRepo {
	return &fakePositionRepo{positions: make(map[kernel.PositionID]position.Position)}
}

func (r *fakePositionRepo) FindByID(ctx context.Context, id kernel.PositionID) (*position.Position, error) {
	p, ok := r.positions[id]
	if !ok {
		return nil, position.ErrPositionNotFound().WithDetail("position_id", id.String())
	}
	return &p, nil
}

func (r *fakePositionRepo) FindAll(ctx context.Context, filters position.ListFilters, pagination kernel.PaginationOptions) (*kernel.Paginated[position.Position], error) {
	return &kernel.Paginated[position.Position]{}, nil
}

func (r *fakePositionRepo) Create(ctx context.Context, p position.Position) error {
	r.positions[p.ID] = p
	return nil
}

func (r *fakePositionRepo) Update(ctx context.Context, p position.Position) error {
	r.positions[p.ID] = p
	return nil
}

func (r *fakePositionRepo) Delete(ctx context.Context, id kernel.PositionID) error {
	delete(r.positions, id)
	return nil
}

// memoryDetailCache retiene entradas para poder verificar aciertos de caché
type memoryDetailCache struct {
	entries       map[kernel.CandidateID]*candidate.Detail
	sets          int
	invalidations int
}

func newMemoryDetailCache() *memoryDetailCache {
	return &memoryDetailCache{entries: make(map[kernel.CandidateID]*candidate.Detail)}
}

func (c *memoryDetailCache) Get(ctx context.Context, id kernel.CandidateID) (*candidate.Detail, error) {
	return c.entries[id], nil
}

func (c *memoryDetailCache) Set(ctx context.Context, detail *candidate.Detail, ttl time.Duration) error {
	c.sets++
	c.entries[detail.Candidate.ID] = detail
	return nil
}

func (c *memoryDetailCache) Invalidate(ctx context.Context, id kernel.CandidateID) error {
	c.invalidations++
	delete(c.entries, id)
	return nil
}

type fakeFileSystem struct {
	files map[string][]byte
}

func newFakeFileSystem() *fakeFileSystem {
	return &fakeFileSystem{files: make(map[string][]byte)}
}

func (f *fakeFileSystem) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	content, ok := f.files[key]
	if !ok {
		return nil, fsx.ErrFileNotFound().WithDetail("key", key)
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (f *fakeFileSystem) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := f.files[key]
	return ok, nil
}

func (f *fakeFileSystem) Save(ctx context.Context, key string, content io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	f.files[key] = data
	return key, nil
}

func (f *fakeFileSystem) Delete(ctx context.Context, key string) error {
	delete(f.files, key)
	return nil
}

// ── Fixture ────────────────────────────────────────────────────────────────

type fixture struct {
	service      *candidatesrv.CandidateService
	candidates   *fakeCandidateRepo
	applications *fakeApplicationRepo
	interviews   *fakeInterviewRepo
	positions    *fakePositionRepo
	cache        *memoryDetailCache
	fs           *fakeFileSystem
	candidateID  kernel.CandidateID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	candidates := newFakeCandidateRepo()
	applications := newFakeApplicationRepo()
	interviews := newFakeInterviewRepo()
	positions := newFakePositionRepo()
	cache := newMemoryDetailCache()
	fs := newFakeFileSystem()

	candidateID := kernel.GenerateCandidateID()
	candidates.candidates[candidateID] = candidate.Candidate{
		ID:       candidateID,
		FullName: "Marcos Herrera",
		Email:    "marcos.herrera@example.com",
		Status:   candidate.StatusNew,
	}

	return &fixture{
		service:      candidatesrv.NewCandidateService(candidates, applications, interviews, positions, cache, 10*time.Minute, fs),
		candidates:   candidates,
		applications: applications,
		interviews:   interviews,
		positions:    positions,
		cache:        cache,
		fs:           fs,
		candidateID:  candidateID,
	}
}

func (f *fixture) addPipeline(t *testing.T) (application.Application, position.Position) {
	t.Helper()

	p := position.Position{
		ID:    kernel.GeneratePositionID(),
		Title: "Backend Engineer",
	}
	f.positions.positions[p.ID] = p

	app := application.NewApplication(f.candidateID, &p.ID)
	if err := f.applications.Create(context.Background(), app); err != nil {
		t.Fatalf("seeding application: %v", err)
	}

	interviewID := kernel.GenerateInterviewID()
	f.interviews.interviews[interviewID] = interview.Interview{
		ID:            interviewID,
		ApplicationID: app.ID,
		InterviewType: interview.TypeScreening,
		Status:        interview.StatusScheduled,
		Decision:      interview.DecisionPending,
	}

	return app, p
}

// ── GetDetail ──────────────────────────────────────────────────────────────

func TestGetDetail_AssemblesPipeline(t *testing.T) {
	f := newFixture(t)
	app, p := f.addPipeline(t)

	detail, err := f.service.GetDetail(context.Background(), f.candidateID)
	if err != nil {
		t.Fatalf("GetDetail returned error: %v", err)
	}

	if detail.Candidate.ID != f.candidateID {
		t.Error("detail should carry the requested candidate")
	}
	if detail.LatestApplication == nil || detail.LatestApplication.ID != app.ID {
		t.Error("detail should carry the latest application")
	}
	if len(detail.Interviews) != 1 {
		t.Errorf("detail interviews = %d, want 1", len(detail.Interviews))
	}
	if detail.Position == nil || detail.Position.ID != p.ID {
		t.Error("detail should resolve the linked position")
	}
}

func TestGetDetail_CandidateOnlyWithoutApplication(t *testing.T) {
	f := newFixture(t)

	detail, err := f.service.GetDetail(context.Background(), f.candidateID)
	if err != nil {
		t.Fatalf("GetDetail returned error: %v", err)
	}

	if detail.HasApplication() {
		t.Error("detail should have no application for a fresh candidate")
	}
	if detail.Interviews == nil || len(detail.Interviews) != 0 {
		t.Error("interviews should be an empty slice, not nil")
	}
	if detail.Position != nil {
		t.Error("no position should be resolved without an application")
	}
}

func TestGetDetail_ServesSecondReadFromCache(t *testing.T) {
	f := newFixture(t)
	f.addPipeline(t)

	if _, err := f.service.GetDetail(context.Background(), f.candidateID); err != nil {
		t.Fatalf("first GetDetail returned error: %v", err)
	}
	if f.cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1 after the first read", f.cache.sets)
	}

	reads := f.candidates.finds
	if _, err := f.service.GetDetail(context.Background(), f.candidateID); err != nil {
		t.Fatalf("second GetDetail returned error: %v", err)
	}
	if f.candidates.finds != reads {
		t.Error("second read should be served from cache without hitting the repository")
	}
}

func TestRefreshDetail_RebuildsAfterInvalidation(t *testing.T) {
	f := newFixture(t)
	f.addPipeline(t)

	if _, err := f.service.GetDetail(context.Background(), f.candidateID); err != nil {
		t.Fatalf("GetDetail returned error: %v", err)
	}

	before := f.cache.invalidations
	if _, err := f.service.RefreshDetail(context.Background(), f.candidateID); err != nil {
		t.Fatalf("RefreshDetail returned error: %v", err)
	}
	if f.cache.invalidations <= before {
		t.Error("refresh should drop the cached entry before rebuilding")
	}
	if f.cache.sets != 2 {
		t.Errorf("cache sets = %d, want 2 after the rebuild", f.cache.sets)
	}
}

// ── UpdateCandidate ────────────────────────────────────────────────────────

func TestUpdateCandidate_AppliesOnlyPresentFields(t *testing.T) {
	f := newFixture(t)

	updated, err := f.service.UpdateCandidate(context.Background(), f.candidateID, candidate.UpdateCandidateRequest{
		Phone: ptrx.String("+51 987 654 321"),
		Notes: ptrx.String("referido por el equipo de plataforma"),
	})
	if err != nil {
		t.Fatalf("UpdateCandidate returned error: %v", err)
	}

	if updated.Phone != "+51 987 654 321" {
		t.Errorf("Phone = %q, want the updated value", updated.Phone)
	}
	if updated.FullName != "Marcos Herrera" {
		t.Error("absent fields should keep their stored value")
	}
}

func TestUpdateCandidate_RejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)

	bogus := candidate.Status("descartado")
	if _, err := f.service.UpdateCandidate(context.Background(), f.candidateID, candidate.UpdateCandidateRequest{
		Status: &bogus,
	}); err == nil {
		t.Error("an unrecognized status should be rejected")
	}
}

func TestUpdateCandidate_InvalidatesDetail(t *testing.T) {
	f := newFixture(t)

	before := f.cache.invalidations
	if _, err := f.service.UpdateCandidate(context.Background(), f.candidateID, candidate.UpdateCandidateRequest{
		Seniority: ptrx.String("senior"),
	}); err != nil {
		t.Fatalf("UpdateCandidate returned error: %v", err)
	}
	if f.cache.invalidations <= before {
		t.Error("updating a candidate should invalidate its cached detail")
	}
}

// ── Resume storage ─────────────────────────────────────────────────────────

func TestUploadResume_StoresAndLinksFile(t *testing.T) {
	f := newFixture(t)

	updated, err := f.service.UploadResume(context.Background(), f.candidateID, "cv-marcos.pdf", "application/pdf", strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("UploadResume returned error: %v", err)
	}

	if updated.ResumeURL == nil {
		t.Fatal("ResumeURL should be set after upload")
	}
	if !strings.HasPrefix(*updated.ResumeURL, "resumes/"+f.candidateID.String()+"/") {
		t.Errorf("resume key = %q, want it scoped under the candidate", *updated.ResumeURL)
	}

	rc, err := f.service.OpenResume(context.Background(), f.candidateID)
	if err != nil {
		t.Fatalf("OpenResume returned error: %v", err)
	}
	defer rc.Close()
	content, _ := io.ReadAll(rc)
	if string(content) != "%PDF-1.4" {
		t.Error("stored resume content should round-trip")
	}
}

func TestOpenResume_FailsWithoutUpload(t *testing.T) {
	f := newFixture(t)

	if _, err := f.service.OpenResume(context.Background(), f.candidateID); err == nil {
		t.Error("opening a resume that was never uploaded should fail")
	}
}

// ── CreateCandidate ────────────────────────────────────────────────────────

func TestCreateCandidate_StartsAsNew(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.CreateCandidate(context.Background(), candidate.CreateCandidateRequest{
		FullName: "Ana Quispe",
		Email:    "ana.quispe@example.com",
	})
	if err != nil {
		t.Fatalf("CreateCandidate returned error: %v", err)
	}
	if created.Status != candidate.StatusNew {
		t.Errorf("Status = %q, want %q", created.Status, candidate.StatusNew)
	}
	if created.ID.IsEmpty() {
		t.Error("a fresh id should be generated")
	}
}
