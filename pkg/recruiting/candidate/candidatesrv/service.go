package candidatesrv

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/fsx"
	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/logx"
	"github.com/talenta-pe/talenta/pkg/recruiting/application"
	"github.com/talenta-pe/talenta/pkg/recruiting/candidate"
	"github.com/talenta-pe/talenta/pkg/recruiting/interview"
	"github.com/talenta-pe/talenta/pkg/recruiting/position"
)

// CandidateService proporciona operaciones de negocio para candidatos,
// incluida la vista agregada de detalle sobre la que opera el pipeline
type CandidateService struct {
	candidateRepo   candidate.CandidateRepository
	applicationRepo application.ApplicationRepository
	interviewRepo   interview.InterviewRepository
	positionRepo    position.PositionRepository
	detailCache     candidate.DetailCache
	cacheTTL        time.Duration
	fs              fsx.FileSystem
}

// NewCandidateService crea una nueva instancia del servicio de candidatos
func NewCandidateService(
	candidateRepo candidate.CandidateRepository,
	applicationRepo application.ApplicationRepository,
	interviewRepo interview.InterviewRepository,
	positionRepo position.PositionRepository,
	detailCache candidate.DetailCache,
	cacheTTL time.Duration,
	fs fsx.FileSystem,
) *CandidateService {
	return &CandidateService{
		candidateRepo:   candidateRepo,
		applicationRepo: applicationRepo,
		interviewRepo:   interviewRepo,
		positionRepo:    positionRepo,
		detailCache:     detailCache,
		cacheTTL:        cacheTTL,
		fs:              fs,
	}
}

// CreateCandidate registra un nuevo candidato en estado nuevo
func (s *CandidateService) CreateCandidate(ctx context.Context, req candidate.CreateCandidateRequest) (*candidate.Candidate, error) {
	now := time.Now()
	c := candidate.Candidate{
		ID:              kernel.GenerateCandidateID(),
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Source:          req.Source,
		Seniority:       req.Seniority,
		CurrentLocation: req.CurrentLocation,
		Notes:           req.Notes,
		Status:          candidate.StatusNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.candidateRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	return &c, nil
}

// GetCandidate obtiene un candidato por id
func (s *CandidateService) GetCandidate(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	return s.candidateRepo.FindByID(ctx, id)
}

// ListCandidates lista candidatos con filtros opcionales
func (s *CandidateService) ListCandidates(ctx context.Context, filters candidate.ListFilters, pagination kernel.PaginationOptions) (*kernel.Paginated[candidate.Candidate], error) {
	return s.candidateRepo.FindAll(ctx, filters, pagination)
}

// UpdateCandidate aplica los campos presentes de la petición sobre el candidato
func (s *CandidateService) UpdateCandidate(ctx context.Context, id kernel.CandidateID, req candidate.UpdateCandidateRequest) (*candidate.Candidate, error) {
	c, err := s.candidateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		c.FullName = *req.FullName
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Source != nil {
		c.Source = *req.Source
	}
	if req.Seniority != nil {
		c.Seniority = *req.Seniority
	}
	if req.CurrentLocation != nil {
		c.CurrentLocation = *req.CurrentLocation
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
	if req.Status != nil {
		if !candidate.IsValidStatus(*req.Status) {
			return nil, candidate.ErrInvalidStatus().WithDetail("status", string(*req.Status))
		}
		c.Status = *req.Status
	}
	c.UpdatedAt = time.Now()

	if err := s.candidateRepo.Update(ctx, *c); err != nil {
		return nil, err
	}

	s.invalidateDetail(ctx, id)
	return c, nil
}

// GetDetail arma la vista agregada del candidato: candidato, postulación más
// reciente, sus entrevistas y la vacante ligada. La vista se sirve desde la
// caché cuando hay una entrada vigente.
func (s *CandidateService) GetDetail(ctx context.Context, id kernel.CandidateID) (*candidate.Detail, error) {
	if cached, err := s.detailCache.Get(ctx, id); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		// La caché nunca bloquea la lectura; se sigue contra la base
		logx.WithFields(logx.Fields{"candidate_id": id.String()}).
			Warnf("candidate detail cache read failed: %v", err)
	}

	detail, err := s.assembleDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.detailCache.Set(ctx, detail, s.cacheTTL); err != nil {
		logx.WithFields(logx.Fields{"candidate_id": id.String()}).
			Warnf("candidate detail cache write failed: %v", err)
	}

	return detail, nil
}

// RefreshDetail invalida la entrada cacheada y rearma la vista desde la base
func (s *CandidateService) RefreshDetail(ctx context.Context, id kernel.CandidateID) (*candidate.Detail, error) {
	s.invalidateDetail(ctx, id)
	return s.GetDetail(ctx, id)
}

func (s *CandidateService) assembleDetail(ctx context.Context, id kernel.CandidateID) (*candidate.Detail, error) {
	c, err := s.candidateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &candidate.Detail{
		Candidate:  *c,
		Interviews: []interview.Interview{},
	}

	latest, err := s.applicationRepo.FindLatestByCandidate(ctx, id)
	if err != nil {
		// Sin postulación la vista queda en el candidato solo
		if errx.IsType(err, errx.TypeNotFound) {
			return detail, nil
		}
		return nil, err
	}
	detail.LatestApplication = latest

	interviews, err := s.interviewRepo.FindByApplication(ctx, latest.ID)
	if err != nil {
		return nil, err
	}
	detail.Interviews = interviews

	if latest.PositionID != nil && !latest.PositionID.IsEmpty() {
		p, err := s.positionRepo.FindByID(ctx, *latest.PositionID)
		if err != nil {
			if !errx.IsType(err, errx.TypeNotFound) {
				return nil, err
			}
		} else {
			detail.Position = p
		}
	}

	return detail, nil
}

// UploadResume almacena el CV del candidato y actualiza su referencia
func (s *CandidateService) UploadResume(ctx context.Context, id kernel.CandidateID, filename, contentType string, content io.Reader) (*candidate.Candidate, error) {
	c, err := s.candidateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("resumes/%s/%s", id.String(), path.Base(filename))
	stored, err := s.fs.Save(ctx, key, content, contentType)
	if err != nil {
		return nil, err
	}

	c.ResumeURL = &stored
	c.UpdatedAt = time.Now()
	if err := s.candidateRepo.Update(ctx, *c); err != nil {
		return nil, err
	}

	s.invalidateDetail(ctx, id)
	return c, nil
}

// OpenResume abre el CV almacenado del candidato
func (s *CandidateService) OpenResume(ctx context.Context, id kernel.CandidateID) (io.ReadCloser, error) {
	c, err := s.candidateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.ResumeURL == nil || *c.ResumeURL == "" {
		return nil, fsx.ErrFileNotFound().WithDetail("candidate_id", id.String())
	}

	return s.fs.Open(ctx, *c.ResumeURL)
}

func (s *CandidateService) invalidateDetail(ctx context.Context, id kernel.CandidateID) {
	if err := s.detailCache.Invalidate(ctx, id); err != nil {
		logx.WithFields(logx.Fields{"candidate_id": id.String()}).
			Warnf("candidate detail cache invalidation failed: %v", err)
	}
}
