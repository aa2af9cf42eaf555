package interviewsrv

import (
	"context"
	"fmt"
	"time"

	"github.com/talenta-pe/talenta/pkg/ai/llm"
	"github.com/talenta-pe/talenta/pkg/config"
	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/logx"
	"github.com/talenta-pe/talenta/pkg/recruiting/application"
	"github.com/talenta-pe/talenta/pkg/recruiting/candidate"
	"github.com/talenta-pe/talenta/pkg/recruiting/interview"
)

// InterviewService proporciona operaciones de negocio para entrevistas:
// agendado con su guarda de decisión final, actualización con las reglas del
// ciclo de vida, y borrado
type InterviewService struct {
	interviewRepo   interview.InterviewRepository
	applicationRepo application.ApplicationRepository
	candidateRepo   candidate.CandidateRepository
	detailCache     candidate.DetailCache
	llmClient       *llm.Client
	aiConfig        *config.AIConfig
}

// NewInterviewService crea una nueva instancia del servicio de entrevistas.
// llmClient puede ser nil; en ese caso la sugerencia de feedback queda deshabilitada.
func NewInterviewService(
	interviewRepo interview.InterviewRepository,
	applicationRepo application.ApplicationRepository,
	candidateRepo candidate.CandidateRepository,
	detailCache candidate.DetailCache,
	llmClient *llm.Client,
	aiConfig *config.AIConfig,
) *InterviewService {
	return &InterviewService{
		interviewRepo:   interviewRepo,
		applicationRepo: applicationRepo,
		candidateRepo:   candidateRepo,
		detailCache:     detailCache,
		llmClient:       llmClient,
		aiConfig:        aiConfig,
	}
}

// ScheduleInterview agenda una entrevista para la postulación más reciente del
// candidato. Si el candidato no tiene postulación se crea una implícita en
// revisión antes de insertar la entrevista; ambas escrituras son secuenciales,
// sin transacción que las envuelva.
func (s *InterviewService) ScheduleInterview(ctx context.Context, candidateID kernel.CandidateID, req interview.ScheduleInterviewRequest) (*interview.Interview, error) {
	cand, err := s.candidateRepo.FindByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	app, err := s.applicationRepo.FindLatestByCandidate(ctx, candidateID)
	if err != nil {
		if !errx.IsType(err, errx.TypeNotFound) {
			return nil, err
		}
		created := application.NewApplication(candidateID, nil)
		if err := s.applicationRepo.Create(ctx, created); err != nil {
			return nil, err
		}
		app = &created
	}

	existing, err := s.interviewRepo.FindByApplication(ctx, app.ID)
	if err != nil {
		return nil, err
	}

	if !interview.CanSchedule(existing) {
		return nil, interview.ErrFinalDecisionReached().
			WithDetail("application_id", app.ID.String())
	}

	now := time.Now()
	newInterview := interview.Interview{
		ID:              kernel.GenerateInterviewID(),
		ApplicationID:   app.ID,
		InterviewType:   interview.Type(req.InterviewType),
		Status:          interview.StatusScheduled,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Location:        req.Location,
		MeetingURL:      req.MeetingURL,
		Decision:        interview.ParseDecision(req.Decision),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.interviewRepo.Create(ctx, newInterview); err != nil {
		return nil, err
	}

	// El candidato entra a la etapa de entrevistas en cuanto se agenda la primera
	if cand.Status == candidate.StatusNew || cand.Status == candidate.StatusInProcess {
		cand.Status = candidate.StatusInterview
		cand.UpdatedAt = time.Now()
		if err := s.candidateRepo.Update(ctx, *cand); err != nil {
			logx.WithFields(logx.Fields{"candidate_id": candidateID.String()}).
				Warnf("failed to move candidate to interview stage: %v", err)
		}
	}

	s.invalidateDetail(ctx, candidateID)
	return &newInterview, nil
}

// GetInterview obtiene una entrevista por id
func (s *InterviewService) GetInterview(ctx context.Context, id kernel.InterviewID) (*interview.Interview, error) {
	return s.interviewRepo.FindByID(ctx, id)
}

// ListByApplication lista las entrevistas de una postulación
func (s *InterviewService) ListByApplication(ctx context.Context, applicationID kernel.ApplicationID) ([]interview.Interview, error) {
	return s.interviewRepo.FindByApplication(ctx, applicationID)
}

// UpdateInterview aplica una actualización validada por el ciclo de vida:
// una entrevista completada no se vuelve a editar, y completar con decisión
// exige la confirmación explícita del actor
func (s *InterviewService) UpdateInterview(ctx context.Context, id kernel.InterviewID, req interview.UpdateInterviewRequest) (*interview.Interview, error) {
	current, err := s.interviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := interview.ValidateUpdate(current, req); err != nil {
		return nil, err
	}

	current.ApplyUpdate(req)
	if err := s.interviewRepo.Update(ctx, *current); err != nil {
		return nil, err
	}

	s.invalidateOwner(ctx, current.ApplicationID)
	return current, nil
}

// DeleteInterview elimina una entrevista. Sin guardas de estado: el borrado
// es incondicional para un actor autorizado.
func (s *InterviewService) DeleteInterview(ctx context.Context, id kernel.InterviewID) error {
	current, err := s.interviewRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.interviewRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateOwner(ctx, current.ApplicationID)
	return nil
}

// SuggestFeedback genera un borrador de feedback para la entrevista usando el
// modelo configurado. Retorna error si la función no está habilitada.
func (s *InterviewService) SuggestFeedback(ctx context.Context, id kernel.InterviewID) (string, error) {
	if s.llmClient == nil || s.aiConfig == nil || !s.aiConfig.Enabled {
		return "", errx.New("AI feedback suggestions are not enabled", errx.TypeBusiness)
	}

	current, err := s.interviewRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(
		"Redacta un borrador breve y profesional de feedback para una entrevista de tipo %s con decisión %s.",
		current.InterviewType, current.Decision,
	)
	if current.FeedbackSummary != "" {
		prompt += fmt.Sprintf(" Notas del entrevistador: %s", current.FeedbackSummary)
	}

	response, err := s.llmClient.Chat(ctx,
		[]llm.Message{
			llm.NewSystemMessage("Eres un asistente de reclutamiento que redacta feedback de entrevistas en español, conciso y accionable."),
			llm.NewUserMessage(prompt),
		},
		llm.WithModel(s.aiConfig.Model),
		llm.WithMaxCompletionTokens(s.aiConfig.MaxTokens),
	)
	if err != nil {
		return "", errx.Wrap(err, "failed to generate feedback draft", errx.TypeInternal).
			WithDetail("interview_id", id.String())
	}

	return response.Message.Content, nil
}

func (s *InterviewService) invalidateOwner(ctx context.Context, applicationID kernel.ApplicationID) {
	app, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		logx.WithFields(logx.Fields{"application_id": applicationID.String()}).
			Warnf("failed to resolve application owner for cache invalidation: %v", err)
		return
	}
	s.invalidateDetail(ctx, app.CandidateID)
}

func (s *InterviewService) invalidateDetail(ctx context.Context, candidateID kernel.CandidateID) {
	if err := s.detailCache.Invalidate(ctx, candidateID); err != nil {
		logx.WithFields(logx.Fields{"candidate_id": candidateID.String()}).
			Warnf("candidate detail cache invalidation failed: %v", err)
	}
}
