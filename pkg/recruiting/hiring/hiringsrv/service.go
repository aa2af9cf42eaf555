package hiringsrv

import (
	"context"
	"time"

	"github.com/talenta-pe/talenta/pkg/config"
	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/hr/employee"
	"github.com/talenta-pe/talenta/pkg/hr/leave"
	"github.com/talenta-pe/talenta/pkg/iam/account"
	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/logx"
	"github.com/talenta-pe/talenta/pkg/recruiting/application"
	"github.com/talenta-pe/talenta/pkg/recruiting/candidate"
	"github.com/talenta-pe/talenta/pkg/recruiting/hiring"
	"github.com/talenta-pe/talenta/pkg/recruiting/interview"
	"github.com/talenta-pe/talenta/pkg/recruiting/position"
)

// HiringService ejecuta la transacción de contratación: convierte un candidato
// aprobado en una cuenta de empleado activa. La secuencia es estrictamente
// secuencial y sin rollback automático; un fallo a mitad deja los pasos ya
// confirmados tal cual (una cuenta sin perfil se repara por operación manual).
type HiringService struct {
	candidateRepo   candidate.CandidateRepository
	applicationRepo application.ApplicationRepository
	interviewRepo   interview.InterviewRepository
	positionRepo    position.PositionRepository
	accountRepo     account.AccountRepository
	roleRepo        account.RoleRepository
	passwordService account.PasswordService
	employeeRepo    employee.EmployeeRepository
	leaveRepo       leave.BalanceRepository
	detailCache     candidate.DetailCache
	cfg             *config.HiringConfig
}

// NewHiringService crea una nueva instancia del servicio de contratación
func NewHiringService(
	candidateRepo candidate.CandidateRepository,
	applicationRepo application.ApplicationRepository,
	interviewRepo interview.InterviewRepository,
	positionRepo position.PositionRepository,
	accountRepo account.AccountRepository,
	roleRepo account.RoleRepository,
	passwordService account.PasswordService,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.BalanceRepository,
	detailCache candidate.DetailCache,
	cfg *config.HiringConfig,
) *HiringService {
	return &HiringService{
		candidateRepo:   candidateRepo,
		applicationRepo: applicationRepo,
		interviewRepo:   interviewRepo,
		positionRepo:    positionRepo,
		accountRepo:     accountRepo,
		roleRepo:        roleRepo,
		passwordService: passwordService,
		employeeRepo:    employeeRepo,
		leaveRepo:       leaveRepo,
		detailCache:     detailCache,
		cfg:             cfg,
	}
}

// EvaluateCandidate calcula el gate de contratación sobre el estado persistido
func (s *HiringService) EvaluateCandidate(ctx context.Context, candidateID kernel.CandidateID) (*hiring.Evaluation, error) {
	cand, latestApp, interviews, err := s.loadPipeline(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	eval := hiring.Evaluate(cand, latestApp, interviews)
	return &eval, nil
}

// ConfirmHire re-evalúa el gate contra el estado persistido y ejecuta la
// secuencia de contratación. La contraseña temporal solo se retorna cuando se
// aprovisionó una cuenta nueva.
func (s *HiringService) ConfirmHire(ctx context.Context, candidateID kernel.CandidateID) (*hiring.Result, error) {
	cand, latestApp, interviews, err := s.loadPipeline(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	// El estado pudo cambiar desde que el llamador consultó la elegibilidad
	eval := hiring.Evaluate(cand, latestApp, interviews)
	if !eval.Eligible {
		return nil, hiring.ErrNotEligible().WithDetail("reason", eval.Reason)
	}

	// Paso 1: búsqueda de una cuenta existente por email
	acct, err := s.accountRepo.FindByEmail(ctx, cand.Email)
	if err != nil && !errx.IsType(err, errx.TypeNotFound) {
		return nil, err
	}

	result := &hiring.Result{CandidateID: cand.ID}

	// Paso 2: aprovisionamiento de la cuenta solo si no existe
	if acct == nil {
		acct, result.TemporaryPassword, err = s.provisionAccount(ctx, cand)
		if err != nil {
			return nil, err
		}
		result.AccountCreated = result.TemporaryPassword != nil
	}
	result.UserID = acct.ID

	// Paso 3: upsert del perfil de empleado
	if err := s.upsertProfile(ctx, acct.ID, cand, latestApp); err != nil {
		return nil, err
	}

	// Paso 4: asignación idempotente del rol
	if err := s.roleRepo.Grant(ctx, acct.ID, s.cfg.DefaultRole); err != nil {
		return nil, err
	}

	// Paso 5: candidato contratado
	cand.MarkHired()
	if err := s.candidateRepo.Update(ctx, *cand); err != nil {
		return nil, err
	}

	// Paso 6: postulación contratada
	latestApp.MarkHired()
	if err := s.applicationRepo.Update(ctx, *latestApp); err != nil {
		return nil, err
	}

	// Paso 7: inicialización idempotente del saldo de vacaciones del año
	balance := leave.NewBalance(acct.ID, time.Now().Year(), s.cfg.DefaultLeaveDays)
	if err := s.leaveRepo.UpsertInitial(ctx, balance); err != nil {
		return nil, err
	}

	s.invalidateViews(ctx, cand.ID)

	logx.WithFields(logx.Fields{
		"candidate_id":    cand.ID.String(),
		"user_id":         acct.ID.String(),
		"account_created": result.AccountCreated,
	}).Infof("candidate hired")

	return result, nil
}

func (s *HiringService) loadPipeline(ctx context.Context, candidateID kernel.CandidateID) (*candidate.Candidate, *application.Application, []interview.Interview, error) {
	cand, err := s.candidateRepo.FindByID(ctx, candidateID)
	if err != nil {
		return nil, nil, nil, err
	}

	latestApp, err := s.applicationRepo.FindLatestByCandidate(ctx, candidateID)
	if err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return cand, nil, nil, nil
		}
		return nil, nil, nil, err
	}

	interviews, err := s.interviewRepo.FindByApplication(ctx, latestApp.ID)
	if err != nil {
		return nil, nil, nil, err
	}

	return cand, latestApp, interviews, nil
}

// provisionAccount crea la cuenta del candidato con una contraseña temporal.
// Una violación de unicidad por una contratación concurrente se resuelve
// re-buscando la cuenta en lugar de fallar; en ese caso no hay contraseña
// que retornar.
func (s *HiringService) provisionAccount(ctx context.Context, cand *candidate.Candidate) (*account.Account, *string, error) {
	tempPassword, err := account.GenerateTemporaryPassword(s.cfg.TempPasswordPrefix, s.cfg.TempPasswordSuffix)
	if err != nil {
		return nil, nil, err
	}

	hash, err := s.passwordService.HashPassword(tempPassword)
	if err != nil {
		return nil, nil, errx.Wrap(err, "failed to hash temporary password", errx.TypeInternal)
	}

	now := time.Now()
	acct := account.Account{
		ID:                 kernel.GenerateUserID(),
		Email:              cand.Email,
		FullName:           cand.FullName,
		PasswordHash:       hash,
		MustChangePassword: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.accountRepo.Create(ctx, acct); err != nil {
		if errx.IsType(err, errx.TypeConflict) {
			existing, lookupErr := s.accountRepo.FindByEmail(ctx, cand.Email)
			if lookupErr != nil {
				return nil, nil, lookupErr
			}
			return existing, nil, nil
		}
		return nil, nil, err
	}

	return &acct, &tempPassword, nil
}

// upsertProfile arma el perfil del nuevo empleado: departamento y puesto se
// copian de la vacante ligada a la postulación, la dirección es la ubicación
// actual del candidato y la fecha de alta es la fecha local de hoy.
func (s *HiringService) upsertProfile(ctx context.Context, userID kernel.UserID, cand *candidate.Candidate, latestApp *application.Application) error {
	department := ""
	positionTitle := ""
	if latestApp.PositionID != nil && !latestApp.PositionID.IsEmpty() {
		p, err := s.positionRepo.FindByID(ctx, *latestApp.PositionID)
		if err != nil {
			if !errx.IsType(err, errx.TypeNotFound) {
				return err
			}
		} else {
			department = p.Department
			positionTitle = p.Title
		}
	}

	now := time.Now()
	profile := employee.Employee{
		UserID:     userID,
		FullName:   cand.FullName,
		Email:      cand.Email,
		Phone:      cand.Phone,
		Department: department,
		Position:   positionTitle,
		Status:     employee.EmployeeStatusActive,
		HireDate:   now.Format("2006-01-02"),
		Address:    cand.CurrentLocation,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return s.employeeRepo.Upsert(ctx, profile)
}

func (s *HiringService) invalidateViews(ctx context.Context, candidateID kernel.CandidateID) {
	if err := s.detailCache.Invalidate(ctx, candidateID); err != nil {
		logx.WithFields(logx.Fields{"candidate_id": candidateID.String()}).
			Warnf("candidate detail cache invalidation failed: %v", err)
	}
}
