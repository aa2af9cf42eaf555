package authsrv

import (
	"context"
	"time"

	"github.com/talenta-pe/talenta/pkg/iam"
	"github.com/talenta-pe/talenta/pkg/iam/account"
	"github.com/talenta-pe/talenta/pkg/iam/auth"
	"github.com/talenta-pe/talenta/pkg/iam/scopes"
)

// AuthService emite tokens de acceso contra las cuentas del sistema.
// Los scopes del token se derivan de los roles otorgados a la cuenta.
type AuthService struct {
	accountRepo     account.AccountRepository
	roleRepo        account.RoleRepository
	passwordService account.PasswordService
	tokenService    auth.TokenService
}

// NewAuthService crea una nueva instancia del servicio de autenticación
func NewAuthService(
	accountRepo account.AccountRepository,
	roleRepo account.RoleRepository,
	passwordService account.PasswordService,
	tokenService auth.TokenService,
) *AuthService {
	return &AuthService{
		accountRepo:     accountRepo,
		roleRepo:        roleRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// LoginRequest representa las credenciales de acceso
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse es el resultado de un login exitoso
type LoginResponse struct {
	AccessToken        string   `json:"access_token"`
	TokenType          string   `json:"token_type"`
	Scopes             []string `json:"scopes"`
	MustChangePassword bool     `json:"must_change_password"`
}

// Login verifica las credenciales y emite un access token con los scopes
// derivados de los roles de la cuenta
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	acct, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		// No se distingue cuenta inexistente de contraseña incorrecta
		return nil, iam.ErrUnauthorized()
	}

	if !s.passwordService.VerifyPassword(acct.PasswordHash, req.Password) {
		return nil, iam.ErrUnauthorized()
	}

	grants, err := s.roleRepo.FindByUser(ctx, acct.ID)
	if err != nil {
		return nil, err
	}

	scopeSet := make(map[string]struct{})
	for _, grant := range grants {
		for _, scope := range scopes.GetScopesByGroup(grant.Role) {
			scopeSet[scope] = struct{}{}
		}
	}
	grantedScopes := make([]string, 0, len(scopeSet))
	for scope := range scopeSet {
		grantedScopes = append(grantedScopes, scope)
	}

	token, err := s.tokenService.GenerateAccessToken(acct.ID, map[string]any{
		"email":  acct.Email,
		"name":   acct.FullName,
		"scopes": grantedScopes,
	})
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken:        token,
		TokenType:          "Bearer",
		Scopes:             grantedScopes,
		MustChangePassword: acct.MustChangePassword,
	}, nil
}

// ChangePassword reemplaza la contraseña de la cuenta y apaga la bandera de
// cambio obligatorio fijada al aprovisionar
func (s *AuthService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	acct, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return iam.ErrUnauthorized()
	}

	if !s.passwordService.VerifyPassword(acct.PasswordHash, currentPassword) {
		return iam.ErrUnauthorized()
	}

	hash, err := s.passwordService.HashPassword(newPassword)
	if err != nil {
		return err
	}

	acct.PasswordHash = hash
	acct.MustChangePassword = false
	acct.UpdatedAt = time.Now()
	return s.accountRepo.Update(ctx, *acct)
}
