package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/talenta-pe/talenta/pkg/config"
	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/kernel"
)

// TokenService define el contrato para emisión y validación de tokens
type TokenService interface {
	GenerateAccessToken(userID kernel.UserID, claims map[string]any) (string, error)
	ValidateAccessToken(tokenString string) (*TokenClaims, error)
}

// TokenClaims son los claims decodificados de un access token
type TokenClaims struct {
	UserID    kernel.UserID
	Email     string
	Name      string
	Scopes    []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// JWTService implementación del TokenService usando JWT
type JWTService struct {
	secretKey      []byte
	accessTokenTTL time.Duration
	issuer         string
	audience       []string
}

// NewJWTServiceFromConfig crea una nueva instancia del servicio JWT
func NewJWTServiceFromConfig(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		secretKey:      []byte(cfg.SecretKey),
		accessTokenTTL: cfg.AccessTokenTTL,
		issuer:         cfg.Issuer,
		audience:       cfg.Audience,
	}
}

// Claims personalizados para JWT
type JWTClaims struct {
	UserID kernel.UserID `json:"user_id"`
	Email  string        `json:"email"`
	Name   string        `json:"name"`
	Scopes []string      `json:"scopes"`
	jwt.RegisteredClaims
}

// GenerateAccessToken genera un token de acceso JWT
func (j *JWTService) GenerateAccessToken(userID kernel.UserID, claims map[string]any) (string, error) {
	now := time.Now()

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	scopes, _ := claims["scopes"].([]string)
	if scopes == nil {
		scopes = []string{}
	}

	jwtClaims := JWTClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.issuer,
			Subject:   userID.String(),
			Audience:  j.audience,
			ExpiresAt: jwt.NewNumericDate(now.Add(j.accessTokenTTL)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", ErrTokenGenerationFailed().WithDetail("error", err.Error())
	}

	return tokenString, nil
}

// ValidateAccessToken valida y decodifica un token de acceso
func (j *JWTService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secretKey, nil
	})

	if err != nil {
		return nil, ErrTokenValidationFailed().WithDetail("error", err.Error())
	}

	if !token.Valid {
		return nil, ErrTokenValidationFailed().WithDetail("error", "token is invalid")
	}

	jwtClaims, ok := token.Claims.(*JWTClaims)
	if !ok {
		return nil, ErrTokenValidationFailed().WithDetail("error", "invalid claims type")
	}

	return &TokenClaims{
		UserID:    jwtClaims.UserID,
		Email:     jwtClaims.Email,
		Name:      jwtClaims.Name,
		Scopes:    jwtClaims.Scopes,
		IssuedAt:  jwtClaims.IssuedAt.Time,
		ExpiresAt: jwtClaims.ExpiresAt.Time,
	}, nil
}

// ============================================================================
// Error Registry - Errores específicos de Auth
// ============================================================================

var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeTokenGenerationFailed = ErrRegistry.Register("TOKEN_GENERATION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "No se pudo generar el token")
	CodeTokenValidationFailed = ErrRegistry.Register("TOKEN_VALIDATION_FAILED", errx.TypeAuthorization, http.StatusUnauthorized, "Token inválido o expirado")
)

func ErrTokenGenerationFailed() *errx.Error {
	return ErrRegistry.New(CodeTokenGenerationFailed)
}

func ErrTokenValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeTokenValidationFailed)
}
