package account

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"time"

	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/kernel"
)

// ============================================================================
// Account Entity
// ============================================================================

// Account es la cuenta de autenticación de un usuario del sistema.
// Un candidato contratado obtiene una cuenta durante la transacción de
// contratación; el resto se crea por administración.
type Account struct {
	ID                 kernel.UserID `db:"id" json:"id"`
	Email              string        `db:"email" json:"email"`
	FullName           string        `db:"full_name" json:"full_name"`
	PasswordHash       string        `db:"password_hash" json:"-"`
	MustChangePassword bool          `db:"must_change_password" json:"must_change_password"`
	CreatedAt          time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time     `db:"updated_at" json:"updated_at"`
}

// RoleGrant es la asignación de un rol a una cuenta.
// La clave natural es (user_id, role): otorgar dos veces el mismo rol es idempotente.
type RoleGrant struct {
	UserID    kernel.UserID `db:"user_id" json:"user_id"`
	Role      string        `db:"role" json:"role"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}

// ============================================================================
// Temporary Passwords
// ============================================================================

const tempPasswordRandomLength = 8

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateTemporaryPassword genera la contraseña temporal de una cuenta nueva:
// prefijo fijo + últimos 4 dígitos del epoch en millis + 8 caracteres base-36
// aleatorios + sufijo fijo. El resultado cumple las reglas típicas de fortaleza
// (mayúscula en el prefijo, dígitos, símbolo en el sufijo).
func GenerateTemporaryPassword(prefix, suffix string) (string, error) {
	millis := time.Now().UnixMilli()
	tail := millis % 10000

	random := make([]byte, tempPasswordRandomLength)
	if _, err := rand.Read(random); err != nil {
		return "", errx.Wrap(err, "failed to generate temporary password", errx.TypeInternal)
	}
	for i, b := range random {
		random[i] = base36Alphabet[int(b)%len(base36Alphabet)]
	}

	return fmt.Sprintf("%s%04d%s%s", prefix, tail, random, suffix), nil
}

// ============================================================================
// Service DTOs
// ============================================================================

// CreateAccountRequest representa la petición para crear una cuenta
type CreateAccountRequest struct {
	Email              string `json:"email" validate:"required,email"`
	FullName           string `json:"full_name" validate:"required,min=2"`
	Password           string `json:"password" validate:"required,min=8"`
	MustChangePassword bool   `json:"must_change_password"`
}

// AccountDetailsDTO contiene información básica de una cuenta para otros módulos
type AccountDetailsDTO struct {
	ID        kernel.UserID `json:"id"`
	Email     string        `json:"email"`
	FullName  string        `json:"full_name"`
	CreatedAt time.Time     `json:"created_at"`
}

// ToDTO convierte la entidad Account a AccountDetailsDTO
func (a *Account) ToDTO() AccountDetailsDTO {
	return AccountDetailsDTO{
		ID:        a.ID,
		Email:     a.Email,
		FullName:  a.FullName,
		CreatedAt: a.CreatedAt,
	}
}

// ============================================================================
// Error Registry - Errores específicos de Account
// ============================================================================

var ErrRegistry = errx.NewRegistry("ACCOUNT")

var (
	CodeAccountNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Cuenta no encontrada")
	CodeAccountAlreadyExists = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Ya existe una cuenta con este email")
	CodeInvalidRole          = ErrRegistry.Register("INVALID_ROLE", errx.TypeValidation, http.StatusBadRequest, "Rol no reconocido")
)

func ErrAccountNotFound() *errx.Error {
	return ErrRegistry.New(CodeAccountNotFound)
}

func ErrAccountAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeAccountAlreadyExists)
}

func ErrInvalidRole() *errx.Error {
	return ErrRegistry.New(CodeInvalidRole)
}
