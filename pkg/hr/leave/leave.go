package leave

import (
	"net/http"
	"time"

	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/kernel"
)

// ============================================================================
// Leave Balance Entity
// ============================================================================

// Balance es el saldo de vacaciones de una cuenta para un año calendario.
// La clave natural es (user_id, year).
type Balance struct {
	UserID    kernel.UserID `db:"user_id" json:"user_id"`
	Year      int           `db:"year" json:"year"`
	Total     int           `db:"total" json:"total"`
	Used      int           `db:"used" json:"used"`
	Available int           `db:"available" json:"available"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}

// NewBalance crea el saldo inicial de un año con los días totales dados
func NewBalance(userID kernel.UserID, year int, totalDays int) Balance {
	now := time.Now()
	return Balance{
		UserID:    userID,
		Year:      year,
		Total:     totalDays,
		Used:      0,
		Available: totalDays,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Consume descuenta días del saldo disponible
func (b *Balance) Consume(days int) error {
	if days <= 0 {
		return ErrInvalidDays().WithDetail("days", days)
	}
	if days > b.Available {
		return ErrInsufficientBalance().
			WithDetail("requested", days).
			WithDetail("available", b.Available)
	}

	b.Used += days
	b.Available -= days
	b.UpdatedAt = time.Now()
	return nil
}

// ============================================================================
// Error Registry - Errores específicos de Leave
// ============================================================================

var ErrRegistry = errx.NewRegistry("LEAVE")

var (
	CodeBalanceNotFound     = ErrRegistry.Register("BALANCE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Saldo de vacaciones no encontrado")
	CodeInvalidDays         = ErrRegistry.Register("INVALID_DAYS", errx.TypeValidation, http.StatusBadRequest, "Cantidad de días inválida")
	CodeInsufficientBalance = ErrRegistry.Register("INSUFFICIENT_BALANCE", errx.TypeBusiness, http.StatusUnprocessableEntity, "Saldo de vacaciones insuficiente")
)

func ErrBalanceNotFound() *errx.Error {
	return ErrRegistry.New(CodeBalanceNotFound)
}

func ErrInvalidDays() *errx.Error {
	return ErrRegistry.New(CodeInvalidDays)
}

func ErrInsufficientBalance() *errx.Error {
	return ErrRegistry.New(CodeInsufficientBalance)
}
