package iam

import (
	"net/http"

	"github.com/talenta-pe/talenta/pkg/errx"
)

// ============================================================================
// Error Registry - Errores compartidos de IAM
// ============================================================================

var ErrRegistry = errx.NewRegistry("IAM")

var (
	CodeUnauthorized = ErrRegistry.Register("UNAUTHORIZED", errx.TypeAuthorization, http.StatusUnauthorized, "No autenticado")
	CodeForbidden    = ErrRegistry.Register("FORBIDDEN", errx.TypeAuthorization, http.StatusForbidden, "Permisos insuficientes")
)

func ErrUnauthorized() *errx.Error {
	return ErrRegistry.New(CodeUnauthorized)
}

func ErrForbidden() *errx.Error {
	return ErrRegistry.New(CodeForbidden)
}
