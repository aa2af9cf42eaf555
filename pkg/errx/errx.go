package errx

import (
	"fmt"
	"net/http"
)

// ============================================================================
// Error Types
// ============================================================================

// Type clasifica los errores por su naturaleza
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeBusiness      Type = "BUSINESS"
	TypeInternal      Type = "INTERNAL"
)

// ============================================================================
// Error
// ============================================================================

// Error es el error estructurado que viaja hasta el handler HTTP
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"status"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap permite errors.Is / errors.As sobre el error subyacente
func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetail agrega un detalle al error y retorna el mismo error (chainable)
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithError adjunta el error subyacente
func (e *Error) WithError(err error) *Error {
	e.Err = err
	return e
}

// ============================================================================
// Registry
// ============================================================================

// Code identifica un error registrado dentro de un registry
type Code struct {
	prefix     string
	name       string
	errType    Type
	httpStatus int
	message    string
}

// Registry agrupa los códigos de error de un módulo bajo un prefijo común
type Registry struct {
	prefix string
	codes  map[string]Code
}

// NewRegistry crea un registry de errores para un módulo
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[string]Code),
	}
}

// Register registra un código de error con su tipo, status HTTP y mensaje
func (r *Registry) Register(name string, errType Type, httpStatus int, message string) Code {
	code := Code{
		prefix:     r.prefix,
		name:       name,
		errType:    errType,
		httpStatus: httpStatus,
		message:    message,
	}
	r.codes[name] = code
	return code
}

// New crea un *Error a partir de un código registrado
func (r *Registry) New(code Code) *Error {
	return &Error{
		Code:       code.prefix + "_" + code.name,
		Type:       code.errType,
		HTTPStatus: code.httpStatus,
		Message:    code.message,
	}
}

// NewWithError crea un *Error con el error subyacente adjunto
func (r *Registry) NewWithError(code Code, err error) *Error {
	e := r.New(code)
	e.Err = err
	return e
}

// ============================================================================
// Helpers
// ============================================================================

// New crea un *Error ad-hoc con el tipo indicado, sin pasar por un registry
func New(message string, errType Type) *Error {
	return &Error{
		Code:       string(errType) + "_ERROR",
		Type:       errType,
		HTTPStatus: httpStatusForType(errType),
		Message:    message,
	}
}

// Wrap envuelve un error genérico en un *Error con el tipo indicado
func Wrap(err error, message string, errType Type) *Error {
	return &Error{
		Code:       string(errType) + "_ERROR",
		Type:       errType,
		HTTPStatus: httpStatusForType(errType),
		Message:    message,
		Err:        err,
	}
}

// IsType verifica si un error es un *Error del tipo dado
func IsType(err error, errType Type) bool {
	e, ok := err.(*Error)
	return ok && e.Type == errType
}

func httpStatusForType(errType Type) int {
	switch errType {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
