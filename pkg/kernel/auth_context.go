package kernel

// AuthContext lleva la identidad y capacidades del actor autenticado.
// Se construye en el middleware y se pasa explícitamente a los servicios:
// la lógica de negocio nunca lee estado ambiental.
type AuthContext struct {
	UserID *UserID  `json:"user_id,omitempty"`
	Email  string   `json:"email,omitempty"`
	Name   string   `json:"name,omitempty"`
	Scopes []string `json:"scopes"`
}

// HasScope verifica si el contexto tiene un scope específico.
// Soporta wildcard global "*" y por dominio ("interviews:*" cubre "interviews:read").
func (a *AuthContext) HasScope(scope string) bool {
	for _, s := range a.Scopes {
		if s == scope || s == "*" {
			return true
		}
		if len(s) > 2 && s[len(s)-2:] == ":*" {
			prefix := s[:len(s)-2]
			if len(scope) > len(prefix) && scope[:len(prefix)] == prefix && scope[len(prefix)] == ':' {
				return true
			}
		}
	}
	return false
}

// HasAnyScope verifica si el contexto tiene alguno de los scopes
func (a *AuthContext) HasAnyScope(scopes ...string) bool {
	for _, scope := range scopes {
		if a.HasScope(scope) {
			return true
		}
	}
	return false
}

// HasAllScopes verifica si el contexto tiene todos los scopes
func (a *AuthContext) HasAllScopes(scopes ...string) bool {
	for _, scope := range scopes {
		if !a.HasScope(scope) {
			return false
		}
	}
	return true
}

// IsAdmin verifica si el contexto tiene permisos de administrador
func (a *AuthContext) IsAdmin() bool {
	return a.HasScope("*") || a.HasScope("admin:*")
}
