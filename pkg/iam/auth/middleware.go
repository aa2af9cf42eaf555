package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/talenta-pe/talenta/pkg/iam"
	"github.com/talenta-pe/talenta/pkg/kernel"
)

// TokenMiddleware autentica peticiones vía JWT y construye el AuthContext
type TokenMiddleware struct {
	tokenService TokenService
}

// NewTokenMiddleware crea un nuevo middleware de autenticación
func NewTokenMiddleware(tokenService TokenService) *TokenMiddleware {
	return &TokenMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate valida el token y deja el AuthContext en los locals
func (am *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string

		authHeader := c.Get("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" && parts[1] != "" {
				token = parts[1]
			}
		}

		if token == "" {
			token = c.Cookies("access_token")
		}

		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": iam.ErrUnauthorized().Error(),
			})
		}

		claims, err := am.tokenService.ValidateAccessToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		authContext := &kernel.AuthContext{
			UserID: &claims.UserID,
			Email:  claims.Email,
			Name:   claims.Name,
			Scopes: claims.Scopes,
		}

		c.Locals("auth", authContext)
		return c.Next()
	}
}

// RequireScope exige un scope específico
func (am *TokenMiddleware) RequireScope(scope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authContext, ok := GetAuthContext(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		if !authContext.HasScope(scope) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":          "Insufficient permissions",
				"required_scope": scope,
			})
		}

		return c.Next()
	}
}

// RequireAnyScope exige alguno de los scopes dados
func (am *TokenMiddleware) RequireAnyScope(scopes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authContext, ok := GetAuthContext(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		if !authContext.HasAnyScope(scopes...) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":           "Insufficient permissions",
				"required_scopes": scopes,
			})
		}

		return c.Next()
	}
}

// GetAuthContext obtiene el AuthContext de los locals de Fiber
func GetAuthContext(c *fiber.Ctx) (*kernel.AuthContext, bool) {
	authContext, ok := c.Locals("auth").(*kernel.AuthContext)
	return authContext, ok
}
