package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pedidos-api/internal/application/auth"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
)

// LocalUserID clave en c.Locals con el id del vendedor autenticado.
const LocalUserID = "user_id"

// SessionMiddleware resuelve la sesión del header Authorization ("Bearer <token>" o el token
// solo) y la adjunta al UserContext. Sin token, o con token inválido, la petición sigue anónima.
func SessionMiddleware(authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := authUC.ResolveSession(bearerToken(c.Get("Authorization")))
		if session != nil {
			c.SetUserContext(auth.WithSession(c.UserContext(), session))
			c.Locals(LocalUserID, session.ID)
		}
		return c.Next()
	}
}

// RequireSession corta con 401 las peticiones anónimas. Va después de SessionMiddleware.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el id del vendedor (después de SessionMiddleware), o "" si es anónimo.
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}
