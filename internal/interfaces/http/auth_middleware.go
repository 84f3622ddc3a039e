package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
)

// LocalUser clave de Locals donde queda el usuario resuelto por el middleware.
const LocalUser = "current_user"

// AuthMiddleware valida el Bearer Token, resuelve el subject (email) a un usuario
// vivo y lo deja en c.Locals. Toda falla responde igual: 401 con WWW-Authenticate,
// sin distinguir token ausente, malformado, expirado o usuario inexistente.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c)
		}
		subject, err := pkgjwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthorized(c)
		}
		user, err := users.GetByEmail(subject)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if user == nil {
			return unauthorized(c)
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Code:    "UNAUTHORIZED",
		Message: "Could not validate credentials",
	})
}

// CurrentUser devuelve el usuario del contexto (después del middleware de auth).
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
