package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/pkg/jwt"
)

// Locals keys para UserID y CompanyID en Fiber.
const (
	LocalUserID    = "user_id"
	LocalCompanyID = "company_id"
)

// AuthMiddleware valida el Bearer Token JWT (firma, expiración y emisor) y extrae UserID y
// CompanyID a c.Locals.
func AuthMiddleware(jwtSecret, issuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, issuer, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalCompanyID, claims.CompanyID)
		return c.Next()
	}
}

// RequireCompanyParam rechaza peticiones cuyo :company_id no coincide con la empresa del token.
// Sin token en el contexto (auth deshabilitada) deja pasar.
func RequireCompanyParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenCompany, ok := GetCompanyID(c)
		if !ok {
			return c.Next()
		}
		pathCompany, err := strconv.ParseInt(c.Params(param), 10, 64)
		if err != nil {
			// el handler responde 400
			return c.Next()
		}
		if pathCompany != tokenCompany {
			return writeError(c, domain.ErrForbidden)
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del token para el contexto de logs; vacío si auth está deshabilitada.
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetCompanyID devuelve el CompanyID del token, si la petición fue autenticada.
func GetCompanyID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(LocalCompanyID).(int64)
	return id, ok
}
