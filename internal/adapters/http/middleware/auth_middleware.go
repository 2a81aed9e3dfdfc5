package middleware

import (
	"strings"

	"sema-licenca/internal/config"
	"sema-licenca/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SupabaseAuth verifies incoming Supabase bearer tokens when the project
// JWT secret is configured. Without a secret the token is forwarded
// upstream untouched and PostgREST enforces access itself.
func SupabaseAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Supabase.JWTSecret == "" {
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Next()
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.Supabase.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "Token de acesso inválido ou expirado")
		}

		if sub, err := claims.GetSubject(); err == nil {
			c.Locals("userID", sub)
		}
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}

		return c.Next()
	}
}
