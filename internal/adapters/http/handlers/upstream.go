package handlers

import (
	"errors"

	"sema-licenca/internal/adapters/postgrest"
	"sema-licenca/internal/core/domain"
	"sema-licenca/internal/core/services"
	"sema-licenca/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// upstreamError maps service/PostgREST failures to the gateway response.
// Upstream HTTP errors keep their status and body untouched.
func upstreamError(c *fiber.Ctx, err error) error {
	var restErr *postgrest.Error
	var validationErr *services.ValidationError

	switch {
	case errors.As(err, &restErr):
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(restErr.StatusCode).Send(restErr.Body)
	case errors.As(err, &validationErr):
		return response.ValidationError(c, "Processo não pode ser submetido", validationErr.Errors)
	case errors.Is(err, postgrest.ErrUnreachable):
		return response.ServiceUnavailable(c, "Serviço de dados indisponível no momento")
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, "Registro não encontrado")
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, err.Error())
	default:
		return response.InternalServerError(c, "Erro interno do servidor")
	}
}

// bearerToken extracts the raw Authorization header for passthrough
func bearerToken(c *fiber.Ctx) string {
	return c.Get(fiber.HeaderAuthorization)
}
