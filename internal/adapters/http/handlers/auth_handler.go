package handlers

import (
	"errors"
	"strings"

	"sema-licenca/internal/core/domain"
	"sema-licenca/internal/core/services"
	"sema-licenca/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Login               string `json:"login"`
	Senha               string `json:"senha"`
	TipoDeIdentificacao string `json:"tipoDeIdentificacao"`
}

// Login handles user login
// @Summary Login user
// @Description Authenticate against the legacy registry by cpf, cnpj, passaporte or foreign id
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} services.LoginResult
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	// Validate required fields
	if req.Login == "" {
		return response.BadRequest(c, "Login é obrigatório")
	}
	if req.Senha == "" {
		return response.BadRequest(c, "Senha é obrigatória")
	}

	input := &services.LoginInput{
		Login:               strings.TrimSpace(req.Login),
		Senha:               req.Senha,
		TipoDeIdentificacao: strings.TrimSpace(req.TipoDeIdentificacao),
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedIdentification):
			return response.BadRequest(c, "Tipo de identificação não suportado")
		case errors.Is(err, domain.ErrEmptyLogin):
			return response.BadRequest(c, "Login é obrigatório")
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.Unauthorized(c, "Credenciais inválidas.")
		case errors.Is(err, domain.ErrAccountDisabled):
			return response.Forbidden(c, "Conta inativa ou bloqueada.")
		default:
			return response.InternalServerError(c, "Erro interno do servidor")
		}
	}

	return c.JSON(result)
}
