package handlers

import (
	"strconv"

	"sema-licenca/internal/core/services"
	"sema-licenca/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PessoaHandler handles person-registry endpoints
type PessoaHandler struct {
	pessoaService *services.PessoaService
}

// NewPessoaHandler creates a new pessoa handler
func NewPessoaHandler(pessoaService *services.PessoaService) *PessoaHandler {
	return &PessoaHandler{pessoaService: pessoaService}
}

// CreateFisica handles pessoa física registration
// @Summary Create pessoa física
// @Description Register a natural person
// @Tags Pessoas
// @Accept json
// @Produce json
// @Param body body services.PessoaFisicaInput true "Person data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Router /api/v1/pessoas/fisica [post]
func (h *PessoaHandler) CreateFisica(c *fiber.Ctx) error {
	var req services.PessoaFisicaInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}
	if req.Nome == "" {
		return response.BadRequest(c, "Nome é obrigatório")
	}
	if req.CPF == "" {
		return response.BadRequest(c, "CPF é obrigatório")
	}

	row, err := h.pessoaService.CreateFisica(c.Context(), bearerToken(c), &req)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// CreateJuridica handles pessoa jurídica registration
// @Summary Create pessoa jurídica
// @Description Register a company
// @Tags Pessoas
// @Accept json
// @Produce json
// @Param body body services.PessoaJuridicaInput true "Company data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Router /api/v1/pessoas/juridica [post]
func (h *PessoaHandler) CreateJuridica(c *fiber.Ctx) error {
	var req services.PessoaJuridicaInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}
	if req.RazaoSocial == "" {
		return response.BadRequest(c, "Razão social é obrigatória")
	}
	if req.CNPJ == "" {
		return response.BadRequest(c, "CNPJ é obrigatório")
	}

	row, err := h.pessoaService.CreateJuridica(c.Context(), bearerToken(c), &req)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// CreateEstrangeira handles pessoa estrangeira registration
// @Summary Create pessoa estrangeira
// @Description Register a foreign person
// @Tags Pessoas
// @Accept json
// @Produce json
// @Param body body services.PessoaEstrangeiraInput true "Foreign person data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Router /api/v1/pessoas/estrangeira [post]
func (h *PessoaHandler) CreateEstrangeira(c *fiber.Ctx) error {
	var req services.PessoaEstrangeiraInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}
	if req.Nome == "" {
		return response.BadRequest(c, "Nome é obrigatório")
	}
	if req.IdentificacaoEstrangeira == "" {
		return response.BadRequest(c, "Identificação estrangeira é obrigatória")
	}

	row, err := h.pessoaService.CreateEstrangeira(c.Context(), bearerToken(c), &req)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// List handles pessoa listing
// @Summary List pessoas
// @Description List people newest first, filterable by tipo and status
// @Tags Pessoas
// @Produce json
// @Param tipo query int false "Person kind (1 física, 2 jurídica, 3 estrangeira)"
// @Param status query int false "Status filter"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {array} map[string]interface{}
// @Router /api/v1/pessoas [get]
func (h *PessoaHandler) List(c *fiber.Ctx) error {
	query := &services.ListPessoasQuery{
		Limit:  c.QueryInt("limit", 100),
		Offset: c.QueryInt("offset", 0),
	}
	if v := c.Query("tipo"); v != "" {
		tipo, err := strconv.Atoi(v)
		if err != nil {
			return response.BadRequest(c, "tipo deve ser numérico")
		}
		query.Tipo = &tipo
	}
	if v := c.Query("status"); v != "" {
		status, err := strconv.Atoi(v)
		if err != nil {
			return response.BadRequest(c, "status deve ser numérico")
		}
		query.Status = &status
	}

	rows, err := h.pessoaService.List(c.Context(), bearerToken(c), query)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(rows)
}

// Get handles fetching one pessoa
// @Summary Get pessoa
// @Description Fetch one person by primary key
// @Tags Pessoas
// @Produce json
// @Param pkpessoa path int true "Person primary key"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.ErrorBody
// @Router /api/v1/pessoas/{pkpessoa} [get]
func (h *PessoaHandler) Get(c *fiber.Ctx) error {
	pk, err := c.ParamsInt("pkpessoa")
	if err != nil {
		return response.BadRequest(c, "pkpessoa deve ser numérico")
	}

	row, err := h.pessoaService.Get(c.Context(), bearerToken(c), pk)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(row)
}

// Update handles partial pessoa updates
// @Summary Update pessoa
// @Description Patch a person row with the provided fields
// @Tags Pessoas
// @Accept json
// @Produce json
// @Param pkpessoa path int true "Person primary key"
// @Param body body map[string]interface{} true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/v1/pessoas/{pkpessoa} [put]
func (h *PessoaHandler) Update(c *fiber.Ctx) error {
	pk, err := c.ParamsInt("pkpessoa")
	if err != nil {
		return response.BadRequest(c, "pkpessoa deve ser numérico")
	}

	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}
	// Immutable columns
	delete(fields, "pkpessoa")
	delete(fields, "tipo")
	delete(fields, "datacadastro")

	row, err := h.pessoaService.Update(c.Context(), bearerToken(c), pk, fields)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(row)
}

// Delete handles pessoa removal
// @Summary Delete pessoa
// @Description Remove a person row
// @Tags Pessoas
// @Produce json
// @Param pkpessoa path int true "Person primary key"
// @Success 204
// @Failure 404 {object} response.ErrorBody
// @Router /api/v1/pessoas/{pkpessoa} [delete]
func (h *PessoaHandler) Delete(c *fiber.Ctx) error {
	pk, err := c.ParamsInt("pkpessoa")
	if err != nil {
		return response.BadRequest(c, "pkpessoa deve ser numérico")
	}

	if err := h.pessoaService.Delete(c.Context(), bearerToken(c), pk); err != nil {
		return upstreamError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
