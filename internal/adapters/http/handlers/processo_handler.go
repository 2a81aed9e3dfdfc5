package handlers

import (
	"sema-licenca/internal/core/services"
	"sema-licenca/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ProcessoHandler handles licensing-process endpoints
type ProcessoHandler struct {
	processoService *services.ProcessoService
}

// NewProcessoHandler creates a new processo handler
func NewProcessoHandler(processoService *services.ProcessoService) *ProcessoHandler {
	return &ProcessoHandler{processoService: processoService}
}

// Create handles process creation
// @Summary Create process
// @Description Open a new licensing process in draft status
// @Tags Processos
// @Accept json
// @Produce json
// @Param body body services.CreateProcessoInput true "Process data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Router /api/v1/processos [post]
func (h *ProcessoHandler) Create(c *fiber.Ctx) error {
	var req services.CreateProcessoInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}
	if req.UserID == "" {
		return response.BadRequest(c, "user_id é obrigatório")
	}

	row, err := h.processoService.Create(c.Context(), bearerToken(c), &req)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// UpsertDadosGerais handles the general-data form
// @Summary Upsert dados gerais
// @Description Save the general-data form of a process
// @Tags Processos
// @Accept json
// @Produce json
// @Param processo_id path string true "Process ID"
// @Param body body services.DadosGeraisInput true "General data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Router /api/v1/processos/{processo_id}/dados-gerais [put]
func (h *ProcessoHandler) UpsertDadosGerais(c *fiber.Ctx) error {
	processoID := c.Params("processo_id")

	var req services.DadosGeraisInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}
	if req.ProcessoID != "" && req.ProcessoID != processoID {
		return response.BadRequest(c, "processo_id do corpo diverge do processo_id da URL")
	}
	req.ProcessoID = processoID

	row, err := h.processoService.UpsertDadosGerais(c.Context(), bearerToken(c), &req)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(row)
}

// AddLocalizacao handles adding a location to a process
// @Summary Add localização
// @Description Add one location to a process
// @Tags Processos
// @Accept json
// @Produce json
// @Param processo_id path string true "Process ID"
// @Param body body services.LocalizacaoInput true "Location data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Router /api/v1/processos/{processo_id}/localizacoes [post]
func (h *ProcessoHandler) AddLocalizacao(c *fiber.Ctx) error {
	processoID := c.Params("processo_id")

	var req services.LocalizacaoInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}
	if req.ProcessoID != "" && req.ProcessoID != processoID {
		return response.BadRequest(c, "processo_id do corpo diverge do processo_id da URL")
	}
	req.ProcessoID = processoID

	row, err := h.processoService.AddLocalizacao(c.Context(), bearerToken(c), &req)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// GetWizardStatus handles the wizard completion summary
// @Summary Get wizard status
// @Description Read the registration-wizard completion summary of a process
// @Tags Processos
// @Produce json
// @Param processo_id path string true "Process ID"
// @Success 200 {object} services.WizardStatus
// @Failure 404 {object} response.ErrorBody
// @Router /api/v1/processos/{processo_id}/wizard-status [get]
func (h *ProcessoHandler) GetWizardStatus(c *fiber.Ctx) error {
	status, err := h.processoService.GetWizardStatus(c.Context(), bearerToken(c), c.Params("processo_id"))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(status)
}

// Submit handles process submission
// @Summary Submit process
// @Description Validate the wizard and move the process to in_review
// @Tags Processos
// @Produce json
// @Param processo_id path string true "Process ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/v1/processos/{processo_id}/submit [post]
func (h *ProcessoHandler) Submit(c *fiber.Ctx) error {
	row, err := h.processoService.Submit(c.Context(), bearerToken(c), c.Params("processo_id"))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(row)
}
