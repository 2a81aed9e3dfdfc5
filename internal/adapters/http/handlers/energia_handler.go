package handlers

import (
	"sema-licenca/internal/core/services"
	"sema-licenca/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EnergiaHandler handles the energy-resources form endpoints
type EnergiaHandler struct {
	energiaService *services.EnergiaService
}

// NewEnergiaHandler creates a new uso-recursos-energia handler
func NewEnergiaHandler(energiaService *services.EnergiaService) *EnergiaHandler {
	return &EnergiaHandler{energiaService: energiaService}
}

// energiaRequest carries the form plus the fuel list in one body
type energiaRequest struct {
	services.UsoRecursosInput
	CombustiveisEnergia []services.CombustivelItem `json:"combustiveis_energia"`
}

// Upsert handles saving the form and replacing its fuel list
// @Summary Upsert energy-resources form
// @Description Save the energy form and wholesale-replace its fuel list (1:1 via processo_id)
// @Tags Uso de Recursos e Energia
// @Accept json
// @Produce json
// @Param body body services.UsoRecursosInput true "Form data"
// @Success 201 {object} services.UsoRecursosResult
// @Failure 400 {object} response.ErrorBody
// @Router /api/v1/uso-recursos-energia [post]
func (h *EnergiaHandler) Upsert(c *fiber.Ctx) error {
	var req energiaRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}
	if req.ProcessoID == "" {
		return response.BadRequest(c, "processo_id é obrigatório")
	}
	req.UsoRecursosInput.Combustiveis = req.CombustiveisEnergia

	result, err := h.energiaService.Upsert(c.Context(), bearerToken(c), &req.UsoRecursosInput)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// Get handles fetching the form
// @Summary Get energy-resources form
// @Description Fetch the energy form and its fuel list
// @Tags Uso de Recursos e Energia
// @Produce json
// @Param processo_id path string true "Process ID"
// @Success 200 {object} services.UsoRecursosResult
// @Failure 404 {object} response.ErrorBody
// @Router /api/v1/uso-recursos-energia/{processo_id} [get]
func (h *EnergiaHandler) Get(c *fiber.Ctx) error {
	result, err := h.energiaService.Get(c.Context(), bearerToken(c), c.Params("processo_id"))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(result)
}

// Delete handles removing the form and its fuel list
// @Summary Delete energy-resources form
// @Description Remove the energy form and its fuel list
// @Tags Uso de Recursos e Energia
// @Produce json
// @Param processo_id path string true "Process ID"
// @Success 204
// @Failure 404 {object} response.ErrorBody
// @Router /api/v1/uso-recursos-energia/{processo_id} [delete]
func (h *EnergiaHandler) Delete(c *fiber.Ctx) error {
	if err := h.energiaService.Delete(c.Context(), bearerToken(c), c.Params("processo_id")); err != nil {
		return upstreamError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
