package handlers

import (
	"sema-licenca/internal/core/services"
	"sema-licenca/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ConsumoAguaHandler handles the water-consumption form endpoints
type ConsumoAguaHandler struct {
	aguaService *services.ConsumoAguaService
}

// NewConsumoAguaHandler creates a new consumo-de-água handler
func NewConsumoAguaHandler(aguaService *services.ConsumoAguaService) *ConsumoAguaHandler {
	return &ConsumoAguaHandler{aguaService: aguaService}
}

// Upsert handles saving the form
// @Summary Upsert water-consumption form
// @Description Save the water-consumption form of a process (1:1 via processo_id)
// @Tags Consumo de Água
// @Accept json
// @Produce json
// @Param body body services.ConsumoAguaInput true "Form data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Router /api/v1/consumo-de-agua [post]
func (h *ConsumoAguaHandler) Upsert(c *fiber.Ctx) error {
	var req services.ConsumoAguaInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}
	if req.ProcessoID == "" {
		return response.BadRequest(c, "processo_id é obrigatório")
	}

	row, err := h.aguaService.Upsert(c.Context(), bearerToken(c), &req)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// Get handles fetching the form
// @Summary Get water-consumption form
// @Description Fetch the water-consumption form of a process
// @Tags Consumo de Água
// @Produce json
// @Param processo_id path string true "Process ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.ErrorBody
// @Router /api/v1/consumo-de-agua/{processo_id} [get]
func (h *ConsumoAguaHandler) Get(c *fiber.Ctx) error {
	row, err := h.aguaService.Get(c.Context(), bearerToken(c), c.Params("processo_id"))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(row)
}

// Delete handles removing the form
// @Summary Delete water-consumption form
// @Description Remove the water-consumption form of a process
// @Tags Consumo de Água
// @Produce json
// @Param processo_id path string true "Process ID"
// @Success 204
// @Failure 404 {object} response.ErrorBody
// @Router /api/v1/consumo-de-agua/{processo_id} [delete]
func (h *ConsumoAguaHandler) Delete(c *fiber.Ctx) error {
	if err := h.aguaService.Delete(c.Context(), bearerToken(c), c.Params("processo_id")); err != nil {
		return upstreamError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
