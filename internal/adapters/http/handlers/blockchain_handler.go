package handlers

import (
	"sema-licenca/internal/core/services"
	"sema-licenca/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BlockchainHandler handles blockchain registration endpoints
type BlockchainHandler struct {
	blockchainService *services.BlockchainService
}

// NewBlockchainHandler creates a new blockchain handler
func NewBlockchainHandler(blockchainService *services.BlockchainService) *BlockchainHandler {
	return &BlockchainHandler{blockchainService: blockchainService}
}

// Register handles block registration
// @Summary Register block
// @Description Register a process snapshot on the blockchain gateway and relay its response
// @Tags Blockchain
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "Block payload"
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} response.ErrorBody
// @Router /api/v1/blockchain/register [post]
func (h *BlockchainHandler) Register(c *fiber.Ctx) error {
	var req services.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}
	if req.Data == nil {
		return response.BadRequest(c, "Data é obrigatório")
	}

	status, body, err := h.blockchainService.Register(c.Context(), &req)
	if err != nil {
		return response.ServiceUnavailable(c, "Serviço de blockchain indisponível no momento")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(status).Send(body)
}
