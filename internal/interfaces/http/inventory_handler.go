package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/application/inventory"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

// InventoryHandler maneja los cambios de existencias.
type InventoryHandler struct {
	uc  *inventory.RegisterChangeUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.RegisterChangeUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// RegisterChange godoc
// @Summary      Registrar cambio de inventario
// @Description  Aplica un delta (positivo = entrada, negativo = venta/salida) y lo deja en el historial.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterChangeRequest  true  "product_id, warehouse_id, change_quantity, reason"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventory/changes [post]
func (h *InventoryHandler) RegisterChange(c *fiber.Ctx) error {
	var in dto.RegisterChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterChange(c.UserContext(), in)
	if err != nil {
		if !isClientError(err) {
			h.log.Error().Err(err).Str("user_id", GetUserID(c)).Int64("product_id", in.ProductID).Int64("warehouse_id", in.WarehouseID).Msg("register change")
		}
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
