package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/avicola-api/internal/application/dto"
	"github.com/jhoicas/avicola-api/internal/application/movement"
	"github.com/jhoicas/avicola-api/internal/application/usecase"
	"github.com/jhoicas/avicola-api/pkg/validate"
)

// InventoryHandler maneja inventario y los movimientos de stock (protegido).
type InventoryHandler struct {
	movements  *movement.MovementUseCase
	stockQuery *usecase.StockQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(movements *movement.MovementUseCase, stockQuery *usecase.StockQueryUseCase) *InventoryHandler {
	return &InventoryHandler{movements: movements, stockQuery: stockQuery}
}

func actorFrom(c *fiber.Ctx) movement.Actor {
	return movement.Actor{UserID: GetUserID(c), Role: GetRole(c)}
}

// GetInventory godoc
// @Summary      Inventario de un holder
// @Description  Sin user_id devuelve el inventario propio. Con user_id de otro
//
//	usuario se requiere rol MANAGER o ADMIN.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        user_id  query  string  false  "Holder a consultar (UUID)"
// @Success      200  {array}   dto.StockResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	target := c.Query("user_id")
	if target == "" {
		target = GetUserID(c)
	}
	list, err := h.stockQuery.GetInventory(c.Context(), GetUserID(c), GetRole(c), target)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// StockIn godoc
// @Summary      Entrada de stock por compra a proveedor
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "egg_type_id, quantity_trays, cost_per_tray, supplier_name"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.movements.StockIn(c.Context(), actorFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Transfer godoc
// @Summary      Transferir stock a un vendedor
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "to_user_id, egg_type_id, quantity_trays"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfer [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.movements.Transfer(c.Context(), actorFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ReportDamage godoc
// @Summary      Registrar huevos dañados
// @Description  quantity_cracked + quantity_spoiled debe sumar quantity_damaged.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DamageRequest  true  "egg_type_id, quantity_damaged, quantity_cracked, quantity_spoiled"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/damages [post]
func (h *InventoryHandler) ReportDamage(c *fiber.Ctx) error {
	var in dto.DamageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.movements.ReportDamage(c.Context(), actorFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
