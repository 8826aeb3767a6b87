package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/avicola-api/internal/application/dto"
	"github.com/jhoicas/avicola-api/internal/application/movement"
	"github.com/jhoicas/avicola-api/pkg/validate"
)

// ReconciliationHandler maneja el arqueo de inventario de vendedores (staff).
type ReconciliationHandler struct {
	movements *movement.MovementUseCase
}

// NewReconciliationHandler construye el handler.
func NewReconciliationHandler(movements *movement.MovementUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{movements: movements}
}

// Reconcile godoc
// @Summary      Arqueo de inventario de un vendedor
// @Description  Reemplaza los contadores por el conteo físico y registra la
//
//	varianza por tipo de huevo. Los tipos no incluidos no se tocan.
//
// @Tags         reconciliation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReconciliationRequest  true  "sales_person_id, items"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reconciliation [post]
func (h *ReconciliationHandler) Reconcile(c *fiber.Ctx) error {
	var in dto.ReconciliationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.movements.Reconcile(c.Context(), actorFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
