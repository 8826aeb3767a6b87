package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/avicola-api/internal/application/dto"
	"github.com/jhoicas/avicola-api/internal/application/movement"
	"github.com/jhoicas/avicola-api/internal/application/reports"
	"github.com/jhoicas/avicola-api/internal/application/usecase"
	"github.com/jhoicas/avicola-api/pkg/validate"
)

// SalesHandler maneja ventas, historial y recibos (protegido).
type SalesHandler struct {
	movements *movement.MovementUseCase
	history   *usecase.SalesHistoryUseCase
	receipts  *reports.ReceiptUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(movements *movement.MovementUseCase, history *usecase.SalesHistoryUseCase, receipts *reports.ReceiptUseCase) *SalesHandler {
	return &SalesHandler{movements: movements, history: history, receipts: receipts}
}

// Create godoc
// @Summary      Registrar una venta
// @Description  RETAIL vende huevos sueltos a precio unitario; WHOLESALE vende
//
//	bandejas a precio de bandeja. El crédito requiere cliente y no
//	está permitido en RETAIL.
//
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "type, customer_id, payment_method, items"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.movements.Sell(c.Context(), actorFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de ventas del usuario autenticado
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de registros (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.TransactionResponse
// @Router       /api/sales [get]
func (h *SalesHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.history.History(c.Context(), GetUserID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Receipt godoc
// @Summary      Recibo PDF de una venta
// @Description  El vendedor solo puede descargar recibos de sus propias ventas;
//
//	MANAGER y ADMIN de cualquiera.
//
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la venta (UUID)"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SalesHandler) Receipt(c *fiber.Ctx) error {
	saleID := c.Params("id")
	pdfBytes, err := h.receipts.GenerateSaleReceipt(c.Context(), GetUserID(c), GetRole(c), saleID)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-`+saleID+`.pdf"`)
	return c.Send(pdfBytes)
}
