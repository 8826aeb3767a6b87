package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/avicola-api/internal/application/dto"
	"github.com/jhoicas/avicola-api/internal/application/usecase"
	"github.com/jhoicas/avicola-api/pkg/validate"
)

// EggTypeHandler maneja el catálogo de tipos de huevo.
type EggTypeHandler struct {
	uc *usecase.EggTypeUseCase
}

// NewEggTypeHandler construye el handler.
func NewEggTypeHandler(uc *usecase.EggTypeUseCase) *EggTypeHandler {
	return &EggTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de huevo
// @Tags         egg-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEggTypeRequest  true  "name, price_tray_wholesale, price_unit_retail"
// @Success      201   {object}  dto.EggTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/egg-types [post]
func (h *EggTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEggTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tipos de huevo
// @Tags         egg-types
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EggTypeResponse
// @Router       /api/egg-types [get]
func (h *EggTypeHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// UpdatePrices godoc
// @Summary      Actualizar precios de un tipo de huevo
// @Tags         egg-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tipo (UUID)"
// @Param        body  body  dto.UpdatePricesRequest  true  "price_tray_wholesale, price_unit_retail"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/egg-types/{id}/prices [put]
func (h *EggTypeHandler) UpdatePrices(c *fiber.Ctx) error {
	var in dto.UpdatePricesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdatePrices(c.Context(), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "precios actualizados"})
}
