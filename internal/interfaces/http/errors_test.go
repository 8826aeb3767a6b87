package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/avicola-api/internal/application/dto"
	"github.com/jhoicas/avicola-api/internal/domain"
)

func respuestaDe(t *testing.T, err error) (int, dto.ErrorResponse, string) {
	t.Helper()

	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest("GET", "/boom", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body, string(raw)
}

// Un error no mapeado (driver, red, SQL) nunca llega al cliente: la respuesta
// es un 500 genérico y el detalle queda solo en el log.
func TestRespondError_InternoNoFiltraDetalle(t *testing.T) {
	detalle := "pgx: connection refused host=10.0.0.5 port=5432"
	status, body, raw := respuestaDe(t, errors.New(detalle))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno", body.Message)
	assert.NotContains(t, raw, "pgx")
	assert.NotContains(t, raw, "10.0.0.5")
}

func TestRespondError_ConflictoDeConcurrencia(t *testing.T) {
	status, body, _ := respuestaDe(t, domain.ErrConflict)

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body.Code)
}

func TestRespondError_StockInsuficienteConDetalle(t *testing.T) {
	err := &domain.InsufficientStockError{
		EggTypeID:   "tipo-1",
		EggTypeName: "Jumbo",
		Requested:   90,
		Available:   30,
	}
	status, body, _ := respuestaDe(t, err)

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	assert.Contains(t, body.Message, "Jumbo")
}
