package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de swagger paniquea al arrancar si el archivo no existe:
// el spec estático tiene que venir en el repo y ser JSON válido.
func TestSwaggerSpecExisteYEsValido(t *testing.T) {
	data, err := os.ReadFile("../../docs/swagger.json")
	require.NoError(t, err, "docs/swagger.json debe existir, el servidor no arranca sin él")

	var spec struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(data, &spec))
	assert.Equal(t, "2.0", spec.Swagger)

	for _, ruta := range []string{
		"/health",
		"/api/auth/login",
		"/api/inventory",
		"/api/inventory/transfer",
		"/api/inventory/damages",
		"/api/sales",
		"/api/sales/{id}/receipt",
		"/api/reconciliation",
		"/api/egg-types",
		"/api/customers",
		"/api/users",
		"/api/dashboard/stats",
	} {
		assert.Contains(t, spec.Paths, ruta)
	}
}
