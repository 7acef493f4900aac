package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-natural-api/internal/application/dto"
)

// El id de producto llega como string o como número según la página que lo
// envíe; ambos deben normalizar a la misma forma canónica.
func TestIDProducto_StringYNumeroEquivalen(t *testing.T) {
	type cuerpo struct {
		ID dto.IDProducto `json:"id"`
	}

	var comoString, comoNumero cuerpo
	require.NoError(t, json.Unmarshal([]byte(`{"id":"7"}`), &comoString))
	require.NoError(t, json.Unmarshal([]byte(`{"id":7}`), &comoNumero))

	assert.Equal(t, "7", comoString.ID.String())
	assert.Equal(t, comoString.ID, comoNumero.ID)
}

func TestIDProducto_NumeroConDecimalTrunca(t *testing.T) {
	var c struct {
		ID dto.IDProducto `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"id":7.0}`), &c))
	assert.Equal(t, "7", c.ID.String())
}

func TestIDProducto_NullQuedaVacio(t *testing.T) {
	var c struct {
		ID dto.IDProducto `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"id":null}`), &c))
	assert.Equal(t, "", c.ID.String())
}

func TestIDProducto_Int64(t *testing.T) {
	n, ok := dto.IDProducto("42").Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)

	_, ok = dto.IDProducto("abc").Int64()
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestPageRequest_PageSeTraduceAOffset(t *testing.T) {
	casos := []struct {
		nombre     string
		in         dto.PageRequest
		wantLimit  int
		wantOffset int
	}{
		{"sin parámetros", dto.PageRequest{}, 20, 0},
		{"página 1 es el inicio", dto.PageRequest{Page: 1}, 20, 0},
		{"página 3 con límite por defecto", dto.PageRequest{Page: 3}, 20, 40},
		{"página con límite explícito", dto.PageRequest{Page: 2, Limit: 6}, 6, 6},
		{"offset directo sin page", dto.PageRequest{Offset: 15}, 20, 15},
		{"page manda sobre offset", dto.PageRequest{Page: 2, Offset: 99}, 20, 20},
	}
	for _, caso := range casos {
		caso.in.DefaultPage()
		assert.Equal(t, caso.wantLimit, caso.in.Limit, caso.nombre)
		assert.Equal(t, caso.wantOffset, caso.in.Offset, caso.nombre)
	}
}
