package carrito_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-natural-api/internal/domain"
	"github.com/jhoicas/tienda-natural-api/internal/domain/carrito"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func precio(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func agregar(t *testing.T, c *carrito.Carrito, id any, cantidad int, nombre, p string) {
	t.Helper()
	require.NoError(t, c.AgregarOIncrementar(id, cantidad, nombre, precio(p), "", "", nil))
}

// stockFijo verificador con un único valor de stock para cualquier id.
type stockFijo int

func (s stockFijo) StockDisponible(string) (int, error) { return int(s), nil }

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de ids
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizarID_FormasEquivalentes(t *testing.T) {
	assert.Equal(t, "7", carrito.NormalizarID("7"))
	assert.Equal(t, "7", carrito.NormalizarID(7))
	assert.Equal(t, "7", carrito.NormalizarID(int64(7)))
	assert.Equal(t, "7", carrito.NormalizarID(float64(7))) // JSON decodifica números así
}

// El mismo producto agregado con id string y luego numérico debe fusionarse en
// una sola línea, no duplicarse.
func TestAgregar_IDStringYNumericoFusionan(t *testing.T) {
	c := &carrito.Carrito{}
	agregar(t, c, "7", 1, "Miel de abeja", "25.00")
	require.NoError(t, c.AgregarOIncrementar(7, 2, "", decimal.Zero, "", "", nil))

	lineas := c.Lineas()
	require.Len(t, lineas, 1)
	assert.Equal(t, "7", lineas[0].ID)
	assert.Equal(t, 3, lineas[0].Cantidad)
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregar / incrementar
// ──────────────────────────────────────────────────────────────────────────────

func TestAgregar_LineaNuevaRequiereNombreYPrecio(t *testing.T) {
	c := &carrito.Carrito{}

	err := c.AgregarOIncrementar("1", 1, "", precio("10.00"), "", "", nil)
	assert.ErrorIs(t, err, domain.ErrDatosProductoFaltantes, "sin nombre no hay línea nueva")

	err = c.AgregarOIncrementar("1", 1, "Té verde", decimal.Zero, "", "", nil)
	assert.ErrorIs(t, err, domain.ErrDatosProductoFaltantes, "sin precio positivo no hay línea nueva")

	assert.True(t, c.Vacio())
}

func TestAgregar_CantidadNoPositivaSeRechaza(t *testing.T) {
	c := &carrito.Carrito{}
	assert.ErrorIs(t, c.AgregarOIncrementar("1", 0, "Té", precio("5.00"), "", "", nil), domain.ErrCantidadInvalida)
	assert.ErrorIs(t, c.AgregarOIncrementar("1", -3, "Té", precio("5.00"), "", "", nil), domain.ErrCantidadInvalida)
	assert.True(t, c.Vacio())
}

func TestAgregar_IncrementoConservaDatosOriginales(t *testing.T) {
	c := &carrito.Carrito{}
	agregar(t, c, "3", 1, "Jengibre", "8.50")
	// El segundo agregar llega sin nombre/precio: la línea existente conserva su snapshot.
	require.NoError(t, c.AgregarOIncrementar("3", 1, "otro nombre", precio("99.99"), "", "", nil))

	lineas := c.Lineas()
	require.Len(t, lineas, 1)
	assert.Equal(t, "Jengibre", lineas[0].Nombre)
	assert.True(t, precio("8.50").Equal(lineas[0].Precio))
	assert.Equal(t, 2, lineas[0].Cantidad)
}

func TestAgregar_ConservaOrdenDeInsercion(t *testing.T) {
	c := &carrito.Carrito{}
	agregar(t, c, "1", 1, "A", "1.00")
	agregar(t, c, "2", 1, "B", "2.00")
	agregar(t, c, "3", 1, "C", "3.00")
	// Incrementar el del medio no lo mueve.
	require.NoError(t, c.AgregarOIncrementar("2", 1, "", decimal.Zero, "", "", nil))

	lineas := c.Lineas()
	require.Len(t, lineas, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{lineas[0].ID, lineas[1].ID, lineas[2].ID})
}

func TestAgregar_TopeDeStock(t *testing.T) {
	c := &carrito.Carrito{}
	require.NoError(t, c.AgregarOIncrementar("1", 2, "Miel", precio("25.00"), "", "", stockFijo(3)))

	err := c.AgregarOIncrementar("1", 2, "", decimal.Zero, "", "", stockFijo(3))
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.Equal(t, 2, c.Lineas()[0].Cantidad, "el rechazo no muta la línea")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustar cantidad
// ──────────────────────────────────────────────────────────────────────────────

func TestAjustar_DecrementoEnUnoEliminaLinea(t *testing.T) {
	c := &carrito.Carrito{}
	agregar(t, c, "5", 1, "Manzanilla", "4.00")

	require.NoError(t, c.AjustarCantidad("5", -1, nil))
	assert.True(t, c.Vacio(), "cantidad 1 menos 1 elimina la línea, nunca queda en 0")
}

func TestAjustar_DecrementoNormal(t *testing.T) {
	c := &carrito.Carrito{}
	agregar(t, c, "5", 3, "Manzanilla", "4.00")

	require.NoError(t, c.AjustarCantidad("5", -1, nil))
	assert.Equal(t, 2, c.Lineas()[0].Cantidad)
}

func TestAjustar_DeltaInvalido(t *testing.T) {
	c := &carrito.Carrito{}
	agregar(t, c, "5", 3, "Manzanilla", "4.00")

	assert.ErrorIs(t, c.AjustarCantidad("5", 0, nil), domain.ErrCantidadInvalida)
	assert.ErrorIs(t, c.AjustarCantidad("5", 2, nil), domain.ErrCantidadInvalida)
	assert.Equal(t, 3, c.Lineas()[0].Cantidad)
}

func TestAjustar_IDAusenteEsNoOp(t *testing.T) {
	c := &carrito.Carrito{}
	agregar(t, c, "5", 1, "Manzanilla", "4.00")

	require.NoError(t, c.AjustarCantidad("999", 1, nil))
	require.Len(t, c.Lineas(), 1)
	assert.Equal(t, 1, c.Lineas()[0].Cantidad)
}

func TestAjustar_IncrementoRespetaStock(t *testing.T) {
	c := &carrito.Carrito{}
	agregar(t, c, "5", 2, "Manzanilla", "4.00")

	assert.ErrorIs(t, c.AjustarCantidad("5", 1, stockFijo(2)), domain.ErrStockInsuficiente)
	assert.Equal(t, 2, c.Lineas()[0].Cantidad)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminar / vaciar / totales
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminar_EsIdempotente(t *testing.T) {
	c := &carrito.Carrito{}
	agregar(t, c, "1", 1, "A", "1.00")

	c.Eliminar("1")
	c.Eliminar("1") // segunda vez: no-op
	c.Eliminar(1)   // forma numérica del mismo id: no-op
	assert.True(t, c.Vacio())
}

func TestTotales(t *testing.T) {
	c := &carrito.Carrito{}
	agregar(t, c, "1", 2, "A", "10.50")
	agregar(t, c, "2", 3, "B", "2.00")

	assert.True(t, precio("27.00").Equal(c.Total()), "2*10.50 + 3*2.00")
	assert.Equal(t, 5, c.CantidadTotal())
}

func TestVaciar(t *testing.T) {
	c := &carrito.Carrito{}
	agregar(t, c, "1", 2, "A", "10.50")
	c.Vaciar()
	assert.True(t, c.Vacio())
	assert.True(t, c.Total().IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Serialización
// ──────────────────────────────────────────────────────────────────────────────

// Serializar y deserializar las líneas reproduce la misma lista en el mismo orden.
func TestLineas_IdaYVuelta(t *testing.T) {
	c := &carrito.Carrito{}
	agregar(t, c, "2", 1, "B", "2.00")
	agregar(t, c, "1", 3, "A", "10.50")

	data, err := json.Marshal(c.Lineas())
	require.NoError(t, err)

	var recuperadas []carrito.Linea
	require.NoError(t, json.Unmarshal(data, &recuperadas))

	restaurado := carrito.Desde(recuperadas)
	assert.Equal(t, c.CantidadTotal(), restaurado.CantidadTotal())
	assert.True(t, c.Total().Equal(restaurado.Total()))
	require.Len(t, restaurado.Lineas(), 2)
	assert.Equal(t, "2", restaurado.Lineas()[0].ID, "el orden de inserción se conserva")
}
