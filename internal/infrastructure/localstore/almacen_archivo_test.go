package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-natural-api/internal/domain/carrito"
	"github.com/jhoicas/tienda-natural-api/internal/infrastructure/localstore"
)

func nuevoAlmacen(t *testing.T) (*localstore.AlmacenArchivo, string) {
	t.Helper()
	dir := t.TempDir()
	a, err := localstore.NewAlmacenArchivo(dir, nil)
	require.NoError(t, err)
	return a, dir
}

func lineasDePrueba() []carrito.Linea {
	p1, _ := decimal.NewFromString("25.00")
	p2, _ := decimal.NewFromString("8.50")
	return []carrito.Linea{
		{ID: "7", Nombre: "Miel de abeja", Precio: p1, Cantidad: 2, Imagen: "/img/miel.jpg"},
		{ID: "3", Nombre: "Jengibre", Precio: p2, Cantidad: 1},
	}
}

// Guardar y cargar reproduce la misma lista en el mismo orden.
func TestAlmacen_IdaYVuelta(t *testing.T) {
	a, _ := nuevoAlmacen(t)
	original := lineasDePrueba()

	require.NoError(t, a.Guardar("u1", original))
	recuperadas, err := a.Cargar("u1")
	require.NoError(t, err)

	require.Len(t, recuperadas, 2)
	assert.Equal(t, "7", recuperadas[0].ID)
	assert.Equal(t, "3", recuperadas[1].ID)
	assert.Equal(t, original[0].Nombre, recuperadas[0].Nombre)
	assert.True(t, original[0].Precio.Equal(recuperadas[0].Precio))
	assert.Equal(t, original[0].Cantidad, recuperadas[0].Cantidad)
}

func TestAlmacen_ClaveAusenteCargaVacio(t *testing.T) {
	a, _ := nuevoAlmacen(t)
	lineas, err := a.Cargar("nunca-guardado")
	require.NoError(t, err)
	assert.NotNil(t, lineas)
	assert.Empty(t, lineas)
}

// Contenido corrupto no es fatal: carga como carrito vacío.
func TestAlmacen_ContenidoCorruptoCargaVacio(t *testing.T) {
	a, dir := nuevoAlmacen(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "u1.json"), []byte("{esto no es json"), 0o644))

	lineas, err := a.Cargar("u1")
	require.NoError(t, err)
	assert.Empty(t, lineas)
}

// Guardar sobreescribe la entrada completa, no fusiona.
func TestAlmacen_GuardarSobreescribe(t *testing.T) {
	a, _ := nuevoAlmacen(t)
	require.NoError(t, a.Guardar("u1", lineasDePrueba()))
	require.NoError(t, a.Guardar("u1", lineasDePrueba()[:1]))

	lineas, err := a.Cargar("u1")
	require.NoError(t, err)
	require.Len(t, lineas, 1)
	assert.Equal(t, "7", lineas[0].ID)
}

func TestAlmacen_EliminarEsIdempotente(t *testing.T) {
	a, _ := nuevoAlmacen(t)
	require.NoError(t, a.Guardar("u1", lineasDePrueba()))

	require.NoError(t, a.Eliminar("u1"))
	require.NoError(t, a.Eliminar("u1"))

	lineas, err := a.Cargar("u1")
	require.NoError(t, err)
	assert.Empty(t, lineas)
}

// Claves independientes no se pisan entre sí.
func TestAlmacen_ClavesIndependientes(t *testing.T) {
	a, _ := nuevoAlmacen(t)
	require.NoError(t, a.Guardar("u1", lineasDePrueba()))
	require.NoError(t, a.Guardar("u2", lineasDePrueba()[:1]))

	l1, err := a.Cargar("u1")
	require.NoError(t, err)
	l2, err := a.Cargar("u2")
	require.NoError(t, err)
	assert.Len(t, l1, 2)
	assert.Len(t, l2, 1)
}

// Una clave con separadores de ruta no escapa del directorio del almacén.
func TestAlmacen_ClaveConSeparadoresNoEscapa(t *testing.T) {
	a, dir := nuevoAlmacen(t)
	require.NoError(t, a.Guardar("../fuera/u1", lineasDePrueba()))

	entradas, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entradas, 1, "el archivo queda dentro del directorio")
}
