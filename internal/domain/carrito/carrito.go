// Package carrito implementa el estado del carrito de compras independiente de
// cualquier capa de presentación o persistencia. Las operaciones mutan una
// lista ordenada de líneas y mantienen dos invariantes: no hay dos líneas con
// el mismo id normalizado y ninguna línea queda con cantidad menor a 1 (un
// decremento en 1 elimina la línea completa).
package carrito

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/tienda-natural-api/internal/domain"
)

// Linea una entrada producto+cantidad del carrito. El orden de inserción se
// conserva al serializar.
type Linea struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	Precio          decimal.Decimal `json:"precio"`
	Cantidad        int             `json:"cantidad"`
	Imagen          string          `json:"imagen"`
	CategoriaNombre string          `json:"categoria_nombre,omitempty"`
}

// Subtotal de la línea (precio * cantidad).
func (l Linea) Subtotal() decimal.Decimal {
	return l.Precio.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}

// NormalizarID convierte cualquier representación de id de producto (string o
// numérica) a la forma canónica string. Toda comparación de ids pasa por aquí;
// ninguna otra capa compara ids crudos.
func NormalizarID(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		// JSON decodifica números como float64; los ids son enteros.
		return strconv.FormatInt(int64(v), 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// VerificadorStock colaborador opcional que limita la cantidad agregable de un
// producto. Si es nil, el carrito no impone tope (comportamiento original).
type VerificadorStock interface {
	StockDisponible(idProducto string) (int, error)
}

// Carrito lista ordenada de líneas. El valor cero es un carrito vacío listo
// para usar.
type Carrito struct {
	lineas []Linea
}

// Desde construye un carrito a partir de líneas ya deserializadas.
func Desde(lineas []Linea) *Carrito {
	c := &Carrito{}
	c.lineas = append(c.lineas, lineas...)
	return c
}

// Lineas devuelve una copia del contenido en orden de inserción.
func (c *Carrito) Lineas() []Linea {
	out := make([]Linea, len(c.lineas))
	copy(out, c.lineas)
	return out
}

// Vacio indica si el carrito no tiene líneas.
func (c *Carrito) Vacio() bool {
	return len(c.lineas) == 0
}

// buscar devuelve el índice de la línea con el id normalizado, o -1.
func (c *Carrito) buscar(id string) int {
	for i := range c.lineas {
		if c.lineas[i].ID == id {
			return i
		}
	}
	return -1
}

// AgregarOIncrementar suma cantidad a la línea existente con ese id o, si no
// existe, agrega una línea nueva. Para líneas nuevas nombre y precio son
// obligatorios. Una cantidad no positiva se rechaza con ErrCantidadInvalida.
// Si hay un verificador de stock la cantidad resultante no puede superar lo disponible.
func (c *Carrito) AgregarOIncrementar(id any, cantidad int, nombre string, precio decimal.Decimal, imagen, categoria string, stock VerificadorStock) error {
	if cantidad <= 0 {
		return domain.ErrCantidadInvalida
	}
	idStr := NormalizarID(id)
	if i := c.buscar(idStr); i >= 0 {
		if err := c.verificarTope(idStr, c.lineas[i].Cantidad+cantidad, stock); err != nil {
			return err
		}
		c.lineas[i].Cantidad += cantidad
		return nil
	}
	if err := c.verificarTope(idStr, cantidad, stock); err != nil {
		return err
	}
	if nombre == "" || precio.LessThanOrEqual(decimal.Zero) {
		return domain.ErrDatosProductoFaltantes
	}
	c.lineas = append(c.lineas, Linea{
		ID:              idStr,
		Nombre:          nombre,
		Precio:          precio,
		Cantidad:        cantidad,
		Imagen:          imagen,
		CategoriaNombre: categoria,
	})
	return nil
}

// Eliminar quita la línea con ese id. Eliminar un id ausente no es un error.
func (c *Carrito) Eliminar(id any) {
	idStr := NormalizarID(id)
	if i := c.buscar(idStr); i >= 0 {
		c.lineas = append(c.lineas[:i], c.lineas[i+1:]...)
	}
}

// AjustarCantidad aplica un delta de +1 o -1 a la línea con ese id. Decrementar
// cuando la cantidad es 1 elimina la línea. Ajustar un id ausente es un no-op.
// El incremento no tiene tope aquí salvo que haya un verificador de stock.
func (c *Carrito) AjustarCantidad(id any, delta int, stock VerificadorStock) error {
	if delta != 1 && delta != -1 {
		return domain.ErrCantidadInvalida
	}
	idStr := NormalizarID(id)
	i := c.buscar(idStr)
	if i < 0 {
		return nil
	}
	if delta < 0 {
		if c.lineas[i].Cantidad <= 1 {
			c.Eliminar(idStr)
			return nil
		}
		c.lineas[i].Cantidad--
		return nil
	}
	if err := c.verificarTope(idStr, c.lineas[i].Cantidad+1, stock); err != nil {
		return err
	}
	c.lineas[i].Cantidad++
	return nil
}

func (c *Carrito) verificarTope(id string, cantidadFinal int, stock VerificadorStock) error {
	if stock == nil {
		return nil
	}
	disponible, err := stock.StockDisponible(id)
	if err != nil {
		return err
	}
	if cantidadFinal > disponible {
		return domain.ErrStockInsuficiente
	}
	return nil
}

// Vaciar elimina todas las líneas.
func (c *Carrito) Vaciar() {
	c.lineas = nil
}

// Total suma precio*cantidad de todas las líneas.
func (c *Carrito) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lineas {
		total = total.Add(l.Subtotal())
	}
	return total
}

// CantidadTotal suma las cantidades de todas las líneas (contador del ícono del carrito).
func (c *Carrito) CantidadTotal() int {
	n := 0
	for _, l := range c.lineas {
		n += l.Cantidad
	}
	return n
}
