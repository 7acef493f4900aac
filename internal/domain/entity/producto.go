package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo del catálogo tal como lo expone el backend remoto.
// Desde este sistema el catálogo es de solo lectura; el precio que viaja al carrito
// es un snapshot tomado al momento de agregar.
type Producto struct {
	ID                 int64
	Nombre              string
	Descripcion         string
	ImagenURL           string
	Precio              decimal.Decimal
	Stock               int
	IDCategoria         int64
	CategoriaNombre     string // del join con categoria; "Sin Categoría" si no hay fila
	Visible             bool
	MostrarPrecio       bool
	HabilitarWhatsapp   bool
	HabilitarFormulario bool
	CreadoEn            time.Time
}

// EstaAgotado indica si el producto no tiene stock disponible.
func (p *Producto) EstaAgotado() bool {
	return p.Stock <= 0
}

// PrecioFormateado devuelve el precio con dos decimales y coma decimal ("12,50").
func (p *Producto) PrecioFormateado() string {
	return strings.Replace(p.Precio.StringFixed(2), ".", ",", 1)
}
