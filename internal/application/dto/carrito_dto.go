package dto

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/tienda-natural-api/internal/domain/carrito"
)

// AgregarLineaRequest cuerpo de POST /api/carrito/items. Para un producto que
// ya está en el carrito basta id y cantidad; para uno nuevo se requieren
// nombre y precio (snapshot del catálogo al momento de agregar).
type AgregarLineaRequest struct {
	ID       IDProducto      `json:"id"`
	Cantidad int             `json:"cantidad"`
	Nombre   string          `json:"nombre,omitempty"`
	Precio   decimal.Decimal `json:"precio,omitempty"`
	Imagen   string          `json:"imagen,omitempty"`
	Categoria string         `json:"categoria_nombre,omitempty"`
}

// AjustarCantidadRequest cuerpo de POST /api/carrito/items/:id/cantidad.
type AjustarCantidadRequest struct {
	Delta int `json:"delta"` // +1 o -1
}

// LineaResponse una línea tal como se muestra en el panel del carrito.
type LineaResponse struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Precio   string `json:"precio"`
	Cantidad int    `json:"cantidad"`
	Imagen   string `json:"imagen"`
	Subtotal string `json:"subtotal"`
}

// CarritoResponse estado completo del carrito tras cualquier mutación.
type CarritoResponse struct {
	Items         []LineaResponse `json:"items"`
	Total         string          `json:"total"`
	CantidadTotal int             `json:"cantidad_total"`
}

// NewCarritoResponse proyecta las líneas del motor al formato de respuesta.
func NewCarritoResponse(lineas []carrito.Linea, total decimal.Decimal, cantidadTotal int) CarritoResponse {
	resp := CarritoResponse{
		Items:         make([]LineaResponse, 0, len(lineas)),
		Total:         total.StringFixed(2),
		CantidadTotal: cantidadTotal,
	}
	for _, l := range lineas {
		resp.Items = append(resp.Items, LineaResponse{
			ID:       l.ID,
			Nombre:   l.Nombre,
			Precio:   l.Precio.StringFixed(2),
			Cantidad: l.Cantidad,
			Imagen:   l.Imagen,
			Subtotal: l.Subtotal().StringFixed(2),
		})
	}
	return resp
}
