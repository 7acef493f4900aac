package dto

import (
	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
)

// ProductoResponse proyección de un producto del catálogo para la tienda.
// Si MostrarPrecio es false el precio viaja vacío y el frontend muestra
// "Consultar Precio".
type ProductoResponse struct {
	ID                  int64   `json:"id"`
	Nombre              string  `json:"nombre"`
	Descripcion         string  `json:"descripcion,omitempty"`
	ImagenURL           string  `json:"imagen_url"`
	Precio              string  `json:"precio,omitempty"`
	PrecioFormateado    string  `json:"precio_formateado,omitempty"`
	Stock               int     `json:"stock"`
	Agotado             bool    `json:"agotado"`
	IDCategoria         int64   `json:"id_categoria"`
	CategoriaNombre     string  `json:"categoria_nombre"`
	MostrarPrecio       bool    `json:"mostrar_precio"`
	HabilitarWhatsapp   bool    `json:"habilitar_whatsapp"`
	HabilitarFormulario bool    `json:"habilitar_formulario"`
}

// NewProductoResponse mapea la entidad a la respuesta pública.
func NewProductoResponse(p *entity.Producto) ProductoResponse {
	r := ProductoResponse{
		ID:                  p.ID,
		Nombre:              p.Nombre,
		Descripcion:         p.Descripcion,
		ImagenURL:           p.ImagenURL,
		Stock:               p.Stock,
		Agotado:             p.EstaAgotado(),
		IDCategoria:         p.IDCategoria,
		CategoriaNombre:     p.CategoriaNombre,
		MostrarPrecio:       p.MostrarPrecio,
		HabilitarWhatsapp:   p.HabilitarWhatsapp,
		HabilitarFormulario: p.HabilitarFormulario,
	}
	if p.MostrarPrecio {
		r.Precio = p.Precio.StringFixed(2)
		r.PrecioFormateado = p.PrecioFormateado()
	}
	return r
}

// ProductoListResponse página de productos de una categoría.
type ProductoListResponse struct {
	Categoria string             `json:"categoria"`
	Items     []ProductoResponse `json:"items"`
	Page      PageResponse       `json:"page"`
}

// CategoriaResponse para los menús de navegación.
type CategoriaResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// SolicitudInfoRequest formulario "Consultar Precio".
type SolicitudInfoRequest struct {
	ProductID  IDProducto `json:"product_id"`
	Nombre     string     `json:"nombre_solicitante"`
	Email      string     `json:"email"`
	Comentario string     `json:"comentario"`
}
