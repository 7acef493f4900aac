package repository

import (
	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
)

// OrdenListado columnas de ordenación aceptadas por el listado del catálogo
// (parámetro ?orden= de la tienda).
const (
	OrdenPorID         = "id"
	OrdenPorNombre     = "nombre"
	OrdenPorPrecioAsc  = "precio_asc"
	OrdenPorPrecioDesc = "precio_desc"
)

// ProductoRepository puerto de lectura del catálogo remoto. Este sistema nunca
// escribe en la tabla producto.
type ProductoRepository interface {
	// GetByID trae el producto con el nombre de su categoría (join). nil si no existe.
	GetByID(id int64) (*entity.Producto, error)
	// ListByCategoria lista productos visibles de una categoría, paginados.
	ListByCategoria(idCategoria int64, orden string, limit, offset int) ([]*entity.Producto, error)
	// BuscarPorNombre búsqueda case-insensitive por fragmento de nombre, solo visibles.
	BuscarPorNombre(fragmento string, limit int) ([]*entity.Producto, error)
	// Relacionados productos visibles de la misma categoría excluyendo el actual.
	Relacionados(idCategoria, excluirID int64, limit int) ([]*entity.Producto, error)
	// Stock devuelve el stock actual (para el verificador opcional del carrito).
	Stock(id int64) (int, error)
}

// CategoriaRepository lectura de categorías.
type CategoriaRepository interface {
	GetByNombre(nombre string) (*entity.Categoria, error)
	List() ([]*entity.Categoria, error)
}
