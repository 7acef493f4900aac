package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// Columnas del producto con el nombre de categoría resuelto por LEFT JOIN:
// un producto sin categoría sale como "Sin Categoría", no se descarta.
const columnasProducto = `
	p.id_producto, p.nombre, COALESCE(p.descripcion, ''), COALESCE(p.imagen_url, ''),
	p.precio, p.stock, COALESCE(p.id_categoria, 0),
	COALESCE(c.nombre, 'Sin Categoría'),
	p.visible, p.mostrar_precio, p.habilitar_whatsapp, p.habilitar_formulario,
	p.creado_en`

// ProductoRepo lectura del catálogo sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// GetByID obtiene un producto con su categoría. nil si no existe.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM producto p
		LEFT JOIN categoria c ON c.id_categoria = p.id_categoria
		WHERE p.id_producto = $1`, columnasProducto)
	p, err := scanProducto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// ListByCategoria lista productos visibles de una categoría, paginados y
// ordenados según la columna pedida.
func (r *ProductoRepo) ListByCategoria(idCategoria int64, orden string, limit, offset int) ([]*entity.Producto, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM producto p
		LEFT JOIN categoria c ON c.id_categoria = p.id_categoria
		WHERE p.visible = true AND p.id_categoria = $1
		ORDER BY %s
		LIMIT $2 OFFSET $3`, columnasProducto, ordenSQL(orden))
	rows, err := r.q.Query(context.Background(), query, idCategoria, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	return collectProductos(rows)
}

// BuscarPorNombre búsqueda case-insensitive por fragmento de nombre, solo visibles.
func (r *ProductoRepo) BuscarPorNombre(fragmento string, limit int) ([]*entity.Producto, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM producto p
		LEFT JOIN categoria c ON c.id_categoria = p.id_categoria
		WHERE p.visible = true AND p.nombre ILIKE '%%' || $1 || '%%'
		ORDER BY p.nombre ASC
		LIMIT $2`, columnasProducto)
	rows, err := r.q.Query(context.Background(), query, fragmento, limit)
	if err != nil {
		return nil, fmt.Errorf("buscar productos: %w", err)
	}
	defer rows.Close()
	return collectProductos(rows)
}

// Relacionados productos visibles de la misma categoría excluyendo el actual.
func (r *ProductoRepo) Relacionados(idCategoria, excluirID int64, limit int) ([]*entity.Producto, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM producto p
		LEFT JOIN categoria c ON c.id_categoria = p.id_categoria
		WHERE p.visible = true AND p.id_categoria = $1 AND p.id_producto <> $2
		ORDER BY p.id_producto ASC
		LIMIT $3`, columnasProducto)
	rows, err := r.q.Query(context.Background(), query, idCategoria, excluirID, limit)
	if err != nil {
		return nil, fmt.Errorf("productos relacionados: %w", err)
	}
	defer rows.Close()
	return collectProductos(rows)
}

// Stock devuelve el stock actual del producto; 0 si no existe.
func (r *ProductoRepo) Stock(id int64) (int, error) {
	var stock int
	err := r.q.QueryRow(context.Background(),
		`SELECT stock FROM producto WHERE id_producto = $1`, id).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("stock producto: %w", err)
	}
	return stock, nil
}

// ordenSQL traduce el parámetro ?orden= a una columna segura. Todo lo que no
// esté en la lista cae en id ascendente.
func ordenSQL(orden string) string {
	switch orden {
	case repository.OrdenPorNombre:
		return "p.nombre ASC"
	case repository.OrdenPorPrecioAsc:
		return "p.precio ASC"
	case repository.OrdenPorPrecioDesc:
		return "p.precio DESC"
	default:
		return "p.id_producto ASC"
	}
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.ImagenURL,
		&p.Precio, &p.Stock, &p.IDCategoria, &p.CategoriaNombre,
		&p.Visible, &p.MostrarPrecio, &p.HabilitarWhatsapp, &p.HabilitarFormulario,
		&p.CreadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProductos(rows pgx.Rows) ([]*entity.Producto, error) {
	var productos []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		productos = append(productos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows productos: %w", err)
	}
	return productos, nil
}
