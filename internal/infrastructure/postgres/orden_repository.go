package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jhoicas/tienda-natural-api/internal/domain"
	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
)

var _ repository.OrdenRepository = (*OrdenRepo)(nil)

// OrdenRepo escritura de órdenes sobre PostgreSQL (usable con pool o tx).
type OrdenRepo struct {
	q Querier
}

// NewOrdenRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewOrdenRepository(q Querier) *OrdenRepo {
	return &OrdenRepo{q: q}
}

// Create inserta la cabecera y devuelve el id generado por la base.
func (r *OrdenRepo) Create(orden *entity.Orden) (int64, error) {
	query := `
		INSERT INTO orden (id_usuario, id_direccion, fecha, total, metodo_pago, estado, visible)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_orden`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		orden.IDUsuario, orden.IDDireccion, orden.Fecha,
		orden.Total, orden.MetodoPago, orden.Estado, orden.Visible,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert orden: %w", err)
	}
	return id, nil
}

// CreateDetalle inserta una línea de la orden. El id de producto del carrito
// viaja como string; aquí se convierte al bigint de la tabla. El trigger de
// stock de la tienda puede rechazar la línea: ese rechazo sale como
// domain.ErrStockInsuficiente.
func (r *OrdenRepo) CreateDetalle(detalle *entity.OrdenDetalle) error {
	idProducto, err := strconv.ParseInt(detalle.IDProducto, 10, 64)
	if err != nil {
		return fmt.Errorf("id de producto inválido %q: %w", detalle.IDProducto, errors.Join(domain.ErrEntradaInvalida, err))
	}
	query := `
		INSERT INTO orden_detalle (id_orden, id_producto, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4)`
	_, err = r.q.Exec(context.Background(), query,
		detalle.IDOrden, idProducto, detalle.Cantidad, detalle.PrecioUnitario)
	if err != nil {
		if isStockViolation(err) {
			return domain.ErrStockInsuficiente
		}
		return fmt.Errorf("insert orden_detalle: %w", err)
	}
	return nil
}
