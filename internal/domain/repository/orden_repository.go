package repository

import (
	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
)

// OrdenRepository puerto de escritura de órdenes. Create devuelve el id
// generado por el backend; los detalles llevan ese id como FK.
type OrdenRepository interface {
	Create(orden *entity.Orden) (int64, error)
	CreateDetalle(detalle *entity.OrdenDetalle) error
}

// DireccionRepository escritura de direcciones de entrega. Cada checkout crea
// una fila nueva.
type DireccionRepository interface {
	Create(direccion *entity.Direccion) (int64, error)
}
