package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
)

var _ repository.DireccionRepository = (*DireccionRepo)(nil)

// DireccionRepo escritura de direcciones de entrega (usable con pool o tx).
type DireccionRepo struct {
	q Querier
}

// NewDireccionRepository construye el adaptador de direcciones. Pasar pool o tx (Querier).
func NewDireccionRepository(q Querier) *DireccionRepo {
	return &DireccionRepo{q: q}
}

// Create inserta una dirección nueva y devuelve su id. La zona puede ser NULL.
func (r *DireccionRepo) Create(direccion *entity.Direccion) (int64, error) {
	query := `
		INSERT INTO direccion (id_usuario, id_localidad, id_zona, calle_avenida, numero_casa_edificio, referencia_adicional)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_direccion`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		direccion.IDUsuario, direccion.IDLocalidad, direccion.IDZona,
		direccion.CalleAvenida, direccion.NumeroCasaEdificio, direccion.ReferenciaAdicional,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert direccion: %w", err)
	}
	return id, nil
}
