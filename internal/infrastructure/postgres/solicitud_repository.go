package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
)

var _ repository.SolicitudInfoRepository = (*SolicitudRepo)(nil)

// SolicitudRepo escritura de solicitudes de información de precio.
type SolicitudRepo struct {
	q Querier
}

// NewSolicitudRepository construye el adaptador de solicitudes.
func NewSolicitudRepository(q Querier) *SolicitudRepo {
	return &SolicitudRepo{q: q}
}

// Create inserta la solicitud.
func (r *SolicitudRepo) Create(s *entity.SolicitudInfo) error {
	query := `
		INSERT INTO solicitud_info (id_producto, nombre_solicitante, email, comentario, creado_en)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		s.ProductID, s.NombreSolicitante, s.Email, s.Comentario, s.CreadoEn)
	if err != nil {
		return fmt.Errorf("insert solicitud_info: %w", err)
	}
	return nil
}
