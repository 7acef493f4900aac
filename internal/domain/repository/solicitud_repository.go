package repository

import (
	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
)

// SolicitudInfoRepository escritura de solicitudes de información de precio.
type SolicitudInfoRepository interface {
	Create(solicitud *entity.SolicitudInfo) error
}
