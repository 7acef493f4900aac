package catalogo

import (
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/tienda-natural-api/internal/application/dto"
	"github.com/jhoicas/tienda-natural-api/internal/domain"
	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
)

var patronEmailBasico = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Solicitudes recibe el formulario "Consultar Precio" de los productos que no
// muestran precio público.
type Solicitudes struct {
	solicitudRepo repository.SolicitudInfoRepository
	productoRepo  repository.ProductoRepository
}

// NewSolicitudes construye el caso de uso.
func NewSolicitudes(solicitudRepo repository.SolicitudInfoRepository, productoRepo repository.ProductoRepository) *Solicitudes {
	return &Solicitudes{solicitudRepo: solicitudRepo, productoRepo: productoRepo}
}

// Crear valida y persiste la solicitud. El producto debe existir y estar
// visible; nombre y email son obligatorios.
func (s *Solicitudes) Crear(in dto.SolicitudInfoRequest) error {
	nombre := strings.TrimSpace(in.Nombre)
	email := strings.TrimSpace(in.Email)
	if in.ProductID.String() == "" || nombre == "" || email == "" {
		return domain.ErrEntradaInvalida
	}
	if !patronEmailBasico.MatchString(email) {
		return domain.ErrEntradaInvalida
	}
	idNum, ok := in.ProductID.Int64()
	if !ok {
		return domain.ErrEntradaInvalida
	}
	producto, err := s.productoRepo.GetByID(idNum)
	if err != nil {
		return err
	}
	if producto == nil || !producto.Visible {
		return domain.ErrNotFound
	}
	return s.solicitudRepo.Create(&entity.SolicitudInfo{
		ProductID:         in.ProductID.String(),
		NombreSolicitante: nombre,
		Email:             email,
		Comentario:        strings.TrimSpace(in.Comentario),
		CreadoEn:          time.Now(),
	})
}
