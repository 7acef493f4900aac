package catalogo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-natural-api/internal/application/catalogo"
	"github.com/jhoicas/tienda-natural-api/internal/application/dto"
	"github.com/jhoicas/tienda-natural-api/internal/domain"
	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
)

type solicitudRepoFake struct {
	creadas []*entity.SolicitudInfo
}

func (r *solicitudRepoFake) Create(s *entity.SolicitudInfo) error {
	r.creadas = append(r.creadas, s)
	return nil
}

func solicitudDe(id dto.IDProducto) dto.SolicitudInfoRequest {
	return dto.SolicitudInfoRequest{
		ProductID:  id,
		Nombre:     "  Carla Flores  ",
		Email:      "carla.flores@gmail.com",
		Comentario: " ¿Tienen presentación de 500g? ",
	}
}

func TestSolicitudes_CreaConCamposRecortados(t *testing.T) {
	_, productos := nuevoCatalogo()
	repo := &solicitudRepoFake{}
	uc := catalogo.NewSolicitudes(repo, productos)

	err := uc.Crear(solicitudDe("1"))
	require.NoError(t, err)
	require.Len(t, repo.creadas, 1)

	s := repo.creadas[0]
	assert.Equal(t, "1", s.ProductID)
	assert.Equal(t, "Carla Flores", s.NombreSolicitante)
	assert.Equal(t, "¿Tienen presentación de 500g?", s.Comentario)
	assert.False(t, s.CreadoEn.IsZero())
}

func TestSolicitudes_Validacion(t *testing.T) {
	_, productos := nuevoCatalogo()
	uc := catalogo.NewSolicitudes(&solicitudRepoFake{}, productos)

	casos := []struct {
		nombre string
		in     dto.SolicitudInfoRequest
		want   error
	}{
		{"sin producto", dto.SolicitudInfoRequest{Nombre: "Carla", Email: "c@gmail.com"}, domain.ErrEntradaInvalida},
		{"sin nombre", dto.SolicitudInfoRequest{ProductID: "1", Email: "c@gmail.com"}, domain.ErrEntradaInvalida},
		{"email sin arroba", dto.SolicitudInfoRequest{ProductID: "1", Nombre: "Carla", Email: "carla.gmail.com"}, domain.ErrEntradaInvalida},
		{"id no numérico", dto.SolicitudInfoRequest{ProductID: "abc", Nombre: "Carla", Email: "c@gmail.com"}, domain.ErrEntradaInvalida},
		{"producto inexistente", solicitudDe("999"), domain.ErrNotFound},
		{"producto oculto", solicitudDe("3"), domain.ErrNotFound},
	}
	for _, caso := range casos {
		assert.ErrorIs(t, uc.Crear(caso.in), caso.want, caso.nombre)
	}
}
