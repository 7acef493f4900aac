// Package geo expone la jerarquía geográfica que llena los selects del
// formulario de dirección: departamento → municipio → localidad → zona.
package geo

import (
	"github.com/jhoicas/tienda-natural-api/internal/application/dto"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
)

// UseCase lecturas geográficas.
type UseCase struct {
	repo repository.GeoRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.GeoRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Departamentos todos, por nombre ascendente.
func (uc *UseCase) Departamentos() ([]dto.OpcionGeo, error) {
	deps, err := uc.repo.Departamentos()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OpcionGeo, 0, len(deps))
	for _, d := range deps {
		out = append(out, dto.OpcionGeo{ID: d.ID, Nombre: d.Nombre})
	}
	return out, nil
}

// Municipios de un departamento.
func (uc *UseCase) Municipios(idDepartamento int64) ([]dto.OpcionGeo, error) {
	items, err := uc.repo.MunicipiosPorDepartamento(idDepartamento)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OpcionGeo, 0, len(items))
	for _, m := range items {
		out = append(out, dto.OpcionGeo{ID: m.ID, Nombre: m.Nombre})
	}
	return out, nil
}

// Localidades de un municipio.
func (uc *UseCase) Localidades(idMunicipio int64) ([]dto.OpcionGeo, error) {
	items, err := uc.repo.LocalidadesPorMunicipio(idMunicipio)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OpcionGeo, 0, len(items))
	for _, l := range items {
		out = append(out, dto.OpcionGeo{ID: l.ID, Nombre: l.Nombre})
	}
	return out, nil
}

// Zonas de una localidad (pueden no existir; la zona es opcional).
func (uc *UseCase) Zonas(idLocalidad int64) ([]dto.OpcionGeo, error) {
	items, err := uc.repo.ZonasPorLocalidad(idLocalidad)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OpcionGeo, 0, len(items))
	for _, z := range items {
		out = append(out, dto.OpcionGeo{ID: z.ID, Nombre: z.Nombre})
	}
	return out, nil
}
