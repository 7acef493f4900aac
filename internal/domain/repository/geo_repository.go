package repository

import (
	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
)

// GeoRepository lecturas de la jerarquía geográfica, siempre ordenadas por
// nombre ascendente (así se llenan los selects del formulario de dirección).
type GeoRepository interface {
	Departamentos() ([]*entity.Departamento, error)
	MunicipiosPorDepartamento(idDepartamento int64) ([]*entity.Municipio, error)
	LocalidadesPorMunicipio(idMunicipio int64) ([]*entity.Localidad, error)
	ZonasPorLocalidad(idLocalidad int64) ([]*entity.Zona, error)

	// Getters unitarios para resolver los nombres de una dirección ya
	// seleccionada (factura). nil si el id no existe.
	Departamento(id int64) (*entity.Departamento, error)
	Municipio(id int64) (*entity.Municipio, error)
	Localidad(id int64) (*entity.Localidad, error)
}
