package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
)

var _ repository.GeoRepository = (*GeoRepo)(nil)

// GeoRepo lectura de la jerarquía geográfica (usable con pool o tx).
type GeoRepo struct {
	q Querier
}

// NewGeoRepository construye el adaptador geográfico.
func NewGeoRepository(q Querier) *GeoRepo {
	return &GeoRepo{q: q}
}

// Departamentos todos, por nombre ascendente.
func (r *GeoRepo) Departamentos() ([]*entity.Departamento, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id_departamento, nombre FROM departamento ORDER BY nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("list departamentos: %w", err)
	}
	defer rows.Close()

	var items []*entity.Departamento
	for rows.Next() {
		var d entity.Departamento
		if err := rows.Scan(&d.ID, &d.Nombre); err != nil {
			return nil, fmt.Errorf("scan departamento: %w", err)
		}
		items = append(items, &d)
	}
	return items, rows.Err()
}

// MunicipiosPorDepartamento municipios del departamento, por nombre ascendente.
func (r *GeoRepo) MunicipiosPorDepartamento(idDepartamento int64) ([]*entity.Municipio, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id_municipio, id_departamento, nombre FROM municipio WHERE id_departamento = $1 ORDER BY nombre ASC`,
		idDepartamento)
	if err != nil {
		return nil, fmt.Errorf("list municipios: %w", err)
	}
	defer rows.Close()

	var items []*entity.Municipio
	for rows.Next() {
		var m entity.Municipio
		if err := rows.Scan(&m.ID, &m.IDDepartamento, &m.Nombre); err != nil {
			return nil, fmt.Errorf("scan municipio: %w", err)
		}
		items = append(items, &m)
	}
	return items, rows.Err()
}

// LocalidadesPorMunicipio localidades del municipio, por nombre ascendente.
func (r *GeoRepo) LocalidadesPorMunicipio(idMunicipio int64) ([]*entity.Localidad, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id_localidad, id_municipio, nombre FROM localidad WHERE id_municipio = $1 ORDER BY nombre ASC`,
		idMunicipio)
	if err != nil {
		return nil, fmt.Errorf("list localidades: %w", err)
	}
	defer rows.Close()

	var items []*entity.Localidad
	for rows.Next() {
		var l entity.Localidad
		if err := rows.Scan(&l.ID, &l.IDMunicipio, &l.Nombre); err != nil {
			return nil, fmt.Errorf("scan localidad: %w", err)
		}
		items = append(items, &l)
	}
	return items, rows.Err()
}

// ZonasPorLocalidad zonas de la localidad, por nombre ascendente. Puede no
// haber ninguna: la zona es opcional en la dirección.
func (r *GeoRepo) ZonasPorLocalidad(idLocalidad int64) ([]*entity.Zona, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id_zona, id_localidad, nombre FROM zona WHERE id_localidad = $1 ORDER BY nombre ASC`,
		idLocalidad)
	if err != nil {
		return nil, fmt.Errorf("list zonas: %w", err)
	}
	defer rows.Close()

	var items []*entity.Zona
	for rows.Next() {
		var z entity.Zona
		if err := rows.Scan(&z.ID, &z.IDLocalidad, &z.Nombre); err != nil {
			return nil, fmt.Errorf("scan zona: %w", err)
		}
		items = append(items, &z)
	}
	return items, rows.Err()
}

// Departamento por id. nil si no existe.
func (r *GeoRepo) Departamento(id int64) (*entity.Departamento, error) {
	var d entity.Departamento
	err := r.q.QueryRow(context.Background(),
		`SELECT id_departamento, nombre FROM departamento WHERE id_departamento = $1`, id).
		Scan(&d.ID, &d.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get departamento: %w", err)
	}
	return &d, nil
}

// Municipio por id. nil si no existe.
func (r *GeoRepo) Municipio(id int64) (*entity.Municipio, error) {
	var m entity.Municipio
	err := r.q.QueryRow(context.Background(),
		`SELECT id_municipio, id_departamento, nombre FROM municipio WHERE id_municipio = $1`, id).
		Scan(&m.ID, &m.IDDepartamento, &m.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get municipio: %w", err)
	}
	return &m, nil
}

// Localidad por id. nil si no existe.
func (r *GeoRepo) Localidad(id int64) (*entity.Localidad, error) {
	var l entity.Localidad
	err := r.q.QueryRow(context.Background(),
		`SELECT id_localidad, id_municipio, nombre FROM localidad WHERE id_localidad = $1`, id).
		Scan(&l.ID, &l.IDMunicipio, &l.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get localidad: %w", err)
	}
	return &l, nil
}
