package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo lectura de categorías sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador de categorías.
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// GetByNombre resuelve una categoría por su nombre exacto (la tienda navega
// por nombre). nil si no existe.
func (r *CategoriaRepo) GetByNombre(nombre string) (*entity.Categoria, error) {
	var c entity.Categoria
	err := r.q.QueryRow(context.Background(),
		`SELECT id_categoria, nombre FROM categoria WHERE nombre = $1`, nombre).
		Scan(&c.ID, &c.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// List todas las categorías por nombre ascendente.
func (r *CategoriaRepo) List() ([]*entity.Categoria, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id_categoria, nombre FROM categoria ORDER BY nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var categorias []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		categorias = append(categorias, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows categorias: %w", err)
	}
	return categorias, nil
}
