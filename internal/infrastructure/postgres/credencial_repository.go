package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-natural-api/internal/domain"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
)

var _ repository.CredencialRepository = (*CredencialRepo)(nil)

// CredencialRepo identidad de autenticación (email + hash). Es una tabla
// separada del perfil: el alta es en dos pasos.
type CredencialRepo struct {
	q Querier
}

// NewCredencialRepository construye el adaptador de credenciales.
func NewCredencialRepository(q Querier) *CredencialRepo {
	return &CredencialRepo{q: q}
}

// Create inserta la identidad.
func (r *CredencialRepo) Create(id, email, passwordHash string) error {
	query := `
		INSERT INTO credencial (id_usuario, email, password_hash, creado_en)
		VALUES ($1, $2, $3, NOW())`
	_, err := r.q.Exec(context.Background(), query, id, email, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert credencial: %w", err)
	}
	return nil
}

// GetByEmail devuelve id y hash de la identidad. Sin fila: id vacío, sin error.
func (r *CredencialRepo) GetByEmail(email string) (string, string, error) {
	var id, hash string
	err := r.q.QueryRow(context.Background(),
		`SELECT id_usuario, password_hash FROM credencial WHERE email = $1`, email).
		Scan(&id, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", nil
		}
		return "", "", fmt.Errorf("get credencial: %w", err)
	}
	return id, hash, nil
}
