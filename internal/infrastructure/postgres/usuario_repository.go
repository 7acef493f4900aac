package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-natural-api/internal/domain"
	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo proyección de perfiles sobre la tabla usuario (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de perfiles. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create inserta el perfil del usuario recién registrado.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuario (id_usuario, primer_nombre, segundo_nombre, apellido_paterno, apellido_materno, ci, celular, correo_electronico, rol, visible, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.PrimerNombre, nullIfEmpty(usuario.SegundoNombre),
		usuario.ApellidoPaterno, usuario.ApellidoMaterno, usuario.CI, usuario.Celular,
		usuario.CorreoElectronico, usuario.Rol, usuario.Visible, usuario.CreadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por id. nil si no hay fila (falla cerrado).
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.getBy("id_usuario", id)
}

// GetByEmail obtiene un perfil por correo. nil si no hay fila.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return r.getBy("correo_electronico", email)
}

func (r *UsuarioRepo) getBy(columna, valor string) (*entity.Usuario, error) {
	query := fmt.Sprintf(`
		SELECT id_usuario, primer_nombre, COALESCE(segundo_nombre, ''), apellido_paterno, apellido_materno,
		       ci, celular, correo_electronico, rol, visible, creado_en
		FROM usuario WHERE %s = $1`, columna)
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, valor).Scan(
		&u.ID, &u.PrimerNombre, &u.SegundoNombre, &u.ApellidoPaterno, &u.ApellidoMaterno,
		&u.CI, &u.Celular, &u.CorreoElectronico, &u.Rol, &u.Visible, &u.CreadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
