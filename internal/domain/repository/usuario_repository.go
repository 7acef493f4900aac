package repository

import (
	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
)

// UsuarioRepository puerto sobre la tabla de perfiles 'usuario'.
// GetByID falla cerrado: si no hay fila devuelve (nil, nil), no error.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
}

// CredencialRepository puerto sobre la identidad de autenticación (email+hash).
// Es una tabla separada del perfil: el alta de identidad y la de perfil son dos
// escrituras independientes.
type CredencialRepository interface {
	Create(id, email, passwordHash string) error
	GetByEmail(email string) (id, passwordHash string, err error)
}
