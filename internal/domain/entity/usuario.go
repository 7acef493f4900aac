package entity

import (
	"strings"
	"time"
)

// Roles de usuario. Solo 'cliente' puede usar el flujo de compra.
const (
	RolCliente = "cliente"
	RolAdmin   = "admin"
)

// Usuario es la proyección de perfil de la identidad remota (tabla usuario).
type Usuario struct {
	ID                string // UUID compartido con la identidad de auth
	PrimerNombre      string
	SegundoNombre     string // opcional
	ApellidoPaterno   string
	ApellidoMaterno   string
	CI                string
	Celular           string
	CorreoElectronico string
	Rol               string
	Visible           bool
	CreadoEn          time.Time
}

// NombreCompleto une las partes del nombre presentes con un solo espacio.
func (u *Usuario) NombreCompleto() string {
	partes := []string{u.PrimerNombre, u.SegundoNombre, u.ApellidoPaterno, u.ApellidoMaterno}
	var presentes []string
	for _, p := range partes {
		if s := strings.TrimSpace(p); s != "" {
			presentes = append(presentes, s)
		}
	}
	return strings.Join(presentes, " ")
}
