package dto

import "time"

// RegistroRequest alta de cuenta de cliente.
type RegistroRequest struct {
	PrimerNombre    string `json:"primer_nombre"`
	SegundoNombre   string `json:"segundo_nombre,omitempty"`
	ApellidoPaterno string `json:"apellido_paterno"`
	ApellidoMaterno string `json:"apellido_materno"`
	CI              string `json:"ci"`
	Celular         string `json:"celular"`
	Email           string `json:"correo_electronico"`
	Password        string `json:"contrasena"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"correo_electronico"`
	Password string `json:"contrasena"`
}

// UsuarioResponse proyección pública del perfil.
type UsuarioResponse struct {
	ID              string    `json:"id"`
	NombreCompleto  string    `json:"nombre_completo"`
	PrimerNombre    string    `json:"primer_nombre"`
	ApellidoPaterno string    `json:"apellido_paterno"`
	CI              string    `json:"ci"`
	Celular         string    `json:"celular"`
	Email           string    `json:"correo_electronico"`
	Rol             string    `json:"rol"`
	CreadoEn        time.Time `json:"creado_en"`
}

// LoginResponse token de sesión más el perfil.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
