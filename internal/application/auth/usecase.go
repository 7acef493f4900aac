// Package auth envuelve el servicio remoto de identidad: registro, inicio y
// cierre de sesión, y la proyección del perfil desde la tabla usuario.
package auth

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-natural-api/internal/application/dto"
	"github.com/jhoicas/tienda-natural-api/internal/domain"
	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
	"github.com/jhoicas/tienda-natural-api/pkg/jwt"
	"github.com/jhoicas/tienda-natural-api/pkg/logger"
)

// Patrones de validación del registro. El C.I. exige exactamente 7 dígitos
// aquí, mientras el checkout acepta 6-12: la discrepancia viene del formulario
// original y se conserva tal cual.
var (
	patronSoloLetras  = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ\s]+$`)
	patronCIRegistro  = regexp.MustCompile(`^[0-9]{7}$`)
	patronCelular     = regexp.MustCompile(`^[0-9]{8}$`)
	patronCorreoGmail = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@gmail\.com$`)
	patronMayuscula   = regexp.MustCompile(`[A-Z]`)
	patronDigito      = regexp.MustCompile(`\d`)
	patronEspecial    = regexp.MustCompile(`[@$!%*?&]`)
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// ErrorRegistro un rechazo de validación del formulario de registro.
type ErrorRegistro struct {
	Mensaje string
}

func (e *ErrorRegistro) Error() string { return e.Mensaje }

// UseCase fachada de autenticación.
type UseCase struct {
	credencialRepo repository.CredencialRepository
	usuarioRepo    repository.UsuarioRepository
	jwtCfg         JWTConfig
	log            *logger.Logger
}

// NewUseCase construye la fachada.
func NewUseCase(credencialRepo repository.CredencialRepository, usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{credencialRepo: credencialRepo, usuarioRepo: usuarioRepo, jwtCfg: jwtCfg, log: log}
}

// Registrar valida el formulario, crea la identidad (email+hash) y luego el
// perfil en la tabla usuario. Son dos escrituras separadas sin transacción:
// si la segunda falla queda una identidad sin perfil, igual que el sistema
// original. El rol por defecto es 'cliente'.
func (uc *UseCase) Registrar(in dto.RegistroRequest) (*dto.UsuarioResponse, error) {
	if rechazo := validarRegistro(in); rechazo != nil {
		return nil, rechazo
	}

	existente, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailYaRegistrado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	if err := uc.credencialRepo.Create(id, in.Email, string(hash)); err != nil {
		if err == domain.ErrDuplicado {
			return nil, domain.ErrEmailYaRegistrado
		}
		return nil, err
	}

	usuario := &entity.Usuario{
		ID:                id,
		PrimerNombre:      in.PrimerNombre,
		SegundoNombre:     in.SegundoNombre,
		ApellidoPaterno:   in.ApellidoPaterno,
		ApellidoMaterno:   in.ApellidoMaterno,
		CI:                in.CI,
		Celular:           in.Celular,
		CorreoElectronico: in.Email,
		Rol:               entity.RolCliente,
		Visible:           true,
		CreadoEn:          time.Now(),
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		// La identidad ya existe; el perfil no. Se registra y se reporta para
		// que el cliente reintente o contacte soporte.
		uc.log.Error().Err(err).Str("usuario", id).Msg("crear perfil tras identidad")
		if err == domain.ErrDuplicado {
			return nil, domain.ErrCIYaRegistrado
		}
		return nil, err
	}

	resp := toUsuarioResponse(usuario)
	return &resp, nil
}

// Login verifica credenciales, genera el JWT de sesión y devuelve el perfil.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	id, hash, err := uc.credencialRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, domain.ErrNoAutorizado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.Password)); err != nil {
		return nil, domain.ErrNoAutorizado
	}

	perfil, err := uc.usuarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		// Identidad sin perfil (alta a medias): no hay sesión utilizable.
		return nil, domain.ErrUsuarioNoEncontrado
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, perfil.ID, perfil.CorreoElectronico, perfil.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: toUsuarioResponse(perfil)}, nil
}

// PerfilActual devuelve el perfil del usuario autenticado. Falla cerrado: si
// no hay fila devuelve nil sin error, porque el resto del sistema trata la
// ausencia de perfil como "sin sesión", no como excepción.
func (uc *UseCase) PerfilActual(userID string) (*dto.UsuarioResponse, error) {
	if userID == "" {
		return nil, nil
	}
	perfil, err := uc.usuarioRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, nil
	}
	resp := toUsuarioResponse(perfil)
	return &resp, nil
}

func validarRegistro(in dto.RegistroRequest) *ErrorRegistro {
	if in.PrimerNombre == "" || in.ApellidoPaterno == "" || in.ApellidoMaterno == "" ||
		in.CI == "" || in.Celular == "" || in.Email == "" || in.Password == "" {
		return &ErrorRegistro{Mensaje: "Todos los campos obligatorios deben ser llenados."}
	}
	if !patronSoloLetras.MatchString(in.PrimerNombre) {
		return &ErrorRegistro{Mensaje: "El primer nombre solo puede contener letras."}
	}
	if in.SegundoNombre != "" && !patronSoloLetras.MatchString(in.SegundoNombre) {
		return &ErrorRegistro{Mensaje: "El segundo nombre solo puede contener letras."}
	}
	if !patronSoloLetras.MatchString(in.ApellidoPaterno) || !patronSoloLetras.MatchString(in.ApellidoMaterno) {
		return &ErrorRegistro{Mensaje: "Los apellidos solo pueden contener letras."}
	}
	if !patronCIRegistro.MatchString(in.CI) {
		return &ErrorRegistro{Mensaje: "El C.I. debe contener exactamente 7 dígitos."}
	}
	if !patronCelular.MatchString(in.Celular) {
		return &ErrorRegistro{Mensaje: "El celular debe contener exactamente 8 dígitos."}
	}
	if !patronCorreoGmail.MatchString(in.Email) {
		return &ErrorRegistro{Mensaje: "Debes ingresar un correo válido de @gmail.com."}
	}
	if len(in.Password) < 8 || !patronMayuscula.MatchString(in.Password) ||
		!patronDigito.MatchString(in.Password) || !patronEspecial.MatchString(in.Password) {
		return &ErrorRegistro{Mensaje: "La contraseña debe tener al menos 8 caracteres, incluir una mayúscula, un número y un carácter especial (@$!%*?&)."}
	}
	return nil
}

func toUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:              u.ID,
		NombreCompleto:  u.NombreCompleto(),
		PrimerNombre:    u.PrimerNombre,
		ApellidoPaterno: u.ApellidoPaterno,
		CI:              u.CI,
		Celular:         u.Celular,
		Email:           u.CorreoElectronico,
		Rol:             u.Rol,
		CreadoEn:        u.CreadoEn,
	}
}
