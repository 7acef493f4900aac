// Package checkout orquesta una compra: valida el formulario, obtiene la
// identidad fresca, y persiste dirección, orden y detalles en una sola
// transacción. Al completar genera la factura y vacía el carrito.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	appcarrito "github.com/jhoicas/tienda-natural-api/internal/application/carrito"
	"github.com/jhoicas/tienda-natural-api/internal/application/dto"
	"github.com/jhoicas/tienda-natural-api/internal/domain"
	domcarrito "github.com/jhoicas/tienda-natural-api/internal/domain/carrito"
	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
	"github.com/jhoicas/tienda-natural-api/pkg/logger"
)

// Patrones de validación del formulario de pago.
var (
	patronCelular = regexp.MustCompile(`^[0-9]{8}$`)
	patronCI      = regexp.MustCompile(`^[0-9]{6,12}$`)
	patronTarjeta = regexp.MustCompile(`^\d{16}$`)
	patronCodigo  = regexp.MustCompile(`^\d{4}$`)
)

// ErrorValidacion un rechazo del formulario antes de cualquier escritura
// remota. Mensaje es apto para mostrarlo al cliente tal cual.
type ErrorValidacion struct {
	Mensaje string
}

func (e *ErrorValidacion) Error() string { return e.Mensaje }

// ErrorPersistencia una falla en las escrituras remotas del checkout. Paso
// indica en qué estado de la máquina ocurrió. La transacción garantiza que no
// quedó estado parcial.
type ErrorPersistencia struct {
	Paso Estado
	Err  error
}

func (e *ErrorPersistencia) Error() string {
	return fmt.Sprintf("checkout %s: %v", e.Paso, e.Err)
}

func (e *ErrorPersistencia) Unwrap() error { return e.Err }

// UseCase orquestador del checkout.
type UseCase struct {
	carrito     *appcarrito.Servicio
	usuarioRepo repository.UsuarioRepository
	geoRepo     repository.GeoRepository
	txRunner    TxRunner
	factura     GeneradorFactura
	log         *logger.Logger
}

// NewUseCase construye el orquestador.
func NewUseCase(
	carritoSvc *appcarrito.Servicio,
	usuarioRepo repository.UsuarioRepository,
	geoRepo repository.GeoRepository,
	txRunner TxRunner,
	factura GeneradorFactura,
	log *logger.Logger,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		carrito:     carritoSvc,
		usuarioRepo: usuarioRepo,
		geoRepo:     geoRepo,
		txRunner:    txRunner,
		factura:     factura,
		log:         log,
	}
}

// Procesar ejecuta un intento completo de checkout para el usuario autenticado.
// claveCarrito identifica el carrito persistido del cliente.
func (uc *UseCase) Procesar(ctx context.Context, userID, claveCarrito string, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	estado := EstadoValidando
	uc.log.Debug().Str("estado", estado.String()).Str("usuario", userID).Msg("checkout iniciado")

	// ── Validación: primer regla que falla aborta, sin efectos remotos ──
	lineas, err := uc.carrito.Contenido(claveCarrito)
	if err != nil {
		return nil, err
	}
	if rechazo := validar(in, lineas); rechazo != nil {
		uc.log.Info().Str("estado", EstadoRechazado.String()).Str("motivo", rechazo.Mensaje).Msg("checkout rechazado")
		return nil, rechazo
	}

	// ── Identidad fresca: nunca se confía en un perfil cacheado ──
	perfil, err := uc.usuarioRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("obtener perfil: %w", err)
	}
	if perfil == nil {
		return nil, domain.ErrSesionInvalida
	}
	if perfil.Rol != entity.RolCliente {
		return nil, domain.ErrAccesoDenegado
	}

	// Nombres de la jerarquía geográfica para la factura; de paso valida que
	// los ids seleccionados existieran.
	depNombre, munNombre, locNombre, err := uc.nombresGeo(in)
	if err != nil {
		return nil, err
	}

	metodo := strings.ToLower(in.MetodoPago)
	carritoActual := domcarrito.Desde(lineas)
	total := carritoActual.Total() // lo que el cliente vio; no se recalcula después

	var idDireccion, idOrden int64

	// ── Escrituras remotas: dirección → orden → detalles, una transacción ──
	err = uc.txRunner.RunCheckout(ctx, func(
		direccionRepo repository.DireccionRepository,
		ordenRepo repository.OrdenRepository,
	) error {
		estado = EstadoCreandoDireccion
		direccion := &entity.Direccion{
			IDUsuario:           userID,
			IDLocalidad:         in.IDLocalidad,
			IDZona:              in.IDZona,
			CalleAvenida:        in.CalleAvenida,
			NumeroCasaEdificio:  in.NumeroCasaEdificio,
			ReferenciaAdicional: in.ReferenciaAdicional,
		}
		idDireccion, err = direccionRepo.Create(direccion)
		if err != nil {
			return &ErrorPersistencia{Paso: estado, Err: err}
		}

		estado = EstadoCreandoOrden
		orden := &entity.Orden{
			IDUsuario:   userID,
			IDDireccion: idDireccion,
			Fecha:       time.Now(),
			Total:       total,
			MetodoPago:  metodo,
			Estado:      entity.EstadoPendiente,
			Visible:     true,
		}
		idOrden, err = ordenRepo.Create(orden)
		if err != nil {
			return &ErrorPersistencia{Paso: estado, Err: err}
		}

		estado = EstadoCreandoDetalles
		for _, l := range lineas {
			detalle := &entity.OrdenDetalle{
				IDOrden:        idOrden,
				IDProducto:     l.ID,
				Cantidad:       l.Cantidad,
				PrecioUnitario: l.Precio, // snapshot del carrito, no del catálogo
			}
			if err := ordenRepo.CreateDetalle(detalle); err != nil {
				return &ErrorPersistencia{Paso: estado, Err: err}
			}
		}
		return nil
	})
	if err != nil {
		estadoFinal := EstadoFallido
		uc.log.Error().Err(err).Str("estado", estadoFinal.String()).Msg("checkout fallido")
		var pe *ErrorPersistencia
		if errors.As(err, &pe) {
			return nil, pe
		}
		return nil, &ErrorPersistencia{Paso: estado, Err: err}
	}

	estado = EstadoCompletado
	uc.log.Info().
		Str("estado", estado.String()).
		Int64("orden", idOrden).
		Str("total", total.StringFixed(2)).
		Msg("checkout completado")

	resp := &dto.CheckoutResponse{
		IDOrden:     idOrden,
		IDDireccion: idDireccion,
		Total:       total.StringFixed(2),
		MetodoPago:  metodo,
		Estado:      entity.EstadoPendiente,
	}

	// La factura se genera después del commit; una falla aquí no deshace la
	// orden, solo se registra y la respuesta viaja sin documento.
	if uc.factura != nil {
		numero := in.NumeroCasaEdificio
		if numero == "" {
			numero = "S/N"
		}
		pdf, errPDF := uc.factura.GenerarFactura(ctx, DatosFactura{
			IDOrden:        idOrden,
			Fecha:          time.Now(),
			ClienteNombre:  perfil.NombreCompleto(),
			ClienteCI:      perfil.CI,
			ClienteCelular: perfil.Celular,
			ClienteEmail:   perfil.CorreoElectronico,
			MetodoPago:     metodo,
			Departamento:   depNombre,
			Municipio:      munNombre,
			Localidad:      locNombre,
			Calle:          in.CalleAvenida,
			Numero:         numero,
			Referencia:     recortar(in.ReferenciaAdicional, 100),
			Lineas:         lineas,
			Total:          total,
		})
		if errPDF != nil {
			uc.log.Error().Err(errPDF).Int64("orden", idOrden).Msg("generar factura")
		} else {
			resp.FacturaPDF = pdf
		}
	}

	// El carrito se vacía incondicionalmente tras el éxito.
	if err := uc.carrito.Vaciar(claveCarrito); err != nil {
		uc.log.Error().Err(err).Str("carrito", claveCarrito).Msg("vaciar carrito tras compra")
	}

	return resp, nil
}

// validar aplica las reglas del formulario en orden; la primera que falla
// produce el rechazo. No hay efectos remotos antes de este punto.
func validar(in dto.CheckoutRequest, lineas []domcarrito.Linea) *ErrorValidacion {
	metodo := strings.ToLower(strings.TrimSpace(in.MetodoPago))
	switch metodo {
	case "":
		return &ErrorValidacion{Mensaje: "Por favor, selecciona un método de pago."}
	case entity.PagoEfectivo, entity.PagoQR:
	case entity.PagoTarjeta:
		if in.Tarjeta == nil || !patronTarjeta.MatchString(strings.TrimSpace(in.Tarjeta.Numero)) {
			return &ErrorValidacion{Mensaje: "El número de tarjeta debe tener exactamente 16 dígitos."}
		}
		if !patronCodigo.MatchString(strings.TrimSpace(in.Tarjeta.CodigoSeguridad)) {
			return &ErrorValidacion{Mensaje: "El código de seguridad debe tener exactamente 4 dígitos."}
		}
	default:
		return &ErrorValidacion{Mensaje: "Método de pago no reconocido."}
	}

	if len(lineas) == 0 {
		return &ErrorValidacion{Mensaje: "Tu carrito está vacío. Añade productos para comprar."}
	}

	if in.IDDepartamento == 0 || in.IDMunicipio == 0 || in.IDLocalidad == 0 {
		return &ErrorValidacion{Mensaje: "Debes seleccionar Departamento, Municipio y Localidad."}
	}
	if strings.TrimSpace(in.CalleAvenida) == "" {
		return &ErrorValidacion{Mensaje: "La calle o avenida es obligatoria."}
	}

	if !patronCelular.MatchString(strings.TrimSpace(in.Celular)) {
		return &ErrorValidacion{Mensaje: "El campo 'Celular' debe contener exactamente 8 dígitos numéricos."}
	}
	if !patronCI.MatchString(strings.TrimSpace(in.CI)) {
		return &ErrorValidacion{Mensaje: "El campo 'C.I.' debe contener solo números (mínimo 6 dígitos)."}
	}
	return nil
}

// nombresGeo resuelve los nombres de la jerarquía seleccionada.
func (uc *UseCase) nombresGeo(in dto.CheckoutRequest) (dep, mun, loc string, err error) {
	d, err := uc.geoRepo.Departamento(in.IDDepartamento)
	if err != nil {
		return "", "", "", err
	}
	m, err := uc.geoRepo.Municipio(in.IDMunicipio)
	if err != nil {
		return "", "", "", err
	}
	l, err := uc.geoRepo.Localidad(in.IDLocalidad)
	if err != nil {
		return "", "", "", err
	}
	if d == nil || m == nil || l == nil {
		return "", "", "", &ErrorValidacion{Mensaje: "La ubicación seleccionada no es válida."}
	}
	return d.Nombre, m.Nombre, l.Nombre, nil
}

func recortar(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
