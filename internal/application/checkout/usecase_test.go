package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcarrito "github.com/jhoicas/tienda-natural-api/internal/application/carrito"
	"github.com/jhoicas/tienda-natural-api/internal/application/checkout"
	"github.com/jhoicas/tienda-natural-api/internal/application/dto"
	"github.com/jhoicas/tienda-natural-api/internal/domain"
	domcarrito "github.com/jhoicas/tienda-natural-api/internal/domain/carrito"
	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type almacenMemoria struct {
	datos map[string][]domcarrito.Linea
}

func (a *almacenMemoria) Cargar(clave string) ([]domcarrito.Linea, error) {
	return append([]domcarrito.Linea(nil), a.datos[clave]...), nil
}
func (a *almacenMemoria) Guardar(clave string, lineas []domcarrito.Linea) error {
	a.datos[clave] = append([]domcarrito.Linea(nil), lineas...)
	return nil
}
func (a *almacenMemoria) Eliminar(clave string) error {
	delete(a.datos, clave)
	return nil
}

type usuarioRepoFake struct {
	perfil *entity.Usuario
}

func (r *usuarioRepoFake) Create(*entity.Usuario) error { return nil }
func (r *usuarioRepoFake) GetByID(string) (*entity.Usuario, error) {
	return r.perfil, nil
}
func (r *usuarioRepoFake) GetByEmail(string) (*entity.Usuario, error) { return r.perfil, nil }

type geoRepoFake struct{}

func (geoRepoFake) Departamentos() ([]*entity.Departamento, error) { return nil, nil }
func (geoRepoFake) MunicipiosPorDepartamento(int64) ([]*entity.Municipio, error) {
	return nil, nil
}
func (geoRepoFake) LocalidadesPorMunicipio(int64) ([]*entity.Localidad, error) { return nil, nil }
func (geoRepoFake) ZonasPorLocalidad(int64) ([]*entity.Zona, error)            { return nil, nil }
func (geoRepoFake) Departamento(id int64) (*entity.Departamento, error) {
	if id == 99 {
		return nil, nil
	}
	return &entity.Departamento{ID: id, Nombre: "La Paz"}, nil
}
func (geoRepoFake) Municipio(id int64) (*entity.Municipio, error) {
	return &entity.Municipio{ID: id, Nombre: "Murillo"}, nil
}
func (geoRepoFake) Localidad(id int64) (*entity.Localidad, error) {
	return &entity.Localidad{ID: id, Nombre: "Zona Sur"}, nil
}

// direccionRepoFake y ordenRepoFake registran lo que se intentó escribir.
type direccionRepoFake struct {
	creadas []*entity.Direccion
	falla   error
}

func (r *direccionRepoFake) Create(d *entity.Direccion) (int64, error) {
	if r.falla != nil {
		return 0, r.falla
	}
	r.creadas = append(r.creadas, d)
	return 55, nil
}

type ordenRepoFake struct {
	ordenes       []*entity.Orden
	detalles      []*entity.OrdenDetalle
	fallaOrden    error
	fallaDetalle  error
}

func (r *ordenRepoFake) Create(o *entity.Orden) (int64, error) {
	if r.fallaOrden != nil {
		return 0, r.fallaOrden
	}
	r.ordenes = append(r.ordenes, o)
	return 123, nil
}

func (r *ordenRepoFake) CreateDetalle(d *entity.OrdenDetalle) error {
	if r.fallaDetalle != nil {
		return r.fallaDetalle
	}
	r.detalles = append(r.detalles, d)
	return nil
}

// txRunnerFake ejecuta el callback con los fakes; si el callback falla,
// descarta lo registrado, igual que un rollback.
type txRunnerFake struct {
	direccionRepo *direccionRepoFake
	ordenRepo     *ordenRepoFake
	ejecutado     bool
}

func (r *txRunnerFake) RunCheckout(_ context.Context, fn func(
	repository.DireccionRepository, repository.OrdenRepository) error) error {
	r.ejecutado = true
	if err := fn(r.direccionRepo, r.ordenRepo); err != nil {
		r.direccionRepo.creadas = nil
		r.ordenRepo.ordenes = nil
		r.ordenRepo.detalles = nil
		return err
	}
	return nil
}

type facturaFake struct {
	datos *checkout.DatosFactura
	falla error
}

func (f *facturaFake) GenerarFactura(_ context.Context, d checkout.DatosFactura) ([]byte, error) {
	if f.falla != nil {
		return nil, f.falla
	}
	f.datos = &d
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

const (
	usuarioID = "11111111-1111-1111-1111-111111111111"
)

type escenario struct {
	uc        *checkout.UseCase
	almacen   *almacenMemoria
	usuarios  *usuarioRepoFake
	tx        *txRunnerFake
	dirRepo   *direccionRepoFake
	ordenRepo *ordenRepoFake
	factura   *facturaFake
}

func nuevoEscenario(t *testing.T) *escenario {
	t.Helper()
	almacen := &almacenMemoria{datos: map[string][]domcarrito.Linea{}}
	carritoSvc := appcarrito.NewServicio(almacen, nil, nil)

	p1, _ := decimal.NewFromString("25.00")
	p2, _ := decimal.NewFromString("8.50")
	almacen.datos[usuarioID] = []domcarrito.Linea{
		{ID: "7", Nombre: "Miel de abeja", Precio: p1, Cantidad: 2},
		{ID: "3", Nombre: "Jengibre", Precio: p2, Cantidad: 1},
	}

	dirRepo := &direccionRepoFake{}
	ordenRepo := &ordenRepoFake{}
	tx := &txRunnerFake{direccionRepo: dirRepo, ordenRepo: ordenRepo}
	usuarios := &usuarioRepoFake{perfil: &entity.Usuario{
		ID: usuarioID, PrimerNombre: "Ana", ApellidoPaterno: "Quispe", ApellidoMaterno: "Mamani",
		CI: "1234567", Celular: "71234567", CorreoElectronico: "ana@gmail.com",
		Rol: entity.RolCliente, Visible: true,
	}}
	factura := &facturaFake{}

	uc := checkout.NewUseCase(carritoSvc, usuarios, geoRepoFake{}, tx, factura, nil)
	return &escenario{
		uc: uc, almacen: almacen, usuarios: usuarios,
		tx: tx, dirRepo: dirRepo, ordenRepo: ordenRepo, factura: factura,
	}
}

func solicitudValida() dto.CheckoutRequest {
	return dto.CheckoutRequest{
		MetodoPago:          "Efectivo",
		IDDepartamento:      1,
		IDMunicipio:         2,
		IDLocalidad:         3,
		CalleAvenida:        "Av. Arce 123",
		ReferenciaAdicional: "Frente a la plaza",
		Celular:             "71234567",
		CI:                  "1234567",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Camino feliz
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_CompraCompleta(t *testing.T) {
	e := nuevoEscenario(t)

	out, err := e.uc.Procesar(context.Background(), usuarioID, usuarioID, solicitudValida())
	require.NoError(t, err)

	assert.Equal(t, int64(123), out.IDOrden)
	assert.Equal(t, int64(55), out.IDDireccion)
	assert.Equal(t, "58.50", out.Total, "2*25.00 + 1*8.50, el total que el cliente vio")
	assert.Equal(t, "efectivo", out.MetodoPago, "el método se persiste en minúsculas")
	assert.Equal(t, entity.EstadoPendiente, out.Estado)
	assert.NotEmpty(t, out.FacturaPDF)

	// Orden: dirección → orden → una línea por producto.
	require.Len(t, e.dirRepo.creadas, 1)
	require.Len(t, e.ordenRepo.ordenes, 1)
	require.Len(t, e.ordenRepo.detalles, 2)

	orden := e.ordenRepo.ordenes[0]
	assert.Equal(t, usuarioID, orden.IDUsuario)
	assert.True(t, orden.Visible)
	assert.Equal(t, int64(55), orden.IDDireccion)

	// El precio unitario es el snapshot del carrito.
	assert.Equal(t, "7", e.ordenRepo.detalles[0].IDProducto)
	assert.Equal(t, "25.00", e.ordenRepo.detalles[0].PrecioUnitario.StringFixed(2))

	// El carrito queda vacío tras el éxito.
	assert.Empty(t, e.almacen.datos[usuarioID])
}

func TestCheckout_FacturaIncluyeDireccionResuelta(t *testing.T) {
	e := nuevoEscenario(t)

	_, err := e.uc.Procesar(context.Background(), usuarioID, usuarioID, solicitudValida())
	require.NoError(t, err)

	require.NotNil(t, e.factura.datos)
	assert.Equal(t, "La Paz", e.factura.datos.Departamento)
	assert.Equal(t, "Ana Quispe Mamani", e.factura.datos.ClienteNombre)
	assert.Equal(t, "S/N", e.factura.datos.Numero, "sin número de casa va S/N")
	assert.Len(t, e.factura.datos.Lineas, 2)
}

func TestCheckout_ReferenciaLargaSeRecortaEnFactura(t *testing.T) {
	e := nuevoEscenario(t)
	in := solicitudValida()
	larga := make([]rune, 150)
	for i := range larga {
		larga[i] = 'x'
	}
	in.ReferenciaAdicional = string(larga)

	_, err := e.uc.Procesar(context.Background(), usuarioID, usuarioID, in)
	require.NoError(t, err)

	require.NotNil(t, e.factura.datos)
	assert.Len(t, []rune(e.factura.datos.Referencia), 103, "100 caracteres más puntos suspensivos")
}

// Una falla del PDF no deshace la compra: la orden existe y el carrito se vació.
func TestCheckout_FallaDeFacturaNoAbortaLaCompra(t *testing.T) {
	e := nuevoEscenario(t)
	e.factura.falla = errors.New("sin fuente")

	out, err := e.uc.Procesar(context.Background(), usuarioID, usuarioID, solicitudValida())
	require.NoError(t, err)
	assert.Empty(t, out.FacturaPDF)
	require.Len(t, e.ordenRepo.ordenes, 1)
	assert.Empty(t, e.almacen.datos[usuarioID])
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación: nada remoto se escribe si el formulario no pasa
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_ValidacionesDelFormulario(t *testing.T) {
	casos := []struct {
		nombre  string
		mutar   func(*dto.CheckoutRequest)
		mensaje string
	}{
		{"sin método de pago", func(in *dto.CheckoutRequest) { in.MetodoPago = "" },
			"Por favor, selecciona un método de pago."},
		{"método desconocido", func(in *dto.CheckoutRequest) { in.MetodoPago = "cheque" },
			"Método de pago no reconocido."},
		{"tarjeta sin datos", func(in *dto.CheckoutRequest) { in.MetodoPago = "tarjeta" },
			"El número de tarjeta debe tener exactamente 16 dígitos."},
		{"tarjeta con código corto", func(in *dto.CheckoutRequest) {
			in.MetodoPago = "tarjeta"
			in.Tarjeta = &dto.DatosTarjeta{Numero: "4111111111111111", CodigoSeguridad: "12"}
		}, "El código de seguridad debe tener exactamente 4 dígitos."},
		{"sin localidad", func(in *dto.CheckoutRequest) { in.IDLocalidad = 0 },
			"Debes seleccionar Departamento, Municipio y Localidad."},
		{"sin calle", func(in *dto.CheckoutRequest) { in.CalleAvenida = "  " },
			"La calle o avenida es obligatoria."},
		{"celular de 7 dígitos", func(in *dto.CheckoutRequest) { in.Celular = "7123456" },
			"El campo 'Celular' debe contener exactamente 8 dígitos numéricos."},
		{"celular con letras", func(in *dto.CheckoutRequest) { in.Celular = "71234a67" },
			"El campo 'Celular' debe contener exactamente 8 dígitos numéricos."},
		{"ci de 5 dígitos", func(in *dto.CheckoutRequest) { in.CI = "12345" },
			"El campo 'C.I.' debe contener solo números (mínimo 6 dígitos)."},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			e := nuevoEscenario(t)
			in := solicitudValida()
			caso.mutar(&in)

			_, err := e.uc.Procesar(context.Background(), usuarioID, usuarioID, in)

			var rechazo *checkout.ErrorValidacion
			require.ErrorAs(t, err, &rechazo)
			assert.Equal(t, caso.mensaje, rechazo.Mensaje)
			assert.False(t, e.tx.ejecutado, "un rechazo de validación no toca el backend")
			assert.NotEmpty(t, e.almacen.datos[usuarioID], "el carrito no se vacía")
		})
	}
}

func TestCheckout_CarritoVacioSeRechaza(t *testing.T) {
	e := nuevoEscenario(t)
	e.almacen.datos[usuarioID] = nil

	_, err := e.uc.Procesar(context.Background(), usuarioID, usuarioID, solicitudValida())

	var rechazo *checkout.ErrorValidacion
	require.ErrorAs(t, err, &rechazo)
	assert.Equal(t, "Tu carrito está vacío. Añade productos para comprar.", rechazo.Mensaje)
	assert.False(t, e.tx.ejecutado)
}

// El CI de 6 a 12 dígitos pasa aquí aunque el registro exija 7: la regla del
// formulario de pago es más laxa y se respeta tal cual.
func TestCheckout_CIDeSeisDigitosPasa(t *testing.T) {
	e := nuevoEscenario(t)
	in := solicitudValida()
	in.CI = "123456"

	_, err := e.uc.Procesar(context.Background(), usuarioID, usuarioID, in)
	require.NoError(t, err)
}

func TestCheckout_TarjetaValidaPasa(t *testing.T) {
	e := nuevoEscenario(t)
	in := solicitudValida()
	in.MetodoPago = "Tarjeta"
	in.Tarjeta = &dto.DatosTarjeta{Numero: "4111111111111111", CodigoSeguridad: "1234"}

	out, err := e.uc.Procesar(context.Background(), usuarioID, usuarioID, in)
	require.NoError(t, err)
	assert.Equal(t, "tarjeta", out.MetodoPago)
}

// ──────────────────────────────────────────────────────────────────────────────
// Identidad y geografía
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_SinPerfilEsSesionInvalida(t *testing.T) {
	e := nuevoEscenario(t)
	e.usuarios.perfil = nil

	_, err := e.uc.Procesar(context.Background(), usuarioID, usuarioID, solicitudValida())
	assert.ErrorIs(t, err, domain.ErrSesionInvalida)
	assert.False(t, e.tx.ejecutado)
}

func TestCheckout_RolNoClienteSeRechaza(t *testing.T) {
	e := nuevoEscenario(t)
	e.usuarios.perfil.Rol = entity.RolAdmin

	_, err := e.uc.Procesar(context.Background(), usuarioID, usuarioID, solicitudValida())
	assert.ErrorIs(t, err, domain.ErrAccesoDenegado)
	assert.False(t, e.tx.ejecutado)
}

func TestCheckout_UbicacionInexistenteSeRechaza(t *testing.T) {
	e := nuevoEscenario(t)
	in := solicitudValida()
	in.IDDepartamento = 99 // el fake devuelve nil para este id

	_, err := e.uc.Procesar(context.Background(), usuarioID, usuarioID, in)

	var rechazo *checkout.ErrorValidacion
	require.ErrorAs(t, err, &rechazo)
	assert.Equal(t, "La ubicación seleccionada no es válida.", rechazo.Mensaje)
	assert.False(t, e.tx.ejecutado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_FallaEnDetallesDeshaceTodo(t *testing.T) {
	e := nuevoEscenario(t)
	e.ordenRepo.fallaDetalle = domain.ErrStockInsuficiente

	_, err := e.uc.Procesar(context.Background(), usuarioID, usuarioID, solicitudValida())

	var pe *checkout.ErrorPersistencia
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, checkout.EstadoCreandoDetalles, pe.Paso)
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)

	// El rollback descartó dirección y orden; el carrito sigue intacto.
	assert.Empty(t, e.dirRepo.creadas)
	assert.Empty(t, e.ordenRepo.ordenes)
	assert.NotEmpty(t, e.almacen.datos[usuarioID])
}

func TestCheckout_FallaEnDireccionNoCreaOrden(t *testing.T) {
	e := nuevoEscenario(t)
	e.dirRepo.falla = errors.New("timeout")

	_, err := e.uc.Procesar(context.Background(), usuarioID, usuarioID, solicitudValida())

	var pe *checkout.ErrorPersistencia
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, checkout.EstadoCreandoDireccion, pe.Paso)
	assert.Empty(t, e.ordenRepo.ordenes)
	assert.Empty(t, e.ordenRepo.detalles)
}

func TestCheckout_FallaEnOrden(t *testing.T) {
	e := nuevoEscenario(t)
	e.ordenRepo.fallaOrden = errors.New("timeout")

	_, err := e.uc.Procesar(context.Background(), usuarioID, usuarioID, solicitudValida())

	var pe *checkout.ErrorPersistencia
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, checkout.EstadoCreandoOrden, pe.Paso)
	assert.NotEmpty(t, e.almacen.datos[usuarioID], "el carrito no se vacía en un intento fallido")
}
