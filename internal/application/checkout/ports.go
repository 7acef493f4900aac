package checkout

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	domcarrito "github.com/jhoicas/tienda-natural-api/internal/domain/carrito"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
)

// TxRunner ejecuta el tramo de escrituras del checkout (dirección, orden,
// detalles) dentro de una sola transacción del backend: si cualquier paso
// falla, nada queda persistido.
type TxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		direccionRepo repository.DireccionRepository,
		ordenRepo repository.OrdenRepository,
	) error) error
}

// DatosFactura todo lo que necesita el documento de factura: se arma con datos
// ya validados y el snapshot de líneas del carrito al momento del submit.
type DatosFactura struct {
	IDOrden        int64
	Fecha          time.Time
	ClienteNombre  string
	ClienteCI      string
	ClienteCelular string
	ClienteEmail   string
	MetodoPago     string

	Departamento string
	Municipio    string
	Localidad    string
	Calle        string
	Numero       string // "S/N" si no se indicó
	Referencia   string

	Lineas []domcarrito.Linea
	Total  decimal.Decimal
}

// GeneradorFactura colaborador opaco que produce el documento descargable.
type GeneradorFactura interface {
	GenerarFactura(ctx context.Context, datos DatosFactura) ([]byte, error)
}
