package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden.
const (
	EstadoPendiente = "pendiente"
	EstadoEnviado   = "enviado"
)

// Métodos de pago aceptados (se persisten en minúsculas).
const (
	PagoEfectivo = "efectivo"
	PagoTarjeta  = "tarjeta"
	PagoQR       = "qr"
)

// Orden cabecera de una compra. El total se fija al momento del submit y no se
// recalcula después: debe coincidir con lo que el cliente vio.
type Orden struct {
	ID          int64
	IDUsuario   string
	IDDireccion int64
	Fecha       time.Time
	Total       decimal.Decimal
	MetodoPago  string
	Estado      string
	Visible     bool
}

// OrdenDetalle una línea de la orden. PrecioUnitario es el snapshot del carrito,
// nunca se relee del catálogo.
type OrdenDetalle struct {
	ID             int64
	IDOrden        int64
	IDProducto     string
	Cantidad       int
	PrecioUnitario decimal.Decimal
}

// Subtotal de la línea.
func (d *OrdenDetalle) Subtotal() decimal.Decimal {
	return d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
}
