// Package pdf genera la factura de compra descargable de la tienda.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda Natural  │  N° Orden + Fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + C.I. + contacto                           │
//	│  ENTREGA: Departamento / Municipio / Localidad + Calle       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cant. | P. Unit. | Subtotal               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + método de pago                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-natural-api/internal/application/checkout"
	domcarrito "github.com/jhoicas/tienda-natural-api/internal/domain/carrito"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorVerde  = &props.Color{Red: 34, Green: 102, Blue: 68}
	colorGris   = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorBlanco = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorFranja = &props.Color{Red: 240, Green: 245, Blue: 240}
)

var _ checkout.GeneradorFactura = (*FacturaMaroto)(nil)

// FacturaMaroto implementa checkout.GeneradorFactura usando Maroto v2.
type FacturaMaroto struct{}

// NewFacturaMaroto construye el generador.
func NewFacturaMaroto() *FacturaMaroto { return &FacturaMaroto{} }

// GenerarFactura genera el PDF y devuelve sus bytes.
func (g *FacturaMaroto) GenerarFactura(_ context.Context, datos checkout.DatosFactura) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Factura de Compra N° %d", datos.IDOrden), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerFactura(datos))
	m.AddRows(line.NewRow(1, props.Line{Color: colorVerde, Thickness: 0.5}))
	m.AddRows(bloqueCliente(datos))
	m.AddRows(bloqueEntrega(datos))
	m.AddRows(line.NewRow(1, props.Line{Color: colorVerde, Thickness: 0.3}))

	m.AddRows(cabeceraTabla())
	for _, r := range filasProductos(datos.Lineas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorVerde, Thickness: 0.3}))
	m.AddRows(filaTotal(datos))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar factura: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerFactura: nombre de la tienda (izq) y número de orden + fecha (der).
func headerFactura(datos checkout.DatosFactura) core.Row {
	fecha := datos.Fecha.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Tienda Natural", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorVerde, Top: 1,
			}),
			text.New("Productos naturales de Bolivia", props.Text{
				Size: 9, Top: 9, Color: colorGris,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorVerde, Top: 1,
			}),
			text.New(fmt.Sprintf("Orden N° %d", datos.IDOrden), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGris,
			}),
		),
	)
}

// bloqueCliente: datos del comprador.
func bloqueCliente(datos checkout.DatosFactura) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DATOS DEL CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorVerde, Top: 1,
			}),
			text.New(datos.ClienteNombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("C.I.: %s   |   Celular: %s   |   Email: %s",
				datos.ClienteCI, datos.ClienteCelular, datos.ClienteEmail,
			), props.Text{Size: 8, Top: 12, Color: colorGris}),
		),
	)
}

// bloqueEntrega: la dirección resuelta a nombres. La referencia ya viene
// recortada a 100 caracteres desde el checkout.
func bloqueEntrega(datos checkout.DatosFactura) core.Row {
	ubicacion := fmt.Sprintf("%s / %s / %s", datos.Departamento, datos.Municipio, datos.Localidad)
	calle := fmt.Sprintf("%s N° %s", datos.Calle, datos.Numero)
	detalle := calle
	if ref := strings.TrimSpace(datos.Referencia); ref != "" {
		detalle += "   |   Ref: " + ref
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DIRECCIÓN DE ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorVerde, Top: 1,
			}),
			text.New(ubicacion, props.Text{Size: 9, Top: 6}),
			text.New(detalle, props.Text{Size: 8, Top: 11, Color: colorGris}),
		),
	)
}

// cabeceraTabla: columnas de la tabla de productos.
func cabeceraTabla() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorBlanco, Top: 2, Left: 1, Right: 1,
		})).WithStyle(&props.Cell{BackgroundColor: colorVerde})
	}
	return row.New(8).Add(
		h("Producto", 6, align.Left),
		h("Cant.", 2, align.Center),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// filasProductos: una fila por línea del carrito, con franjas alternas.
func filasProductos(lineas []domcarrito.Linea) []core.Row {
	result := make([]core.Row, 0, len(lineas))
	for i, l := range lineas {
		subtotal := l.Precio.Mul(decimal.NewFromInt(int64(l.Cantidad)))
		fila := row.New(7).Add(
			col.New(6).Add(text.New(
				l.Nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", l.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"Bs "+formatearMonto(l.Precio),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"Bs "+formatearMonto(subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		)
		if i%2 == 1 {
			fila.WithStyle(&props.Cell{BackgroundColor: colorFranja})
		}
		result = append(result, fila)
	}
	return result
}

// filaTotal: total de la orden y método de pago.
func filaTotal(datos checkout.DatosFactura) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("Método de pago: "+strings.ToUpper(datos.MetodoPago), props.Text{
				Size: 9, Top: 3, Color: colorGris,
			}),
		),
		col.New(4).Add(
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorVerde, Top: 2, Right: 2,
			}),
		),
		col.New(2).Add(
			text.New("Bs "+formatearMonto(datos.Total), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorVerde, Top: 2, Right: 1,
			}),
		),
	)
}

// formatearMonto: dos decimales con coma decimal ("12,50"), como los precios
// de la tienda.
func formatearMonto(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}
