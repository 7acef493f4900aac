package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	appcarrito "github.com/jhoicas/tienda-natural-api/internal/application/carrito"
	"github.com/jhoicas/tienda-natural-api/internal/application/dto"
	"github.com/jhoicas/tienda-natural-api/internal/domain"
	domcarrito "github.com/jhoicas/tienda-natural-api/internal/domain/carrito"
)

// CarritoHandler maneja las mutaciones del carrito del usuario autenticado.
// La clave del carrito es el id del usuario: un carrito por cuenta.
type CarritoHandler struct {
	svc *appcarrito.Servicio
}

// NewCarritoHandler construye el handler.
func NewCarritoHandler(svc *appcarrito.Servicio) *CarritoHandler {
	return &CarritoHandler{svc: svc}
}

// Ver GET /api/carrito
func (h *CarritoHandler) Ver(c *fiber.Ctx) error {
	clave := GetUserID(c)
	lineas, err := h.svc.Contenido(clave)
	if err != nil {
		return errorCarrito(c, err)
	}
	total, err := h.svc.Total(clave)
	if err != nil {
		return errorCarrito(c, err)
	}
	cantidad, err := h.svc.CantidadTotal(clave)
	if err != nil {
		return errorCarrito(c, err)
	}
	return c.JSON(dto.NewCarritoResponse(lineas, total, cantidad))
}

// Agregar POST /api/carrito/items
func (h *CarritoHandler) Agregar(c *fiber.Ctx) error {
	clave := GetUserID(c)
	var in dto.AgregarLineaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Cantidad == 0 {
		in.Cantidad = 1
	}
	lineas, err := h.svc.AgregarOIncrementar(clave, in.ID.String(), in.Cantidad, in.Nombre, in.Precio, in.Imagen, in.Categoria)
	if err != nil {
		return errorCarrito(c, err)
	}
	return h.responder(c, lineas)
}

// Ajustar POST /api/carrito/items/:id/cantidad con delta +1 o -1. Bajar de 1
// elimina la línea.
func (h *CarritoHandler) Ajustar(c *fiber.Ctx) error {
	clave := GetUserID(c)
	var in dto.AjustarCantidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lineas, err := h.svc.AjustarCantidad(clave, c.Params("id"), in.Delta)
	if err != nil {
		return errorCarrito(c, err)
	}
	return h.responder(c, lineas)
}

// Eliminar DELETE /api/carrito/items/:id. Es idempotente.
func (h *CarritoHandler) Eliminar(c *fiber.Ctx) error {
	clave := GetUserID(c)
	lineas, err := h.svc.Eliminar(clave, c.Params("id"))
	if err != nil {
		return errorCarrito(c, err)
	}
	return h.responder(c, lineas)
}

// errorCarrito traduce los errores del motor y del almacén a HTTP.
func errorCarrito(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCantidadInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la cantidad debe ser al menos 1"})
	case errors.Is(err, domain.ErrDatosProductoFaltantes):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "un producto nuevo requiere nombre y precio"})
	case errors.Is(err, domain.ErrStockInsuficiente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK", Message: "no hay stock suficiente para esa cantidad"})
	case errors.Is(err, domain.ErrAlmacenNoDisponible):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE", Message: "el carrito no se pudo guardar; intente de nuevo"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Vaciar DELETE /api/carrito
func (h *CarritoHandler) Vaciar(c *fiber.Ctx) error {
	if err := h.svc.Vaciar(GetUserID(c)); err != nil {
		return errorCarrito(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CarritoHandler) responder(c *fiber.Ctx, lineas []domcarrito.Linea) error {
	total := decimal.Zero
	cantidad := 0
	for _, l := range lineas {
		total = total.Add(l.Subtotal())
		cantidad += l.Cantidad
	}
	return c.JSON(dto.NewCarritoResponse(lineas, total, cantidad))
}
