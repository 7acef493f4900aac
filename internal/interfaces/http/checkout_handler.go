package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-natural-api/internal/application/checkout"
	"github.com/jhoicas/tienda-natural-api/internal/application/dto"
	"github.com/jhoicas/tienda-natural-api/internal/domain"
)

// CheckoutHandler maneja el submit de la página de pago.
type CheckoutHandler struct {
	uc *checkout.UseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *checkout.UseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Procesar POST /api/checkout. La clave del carrito es el id del usuario.
func (h *CheckoutHandler) Procesar(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Procesar(c.UserContext(), userID, userID, in)
	if err != nil {
		var rechazo *checkout.ErrorValidacion
		var persistencia *checkout.ErrorPersistencia
		switch {
		case errors.As(err, &rechazo):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: rechazo.Mensaje})
		case errors.Is(err, domain.ErrSesionInvalida):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Debes iniciar sesión para finalizar la compra."})
		case errors.Is(err, domain.ErrAccesoDenegado):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Solo las cuentas de cliente pueden comprar."})
		case errors.Is(err, domain.ErrCarritoVacio):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Tu carrito está vacío."})
		case errors.Is(err, domain.ErrStockInsuficiente):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK", Message: "Uno de los productos ya no tiene stock suficiente."})
		case errors.As(err, &persistencia):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "No se pudo registrar la compra; intente de nuevo."})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
