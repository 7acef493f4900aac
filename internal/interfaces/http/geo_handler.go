package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-natural-api/internal/application/dto"
	"github.com/jhoicas/tienda-natural-api/internal/application/geo"
)

// GeoHandler expone la jerarquía geográfica para los selects de dirección.
type GeoHandler struct {
	uc *geo.UseCase
}

// NewGeoHandler construye el handler.
func NewGeoHandler(uc *geo.UseCase) *GeoHandler {
	return &GeoHandler{uc: uc}
}

// Departamentos GET /api/geo/departamentos
func (h *GeoHandler) Departamentos(c *fiber.Ctx) error {
	out, err := h.uc.Departamentos()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"items": out})
}

// Municipios GET /api/geo/departamentos/:id/municipios
func (h *GeoHandler) Municipios(c *fiber.Ctx) error {
	return h.listarPorPadre(c, h.uc.Municipios)
}

// Localidades GET /api/geo/municipios/:id/localidades
func (h *GeoHandler) Localidades(c *fiber.Ctx) error {
	return h.listarPorPadre(c, h.uc.Localidades)
}

// Zonas GET /api/geo/localidades/:id/zonas
func (h *GeoHandler) Zonas(c *fiber.Ctx) error {
	return h.listarPorPadre(c, h.uc.Zonas)
}

func (h *GeoHandler) listarPorPadre(c *fiber.Ctx, fn func(int64) ([]dto.OpcionGeo, error)) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := fn(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"items": out})
}
