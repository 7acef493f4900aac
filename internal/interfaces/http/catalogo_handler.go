package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-natural-api/internal/application/catalogo"
	"github.com/jhoicas/tienda-natural-api/internal/application/dto"
	"github.com/jhoicas/tienda-natural-api/internal/domain"
)

// CatalogoHandler maneja el catálogo público: listados, detalle, relacionados,
// búsqueda y solicitudes de precio.
type CatalogoHandler struct {
	uc          *catalogo.UseCase
	buscador    *catalogo.Buscador
	solicitudes *catalogo.Solicitudes
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *catalogo.UseCase, buscador *catalogo.Buscador, solicitudes *catalogo.Solicitudes) *CatalogoHandler {
	return &CatalogoHandler{uc: uc, buscador: buscador, solicitudes: solicitudes}
}

// Listar GET /api/productos?categoria=&orden=&page=
// La categoría viaja por nombre, igual que en la URL de la tienda.
func (h *CatalogoHandler) Listar(c *fiber.Ctx) error {
	categoria := c.Query("categoria")
	if categoria == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el parámetro categoria es requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.ListarPorCategoria(categoria, c.Query("orden"), page)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Detalle GET /api/productos/:id
func (h *CatalogoHandler) Detalle(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := h.uc.Detalle(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Relacionados GET /api/productos/:id/relacionados
func (h *CatalogoHandler) Relacionados(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := h.uc.Relacionados(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"items": out})
}

// Categorias GET /api/categorias
func (h *CatalogoHandler) Categorias(c *fiber.Ctx) error {
	out, err := h.uc.Categorias()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"items": out})
}

// claveSesionBusqueda identifica al cliente del buscador. La ruta es pública,
// así que la clave viene de un token de sesión del cliente o, en su defecto,
// de la IP de origen.
func claveSesionBusqueda(c *fiber.Ctx) string {
	if s := c.Get("X-Session-Id"); s != "" {
		return s
	}
	return c.IP()
}

// Buscar GET /api/buscar?buscar= (q se acepta como alias).
// Con menos de 2 caracteres responde lista vacía, igual que el buscador de la
// tienda, que ni siquiera dispara la consulta.
func (h *CatalogoHandler) Buscar(c *fiber.Ctx) error {
	consulta := c.Query("buscar")
	if consulta == "" {
		consulta = c.Query("q")
	}
	res, err := h.buscador.Buscar(claveSesionBusqueda(c), consulta)
	if err != nil {
		if errors.Is(err, catalogo.ErrConsultaCorta) {
			return c.JSON(fiber.Map{"items": []dto.ProductoResponse{}})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if res.Obsoleto {
		// Una consulta más nueva ya corrió; este resultado no debe pintarse.
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": []dto.ProductoResponse{}, "obsoleto": true})
	}
	return c.JSON(fiber.Map{"items": res.Items})
}

// Solicitar POST /api/solicitudes, formulario "Consultar Precio".
func (h *CatalogoHandler) Solicitar(c *fiber.Ctx) error {
	var in dto.SolicitudInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.solicitudes.Crear(in); err != nil {
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto, nombre y un email válido son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusCreated)
}
