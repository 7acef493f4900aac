package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-natural-api/internal/application/auth"
	appcarrito "github.com/jhoicas/tienda-natural-api/internal/application/carrito"
	"github.com/jhoicas/tienda-natural-api/internal/application/catalogo"
	"github.com/jhoicas/tienda-natural-api/internal/application/checkout"
	"github.com/jhoicas/tienda-natural-api/internal/application/geo"
	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CatalogoUC  *catalogo.UseCase
	Buscador    *catalogo.Buscador
	Solicitudes *catalogo.Solicitudes
	CarritoSvc  *appcarrito.Servicio
	CheckoutUC  *checkout.UseCase
	GeoUC       *geo.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/registro", authHandler.Registro)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Catálogo (público)
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC, deps.Buscador, deps.Solicitudes)
	api.Get("/productos", catalogoHandler.Listar)
	api.Get("/productos/:id", catalogoHandler.Detalle)
	api.Get("/productos/:id/relacionados", catalogoHandler.Relacionados)
	api.Get("/categorias", catalogoHandler.Categorias)
	api.Get("/buscar", catalogoHandler.Buscar)
	api.Post("/solicitudes", catalogoHandler.Solicitar)

	// Geografía (público; llena los selects del formulario de dirección)
	geoGroup := api.Group("/geo")
	geoHandler := NewGeoHandler(deps.GeoUC)
	geoGroup.Get("/departamentos", geoHandler.Departamentos)
	geoGroup.Get("/departamentos/:id/municipios", geoHandler.Municipios)
	geoGroup.Get("/municipios/:id/localidades", geoHandler.Localidades)
	geoGroup.Get("/localidades/:id/zonas", geoHandler.Zonas)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/perfil", authHandler.Perfil)

	// Carrito (protegido)
	carritoGroup := protected.Group("/carrito")
	carritoHandler := NewCarritoHandler(deps.CarritoSvc)
	carritoGroup.Get("/", carritoHandler.Ver)
	carritoGroup.Post("/items", carritoHandler.Agregar)
	carritoGroup.Post("/items/:id/cantidad", carritoHandler.Ajustar)
	carritoGroup.Delete("/items/:id", carritoHandler.Eliminar)
	carritoGroup.Delete("/", carritoHandler.Vaciar)

	// Checkout (protegido, solo clientes)
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	protected.Post("/checkout", RequireRol(entity.RolCliente), checkoutHandler.Procesar)
}
