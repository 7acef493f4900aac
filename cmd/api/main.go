package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tienda-natural-api/internal/application/auth"
	appcarrito "github.com/jhoicas/tienda-natural-api/internal/application/carrito"
	"github.com/jhoicas/tienda-natural-api/internal/application/catalogo"
	"github.com/jhoicas/tienda-natural-api/internal/application/checkout"
	"github.com/jhoicas/tienda-natural-api/internal/application/geo"
	domcarrito "github.com/jhoicas/tienda-natural-api/internal/domain/carrito"
	"github.com/jhoicas/tienda-natural-api/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/tienda-natural-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-natural-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/tienda-natural-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-natural-api/pkg/config"
	"github.com/jhoicas/tienda-natural-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.HTTP.RemoteTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	credencialRepo := postgres.NewCredencialRepository(pool)
	geoRepo := postgres.NewGeoRepository(pool)
	solicitudRepo := postgres.NewSolicitudRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	almacen, err := localstore.NewAlmacenArchivo(cfg.Carrito.Dir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de carritos")
	}

	stock := catalogo.NewStockCatalogo(productoRepo)
	carritoSvc := appcarrito.NewServicio(almacen, stock, log)
	// La señal de refresco del carrito, observable en los logs.
	carritoSvc.Suscribir(func(clave string, lineas []domcarrito.Linea) {
		log.Debug().Str("carrito", clave).Int("lineas", len(lineas)).Msg("carrito actualizado")
	})

	catalogoUC := catalogo.NewUseCase(productoRepo, categoriaRepo)
	buscador := catalogo.NewBuscador(productoRepo)
	solicitudes := catalogo.NewSolicitudes(solicitudRepo, productoRepo)
	geoUC := geo.NewUseCase(geoRepo)

	facturaGen := infrapdf.NewFacturaMaroto()
	checkoutUC := checkout.NewUseCase(carritoSvc, usuarioRepo, geoRepo, txRunner, facturaGen, log)

	authUC := auth.NewUseCase(credencialRepo, usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * time.Duration(cfg.HTTP.RemoteTimeout+5),
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogoUC:  catalogoUC,
		Buscador:    buscador,
		Solicitudes: solicitudes,
		CarritoSvc:  carritoSvc,
		CheckoutUC:  checkoutUC,
		GeoUC:       geoUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
