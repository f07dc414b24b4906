package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/smartflow/smartflow-api/internal/application/auth"
	"github.com/smartflow/smartflow-api/internal/application/conversion"
	"github.com/smartflow/smartflow-api/internal/application/entrada"
	"github.com/smartflow/smartflow-api/internal/application/informe"
	"github.com/smartflow/smartflow-api/internal/application/movimiento"
	"github.com/smartflow/smartflow-api/internal/application/ordencompra"
	"github.com/smartflow/smartflow-api/internal/application/salida"
	"github.com/smartflow/smartflow-api/internal/application/usecase"
	"github.com/smartflow/smartflow-api/internal/infrastructure/postgres"
	infraredis "github.com/smartflow/smartflow-api/internal/infrastructure/redis"
	httpRouter "github.com/smartflow/smartflow-api/internal/interfaces/http"
	"github.com/smartflow/smartflow-api/pkg/config"
	"github.com/smartflow/smartflow-api/pkg/logger"
)

// Proveedor asignado a los traspasos creados desde movimientos (no llevan
// proveedor real; el valor viene del catálogo sembrado).
const proveedorTraspasos = "INTERNO"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		App:   cfg.App.Name,
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	perfumeRepo := postgres.NewPerfumeRepository(pool)
	entradaRepo := postgres.NewEntradaRepository(pool)
	ordenRepo := postgres.NewOrdenCompraRepository(pool)
	traspasoRepo := postgres.NewTraspasoRepository(pool)
	salidaRepo := postgres.NewSalidaRepository(pool)
	almacenRepo := postgres.NewAlmacenRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	counterRepo := postgres.NewCounterRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de consultas de perfume: opcional, REDIS_ADDR vacío la desactiva.
	var perfumeCache *infraredis.PerfumeCache
	if cfg.Redis.Addr != "" {
		perfumeCache, err = infraredis.NewPerfumeCache(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer func() { _ = perfumeCache.Close() }()
	}

	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	ordenUC := ordencompra.NewUseCase(txRunner, ordenRepo, entradaRepo, counterRepo)
	entradaUC := entrada.NewUseCase(entradaRepo, ordenRepo, counterRepo)
	conversionUC := conversion.NewUseCase(txRunner, entradaRepo, ordenRepo, traspasoRepo, perfumeRepo, counterRepo)
	informeUC := informe.NewUseCase(entradaRepo, salidaRepo)
	perfumeUC := usecase.NewPerfumeUseCase(perfumeRepo)
	almacenUC := usecase.NewAlmacenUseCase(almacenRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	var movimientoUC *movimiento.UseCase
	var salidaUC *salida.UseCase
	if perfumeCache != nil {
		movimientoUC = movimiento.NewUseCase(traspasoRepo, perfumeRepo, almacenRepo, counterRepo, perfumeCache, proveedorTraspasos, log.Zerolog())
		salidaUC = salida.NewUseCase(txRunner, salidaRepo, perfumeRepo, perfumeCache, log.Zerolog())
	} else {
		movimientoUC = movimiento.NewUseCase(traspasoRepo, perfumeRepo, almacenRepo, counterRepo, nil, proveedorTraspasos, log.Zerolog())
		salidaUC = salida.NewUseCase(txRunner, salidaRepo, perfumeRepo, nil, log.Zerolog())
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SmartFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		OrdenUC:      ordenUC,
		EntradaUC:    entradaUC,
		ConversionUC: conversionUC,
		MovimientoUC: movimientoUC,
		SalidaUC:     salidaUC,
		InformeUC:    informeUC,
		PerfumeUC:    perfumeUC,
		AlmacenUC:    almacenUC,
		ProveedorUC:  proveedorUC,
		UserUC:       userUC,
		JWTSecret:    cfg.JWT.Secret,
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
