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

	"github.com/jhoicas/picking-scanner-api/internal/application/picking"
	"github.com/jhoicas/picking-scanner-api/internal/application/usecase"
	"github.com/jhoicas/picking-scanner-api/internal/domain/gs1"
	"github.com/jhoicas/picking-scanner-api/internal/infrastructure/cache"
	"github.com/jhoicas/picking-scanner-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/picking-scanner-api/internal/interfaces/http"
	"github.com/jhoicas/picking-scanner-api/pkg/config"
	"github.com/jhoicas/picking-scanner-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.AutoMigrate {
		version, err := postgres.Migrate(cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Uint("version", version).Msg("esquema al día")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	var products picking.ProductLookup = picking.NewProductLookupService(postgres.NewProductRepository(pool))
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	switch {
	case err != nil:
		// Sin Redis el escaneo sigue funcionando contra PostgreSQL
		log.Warn().Err(err).Msg("redis no disponible, caché de productos desactivada")
	case redisClient != nil:
		defer redisClient.Close()
		ttl := time.Duration(cfg.Redis.ProductTTLSeconds) * time.Second
		products = cache.NewProductLookupCache(products, redisClient, ttl, log)
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", ttl).Msg("caché de productos en redis")
	}

	settingsRepo := postgres.NewSettingsRepository(pool, postgres.SettingsDefaults(cfg.Scanner))
	txRunner := postgres.NewTxRunner(pool)
	scanUC := picking.NewScanUseCase(txRunner, products, settingsRepo, gs1.NewParser(), log)
	pickingUC := picking.NewPickingUseCase(txRunner, settingsRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en http://localhost:<port>/docs cuando existe la especificación generada con swag
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Picking Scanner API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ScanUC:     scanUC,
		PickingUC:  pickingUC,
		SettingsUC: settingsUC,
		JWTSecret:  cfg.JWT.Secret,
		Logger:     log,
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
