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
	"github.com/jhoicas/marketplace-api/internal/application/auth"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/marketplace-api/internal/interfaces/http"
	"github.com/jhoicas/marketplace-api/pkg/config"
	"github.com/jhoicas/marketplace-api/pkg/logger"
	"github.com/shopspring/decimal"
)

func main() {
	// price viaja como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true

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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	shopRepo := postgres.NewShopRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	userUC := usecase.NewUserUseCase(userRepo)
	shopUC := usecase.NewShopUseCase(shopRepo, userRepo)
	productUC := usecase.NewProductUseCase(productRepo, shopRepo)
	authUC := auth.NewUseCase(userRepo)

	// Bootstrap idempotente: asegurar el usuario administrador por defecto.
	if cfg.Seed.Enabled {
		created, err := userUC.EnsureDefaultAdmin(usecase.SeedAdmin{
			Email:    cfg.Seed.Email,
			Name:     cfg.Seed.Name,
			Password: cfg.Seed.Password,
			Phone:    cfg.Seed.Phone,
			Role:     cfg.Seed.Role,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("seed del usuario administrador")
		}
		if created {
			log.Info().Str("email", cfg.Seed.Email).Msg("usuario administrador creado")
		}
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
		Title:    "Marketplace API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		ShopUC:    shopUC,
		ProductUC: productUC,
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
