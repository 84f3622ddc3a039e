package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
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

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	hasher := auth.NewHasher()
	authUC := auth.NewAuthUseCase(userRepo, hasher, cfg.JWT, log)
	userUC := usecase.NewUserUseCase(userRepo, hasher)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs (solo si el spec está generado)
	if !registerSwagger(app, swaggerSpecPath, cfg.App.Name) {
		log.Warn().Str("path", swaggerSpecPath).Msg("spec de swagger no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:     userUC,
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		AuthUC:     authUC,
		Users:      userRepo,
		JWTSecret:  cfg.JWT.Secret,
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

// swaggerSpecPath archivo generado con `swag init` a partir de las anotaciones de los handlers.
const swaggerSpecPath = "./docs/swagger.json"

// registerSwagger monta la UI de swagger solo si el spec existe: swagger.New
// entra en pánico con un path inexistente, y la API debe arrancar sin /docs.
func registerSwagger(app *fiber.App, filePath, title string) bool {
	if _, err := os.Stat(filePath); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
	return true
}
