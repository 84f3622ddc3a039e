package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC     *usecase.UserUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	AuthUC     *auth.AuthUseCase
	Users      repository.UserRepository // resolución de subject en el access gate
	JWTSecret  string
}

// Router registra las rutas de la API bajo /api/v1.
// Solo registro y login son públicos; el resto pasa por el access gate.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	productHandler := NewProductHandler(deps.ProductUC)

	// Público
	api.Post("/users", userHandler.Create)
	api.Post("/login", userHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Users))

	users := protected.Group("/users")
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id", userHandler.PartialUpdate)
	users.Delete("/:id", userHandler.Delete)

	categories := protected.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Patch("/:id", categoryHandler.PartialUpdate)
	categories.Delete("/:id", categoryHandler.Delete)

	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id", productHandler.PartialUpdate)
	products.Delete("/:id", productHandler.Delete)
}
