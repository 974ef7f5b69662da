package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/marketplace-api/internal/application/auth"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	UserUC    *usecase.UserUseCase
	ShopUC    *usecase.ShopUseCase
	ProductUC *usecase.ProductUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Shops
	shops := api.Group("/shops")
	shopHandler := NewShopHandler(deps.ShopUC)
	shops.Get("/", shopHandler.List)
	shops.Post("/", shopHandler.Create)
	shops.Get("/:id", shopHandler.GetByID)
	shops.Put("/:id", shopHandler.Update)
	shops.Delete("/:id", shopHandler.Delete)

	// Products (lista con filtro opcional ?shopId=)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}
