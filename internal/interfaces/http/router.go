package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/application/auth"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ReportUC   *usecase.ReportUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Label tables (public: the login page already localizes)
	catalogHandler := NewCatalogHandler()
	api.Get("/catalog/labels", catalogHandler.Labels)

	// Categories (protected, Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.ReportUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	// Fixed segments before the :id wildcard.
	categories.Get("/roots", categoryHandler.ListRoots)
	categories.Get("/inheritance", categoryHandler.Inheritance)
	categories.Get("/report", categoryHandler.Report)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)
}
