package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/assetflow/maintenance-service/internal/api/http/handlers"
	"github.com/assetflow/maintenance-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Requests  *handlers.RequestsHandler
	Dashboard *handlers.DashboardHandler
	Catalog   *handlers.CatalogHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1", auth.Middleware())

	requests := api.Group("/requests")
	requests.Post("", cfg.Requests.Create)
	requests.Get("", cfg.Requests.List)
	requests.Get("/:id", cfg.Requests.Get)
	requests.Post("/:id/assign", cfg.Requests.Assign)
	requests.Post("/:id/status", auth.RequireAdmin(), cfg.Requests.UpdateStatus)
	requests.Post("/:id/warranty", cfg.Requests.SetWarrantyUsed)
	requests.Post("/:id/attachments", cfg.Requests.AddAttachment)
	requests.Delete("/:id", auth.RequireAdmin(), cfg.Requests.Delete)

	api.Get("/dashboard/metrics", cfg.Dashboard.Metrics)

	api.Post("/assets", auth.RequireAdmin(), cfg.Catalog.RegisterAsset)
	api.Get("/assets", cfg.Catalog.ListAssets)

	team := api.Group("/team")
	team.Post("/employees", auth.RequireAdmin(), cfg.Catalog.RegisterEmployee)
	team.Get("/employees", cfg.Catalog.ListEmployees)
	team.Post("/vendors", auth.RequireAdmin(), cfg.Catalog.RegisterVendor)
	team.Get("/vendors", cfg.Catalog.ListVendors)
}
