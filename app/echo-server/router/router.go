package router

import (
	"idealPrice/internal/middleware"
	"idealPrice/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupPricingRoutes(e *echo.Echo, handler *rest.PricingHandler) {
	e.GET("/api/calculate_price/:product_id", handler.CalculatePrice)

	products := e.Group("/api/v1/products")
	products.GET("/:product_id/ideal-price", handler.CalculatePrice)
}

// SetupDatasetAdminRoutes mounts the admin endpoints. Nothing is mounted
// without a JWT secret.
func SetupDatasetAdminRoutes(e *echo.Echo, handler *rest.DatasetAdminHandler, jwtSecret string) bool {
	if jwtSecret == "" {
		return false
	}

	admin := e.Group("/api/v1/admin/datasets", middleware.AuthMiddleware(jwtSecret), middleware.AdminOnly())
	admin.DELETE("/cache", handler.InvalidateCache)
	admin.GET("/:group", handler.GetDatasetSummary)

	return true
}

func SetupHealthRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/health", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger.json", rest.SwaggerJSON)
}
