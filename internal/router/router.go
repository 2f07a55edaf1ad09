// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"dashboard-api/internal/handler"
	"dashboard-api/internal/handler/auth"
	"dashboard-api/internal/handler/stats"
	"dashboard-api/internal/handler/users"
	"dashboard-api/internal/middleware"
	"dashboard-api/internal/model"
)

// AuthService 同時滿足 auth 與 users handler
type AuthService interface {
	auth.Service
	users.Service
}

// Dependencies 是註冊路由需要的元件
type Dependencies struct {
	Auth   AuthService
	Stats  stats.Service
	Tokens middleware.TokenVerifier
	Health handler.HealthDeps
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, deps Dependencies) {
	// 健康檢查（不需登入）
	e.GET("/health", handler.HealthHandler(deps.Health))

	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(deps.Tokens)

	apiAuth := api.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(deps.Auth))
	apiAuth.POST("/login", auth.LoginHandler(deps.Auth))
	apiAuth.GET("/me", auth.MeHandler(deps.Auth), requireAuth)
	apiAuth.POST("/refresh", auth.RefreshHandler(deps.Auth), requireAuth)

	// 管理員專屬
	apiUsers := api.Group("/users", requireAuth, middleware.RequireRole(model.RoleAdmin))
	apiUsers.PUT("/:id", users.UpdateUserHandler(deps.Auth))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(deps.Auth))

	apiStats := api.Group("/stats", requireAuth)
	apiStats.GET("/monthly-data", stats.MonthlyDataHandler(deps.Stats))
	apiStats.GET("/company-stats", stats.CompanyStatsHandler(deps.Stats))
	apiStats.GET("/developer-trends", stats.DeveloperTrendsHandler(deps.Stats))
	apiStats.GET("/employee-distribution", stats.EmployeeDistributionHandler(deps.Stats))
	apiStats.GET("/product-performance", stats.ProductPerformanceHandler(deps.Stats))
	apiStats.GET("/normals-chart", stats.NormalsChartHandler(deps.Stats))
	apiStats.GET("/all", stats.AllHandler(deps.Stats))
}
