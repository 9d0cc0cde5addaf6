package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mark-john-ignacio/school-cashier-system/app/config"
	"github.com/mark-john-ignacio/school-cashier-system/app/routes/auth"
	"github.com/mark-john-ignacio/school-cashier-system/app/services"
)

var dashboardService *services.DashboardService

func SetupDashboardRoutes(app *fiber.App) {
	cache := services.NewCache(config.DashboardCacheTTL())
	dashboardService = services.NewDashboardService(config.GetDB(), cache)

	dashboard := app.Group("/api/dashboard", auth.AuthMiddleware)
	dashboard.Get("/", GetDashboardAPI)
	dashboard.Get("/stats", GetStatsAPI)
	dashboard.Get("/trends", GetTrendsAPI)
	dashboard.Get("/distributions", GetDistributionsAPI)
	dashboard.Get("/recent-payments", GetRecentPaymentsAPI)
}
