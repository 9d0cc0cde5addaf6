package dashboard

import (
	"github.com/gofiber/fiber/v2"
)

// Figures on every endpoint here come from a TTL cache, so they may lag the
// ledger by a few minutes.

func GetDashboardAPI(c *fiber.Ctx) error {
	summary, err := dashboardService.Summary()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute dashboard"})
	}
	return c.JSON(summary)
}

func GetStatsAPI(c *fiber.Ctx) error {
	stats, err := dashboardService.Stats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute stats"})
	}
	return c.JSON(stats)
}

func GetTrendsAPI(c *fiber.Ctx) error {
	trends, err := dashboardService.Trends()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute trends"})
	}
	return c.JSON(trends)
}

func GetDistributionsAPI(c *fiber.Ctx) error {
	distributions, err := dashboardService.Distributions()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute distributions"})
	}
	return c.JSON(distributions)
}

func GetRecentPaymentsAPI(c *fiber.Ctx) error {
	recent, err := dashboardService.RecentPayments()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch recent payments"})
	}
	return c.JSON(fiber.Map{"recent_payments": recent})
}
