package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// HandleGetDashboard returns the admin dashboard summary.
// GET /api/v1/admin/dashboard
func (h *AdminHandler) HandleGetDashboard(c *fiber.Ctx) error {
	stats, err := h.Sales.DashboardStats(c.Context())
	if err != nil {
		log.Printf("Error fetching admin dashboard stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch admin dashboard data"})
	}

	return c.JSON(fiber.Map{"stats": stats})
}
