package handlers

import (
	"log"

	"coffeeshop/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleGetCustomers returns a paginated customer list with order aggregates.
// GET /api/v1/admin/customers
func (h *AdminHandler) HandleGetCustomers(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c.Query("page"), c.Query("limit"))

	customers, err := h.Customers.ListCustomers(c.Context(), page, limit)
	if err != nil {
		log.Printf("Error fetching customers (page=%d limit=%d): %v", page, limit, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch customers"})
	}

	return c.JSON(fiber.Map{
		"customers": customers,
		"page":      page,
		"limit":     limit,
	})
}
