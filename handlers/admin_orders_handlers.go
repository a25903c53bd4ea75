package handlers

import (
	"log"

	"coffeeshop/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleGetOrders returns a paginated, optionally status-filtered order list.
// GET /api/v1/admin/users
//
// The route says users but the payload is orders; the storefront frontend
// depends on both the path and the response key, so both stay as they are.
func (h *AdminHandler) HandleGetOrders(c *fiber.Ctx) error {
	status := c.Query("status")
	page, limit := utils.ParsePagination(c.Query("page"), c.Query("limit"))

	orders, total, err := h.Orders.ListOrders(c.Context(), status, page, limit)
	if err != nil {
		log.Printf("Error fetching orders (status=%q page=%d limit=%d): %v", status, page, limit, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch orders"})
	}

	return c.JSON(fiber.Map{
		"orders": orders,
		"page":   page,
		"limit":  limit,
		"total":  total,
		"pages":  utils.TotalPages(total, limit),
	})
}
