package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HandleGetSalesReport aggregates sales over an optional date range.
// GET /api/v1/admin/sales
//
// The range is not cross-checked; an end before the start simply yields an
// empty report.
func (h *AdminHandler) HandleGetSalesReport(c *fiber.Ctx) error {
	start, err := parseReportDate(c.Query("startDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid startDate format"})
	}
	end, err := parseReportDate(c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid endDate format"})
	}

	report, err := h.Sales.Report(c.Context(), start, end)
	if err != nil {
		log.Printf("Error generating sales report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to generate sales report"})
	}

	return c.JSON(fiber.Map{"salesReport": report})
}

// parseReportDate accepts the date formats the storefront frontend is known
// to send. An empty string leaves that bound open.
func parseReportDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}
	formats := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	var lastErr error
	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return &t, nil
		} else {
			lastErr = err
		}
	}
	return nil, lastErr
}
