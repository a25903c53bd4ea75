package handlers

import (
	"fmt"
	"time"

	"coffeeshop/models"

	"github.com/gofiber/fiber/v2"
)

// HandleExportData builds a descriptor for a data export and returns it.
// GET /api/v1/admin/export/:type
func (h *AdminHandler) HandleExportData(c *fiber.Ctx) error {
	exportType := c.Params("type")

	export := models.ExportDescriptor{
		Type:      exportType,
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		URL:       fmt.Sprintf("/downloads/export-%s-%d.%s", exportType, time.Now().Unix(), exportType),
	}

	return c.JSON(export)
}
