package handlers

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type lotUnitsRequest struct {
	NumberOfUnits *int64 `json:"number_of_units"`
}

// LotUnitsHandler sets or clears a lot's manually entered number of units.
// The value per unit is recomputed on the same save.
func LotUnitsHandler(lots LotReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Invalid lot id"})
		}

		var req lotUnitsRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Invalid request body"})
		}
		if req.NumberOfUnits != nil && *req.NumberOfUnits <= 0 {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Number of units must be positive"})
		}

		units := sql.NullInt64{}
		if req.NumberOfUnits != nil {
			units = sql.NullInt64{Int64: *req.NumberOfUnits, Valid: true}
		}

		lot, err := lots.SetNumberOfUnits(ctx, id, units)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Error updating lot"})
		}
		if lot == nil {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "Lot not found"})
		}
		return c.JSON(lot)
	}
}
