package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// StatusesHandler lists the most recent package ingestion statuses.
func StatusesHandler(statuses StatusLister) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		limit := c.QueryInt("limit", 20)

		list, err := statuses.Latest(ctx, limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Error loading package statuses"})
		}
		return c.JSON(list)
	}
}
