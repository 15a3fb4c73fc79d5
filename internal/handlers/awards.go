package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// AwardsHandler lists contract award notices, newest publication first.
func AwardsHandler(awards AwardLister) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		limit := c.QueryInt("limit", 50)
		offset := c.QueryInt("offset", 0)

		list, err := awards.List(ctx, limit, offset)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Error loading contract award notices"})
		}
		return c.JSON(list)
	}
}
