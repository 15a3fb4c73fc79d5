package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// CountriesHandler lists the countries ingested tenders have referenced.
// Codes never referenced stay inactive and are not listed.
func CountriesHandler(countries CountryLister) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		list, err := countries.ActiveCountries(ctx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Error loading countries"})
		}
		return c.JSON(list)
	}
}
