package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler ingests a single TED XML document posted as multipart form
// data under the "file" field. The response carries the validation outcome;
// rejections are reported with 200 because the request itself succeeded.
func UploadHandler(ingestor Ingestor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Missing file upload"})
		}

		f, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Unreadable file upload"})
		}
		defer f.Close()

		accepted, violations, err := ingestor.IngestFile(ctx, fileHeader.Filename, f)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Error processing document"})
		}

		if violations == nil {
			violations = []string{}
		}
		return c.JSON(fiber.Map{
			"accepted":   accepted,
			"violations": violations,
		})
	}
}
