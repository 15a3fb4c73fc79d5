package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// NoticesHandler lists contract notices, newest publication first.
func NoticesHandler(notices NoticeLister) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		limit := c.QueryInt("limit", 50)
		offset := c.QueryInt("offset", 0)

		list, err := notices.List(ctx, limit, offset)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Error loading contract notices"})
		}
		return c.JSON(list)
	}
}

type noticeDocsRequest struct {
	Key string `json:"key"`
}

// NoticeDocsHandler records the blob-store key of a supporting document
// uploaded for a notice. Only the key is stored here; the blob itself lives
// in external storage.
func NoticeDocsHandler(notices NoticeLister) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Invalid notice id"})
		}

		var req noticeDocsRequest
		if err := c.BodyParser(&req); err != nil || req.Key == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Missing document key"})
		}

		if err := notices.AttachProcurementDocs(ctx, id, req.Key); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Error attaching document"})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// NoticeLotsHandler lists the lots of one contract notice.
func NoticeLotsHandler(lots LotReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Invalid notice id"})
		}

		list, err := lots.ListByNotice(ctx, id)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Error loading lots"})
		}
		return c.JSON(list)
	}
}
