package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/vyrade/postlog/internal/apperrors"
	"github.com/vyrade/postlog/internal/repository"
)

// respondError maps the error taxonomy onto HTTP statuses. Validation and
// not-found messages are safe to surface; anything else gets the generic
// fallback and the detail stays in the server log.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	if apperrors.IsValidation(err) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if apperrors.IsNotFound(err) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}
	slog.Error(fallback, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fallback})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": message})
}

func postFilters(c *fiber.Ctx) repository.PostFilters {
	return repository.PostFilters{
		BrandID:   c.Query("brand_id"),
		Status:    c.Query("status"),
		DateRange: c.Query("date_range"),
	}
}

// dashboardFilters omits status: the aggregate views are published-only by
// definition.
func dashboardFilters(c *fiber.Ctx) repository.PostFilters {
	return repository.PostFilters{
		BrandID:   c.Query("brand_id"),
		DateRange: c.Query("date_range"),
	}
}
