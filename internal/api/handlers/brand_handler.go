package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vyrade/postlog/internal/service"
	"github.com/vyrade/postlog/internal/transfer"
)

type BrandHandler struct {
	s service.BrandService
}

func NewBrandHandler(service service.BrandService) *BrandHandler {
	return &BrandHandler{s: service}
}

func (h *BrandHandler) ListBrands(c *fiber.Ctx) error {
	brands, err := h.s.List(c.Context())
	if err != nil {
		return respondError(c, err, "Failed to fetch brands")
	}
	return c.JSON(brands)
}

func (h *BrandHandler) GetBrand(c *fiber.Ctx) error {
	brand, err := h.s.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Failed to fetch brand")
	}
	return c.JSON(brand)
}

func (h *BrandHandler) CreateBrand(c *fiber.Ctx) error {
	var body transfer.BrandCreation
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Unable to parse json")
	}

	brand, err := h.s.Create(c.Context(), &body)
	if err != nil {
		return respondError(c, err, "Failed to create brand")
	}
	return c.Status(fiber.StatusCreated).JSON(brand)
}

func (h *BrandHandler) UpdateBrand(c *fiber.Ctx) error {
	var body transfer.BrandUpdate
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Unable to parse json")
	}

	brand, err := h.s.Update(c.Context(), c.Params("id"), &body)
	if err != nil {
		return respondError(c, err, "Failed to update brand")
	}
	return c.JSON(brand)
}

func (h *BrandHandler) DeleteBrand(c *fiber.Ctx) error {
	if err := h.s.Remove(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err, "Failed to delete brand")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
