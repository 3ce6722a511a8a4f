package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vyrade/postlog/internal/service"
	"github.com/vyrade/postlog/internal/transfer"
)

type LinkedinTwitterHandler struct {
	s service.LinkedinTwitterService
}

func NewLinkedinTwitterHandler(service service.LinkedinTwitterService) *LinkedinTwitterHandler {
	return &LinkedinTwitterHandler{s: service}
}

func (h *LinkedinTwitterHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.s.List(c.Context(), postFilters(c))
	if err != nil {
		return respondError(c, err, "Failed to fetch posts")
	}
	return c.JSON(posts)
}

func (h *LinkedinTwitterHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.s.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Failed to fetch post")
	}
	return c.JSON(post)
}

func (h *LinkedinTwitterHandler) CreatePost(c *fiber.Ctx) error {
	var body transfer.LinkedinTwitterCreation
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Unable to parse json")
	}

	post, err := h.s.Create(c.Context(), &body)
	if err != nil {
		return respondError(c, err, "Failed to create post")
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *LinkedinTwitterHandler) UpdatePost(c *fiber.Ctx) error {
	var body transfer.LinkedinTwitterUpdate
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Unable to parse json")
	}

	post, err := h.s.Update(c.Context(), c.Params("id"), &body)
	if err != nil {
		return respondError(c, err, "Failed to update post")
	}
	return c.JSON(post)
}

func (h *LinkedinTwitterHandler) DeletePost(c *fiber.Ctx) error {
	if err := h.s.Remove(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err, "Failed to delete post")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
