package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vyrade/postlog/internal/service"
	"github.com/vyrade/postlog/internal/transfer"
)

type InstagramTiktokHandler struct {
	s service.InstagramTiktokService
}

func NewInstagramTiktokHandler(service service.InstagramTiktokService) *InstagramTiktokHandler {
	return &InstagramTiktokHandler{s: service}
}

func (h *InstagramTiktokHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.s.List(c.Context(), postFilters(c))
	if err != nil {
		return respondError(c, err, "Failed to fetch posts")
	}
	return c.JSON(posts)
}

func (h *InstagramTiktokHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.s.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Failed to fetch post")
	}
	return c.JSON(post)
}

func (h *InstagramTiktokHandler) CreatePost(c *fiber.Ctx) error {
	var body transfer.InstagramTiktokCreation
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Unable to parse json")
	}

	post, err := h.s.Create(c.Context(), &body)
	if err != nil {
		return respondError(c, err, "Failed to create post")
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *InstagramTiktokHandler) UpdatePost(c *fiber.Ctx) error {
	var body transfer.InstagramTiktokUpdate
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Unable to parse json")
	}

	post, err := h.s.Update(c.Context(), c.Params("id"), &body)
	if err != nil {
		return respondError(c, err, "Failed to update post")
	}
	return c.JSON(post)
}

func (h *InstagramTiktokHandler) DeletePost(c *fiber.Ctx) error {
	if err := h.s.Remove(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err, "Failed to delete post")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
