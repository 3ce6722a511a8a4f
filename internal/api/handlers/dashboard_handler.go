package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vyrade/postlog/internal/service"
)

type DashboardHandler struct {
	s service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{s: service}
}

func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	metrics, err := h.s.GetMetrics(c.Context(), dashboardFilters(c))
	if err != nil {
		return respondError(c, err, "Failed to fetch metrics")
	}
	return c.JSON(metrics)
}

func (h *DashboardHandler) GetLatestPosts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", service.DefaultLatestPostsLimit)

	posts, err := h.s.GetLatestPosts(c.Context(), limit, dashboardFilters(c))
	if err != nil {
		return respondError(c, err, "Failed to fetch latest posts")
	}
	return c.JSON(posts)
}

func (h *DashboardHandler) GetBrandStats(c *fiber.Ctx) error {
	stats, err := h.s.GetBrandStats(c.Context())
	if err != nil {
		return respondError(c, err, "Failed to fetch brand stats")
	}
	return c.JSON(stats)
}
