package handlers

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the full API route table. main and the handler tests
// share it so tests exercise the same routing the server runs.
func RegisterRoutes(app *fiber.App, brand *BrandHandler, instagramTiktok *InstagramTiktokHandler, linkedinTwitter *LinkedinTwitterHandler, dashboard *DashboardHandler) {
	api := app.Group("/api")

	api.Get("/brands", brand.ListBrands)
	api.Post("/brands", brand.CreateBrand)
	api.Get("/brands/:id", brand.GetBrand)
	api.Put("/brands/:id", brand.UpdateBrand)
	api.Delete("/brands/:id", brand.DeleteBrand)

	api.Get("/instagram-tiktok", instagramTiktok.ListPosts)
	api.Post("/instagram-tiktok", instagramTiktok.CreatePost)
	api.Get("/instagram-tiktok/:id", instagramTiktok.GetPost)
	api.Put("/instagram-tiktok/:id", instagramTiktok.UpdatePost)
	api.Delete("/instagram-tiktok/:id", instagramTiktok.DeletePost)

	api.Get("/linkedin-twitter", linkedinTwitter.ListPosts)
	api.Post("/linkedin-twitter", linkedinTwitter.CreatePost)
	api.Get("/linkedin-twitter/:id", linkedinTwitter.GetPost)
	api.Put("/linkedin-twitter/:id", linkedinTwitter.UpdatePost)
	api.Delete("/linkedin-twitter/:id", linkedinTwitter.DeletePost)

	api.Get("/dashboard/metrics", dashboard.GetMetrics)
	api.Get("/dashboard/latest-posts", dashboard.GetLatestPosts)
	api.Get("/dashboard/brand-stats", dashboard.GetBrandStats)
}
