package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyrade/postlog/internal/database"
	"github.com/vyrade/postlog/internal/models"
	"github.com/vyrade/postlog/internal/repository"
	"github.com/vyrade/postlog/internal/service"
)

func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()

	db, cleanup, err := database.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	brandRepo := repository.NewBrandRepository(db)
	instagramTiktokRepo := repository.NewInstagramTiktokRepository(db)
	linkedinTwitterRepo := repository.NewLinkedinTwitterRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	app := fiber.New()
	RegisterRoutes(app,
		NewBrandHandler(service.NewBrandService(brandRepo)),
		NewInstagramTiktokHandler(service.NewInstagramTiktokService(instagramTiktokRepo, brandRepo)),
		NewLinkedinTwitterHandler(service.NewLinkedinTwitterService(linkedinTwitterRepo, brandRepo)),
		NewDashboardHandler(service.NewDashboardService(dashboardRepo)),
	)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}

func TestBrandEndpoints_CRUD(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/brands", fiber.Map{"name": "Acme"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[models.Brand](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Acme", created.Name)

	resp = doJSON(t, app, fiber.MethodGet, "/api/brands", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	brands := decode[[]models.Brand](t, resp)
	require.Len(t, brands, 1)

	resp = doJSON(t, app, fiber.MethodGet, "/api/brands/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPut, "/api/brands/"+created.ID, fiber.Map{"name": "Acme Corp"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode[models.Brand](t, resp)
	assert.Equal(t, "Acme Corp", updated.Name)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/brands/"+created.ID, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/brands/"+created.ID, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Deleting again is still a 204.
	resp = doJSON(t, app, fiber.MethodDelete, "/api/brands/"+created.ID, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestBrandEndpoints_Validation(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/brands", fiber.Map{"name": ""})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.NotEmpty(t, body["message"])

	resp = doJSON(t, app, fiber.MethodGet, "/api/brands/missing", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPut, "/api/brands/missing", fiber.Map{"name": "X"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPostEndpoints_CreateUpdateList(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/brands", fiber.Map{"name": "Acme"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	brand := decode[models.Brand](t, resp)

	resp = doJSON(t, app, fiber.MethodPost, "/api/instagram-tiktok", fiber.Map{
		"brand_id":          brand.ID,
		"instagram_content": "hello",
		"status":            "published",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	post := decode[models.InstagramTiktokPost](t, resp)
	assert.Equal(t, models.StatusPublished, post.Status)

	// Unknown brand is a validation failure, not a 500.
	resp = doJSON(t, app, fiber.MethodPost, "/api/instagram-tiktok", fiber.Map{
		"brand_id": "ghost",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPut, "/api/instagram-tiktok/"+post.ID, fiber.Map{
		"tiktok_content": "also here",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updatedPost := decode[models.InstagramTiktokPost](t, resp)
	require.NotNil(t, updatedPost.TiktokContent)
	assert.Equal(t, "also here", *updatedPost.TiktokContent)
	require.NotNil(t, updatedPost.InstagramContent)
	assert.Equal(t, "hello", *updatedPost.InstagramContent)

	resp = doJSON(t, app, fiber.MethodGet, "/api/instagram-tiktok?brand_id="+brand.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	posts := decode[[]models.InstagramTiktokPost](t, resp)
	require.Len(t, posts, 1)
	assert.Equal(t, "Acme", posts[0].BrandName)

	resp = doJSON(t, app, fiber.MethodGet, "/api/instagram-tiktok?status=draft", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	drafts := decode[[]models.InstagramTiktokPost](t, resp)
	assert.Empty(t, drafts)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/instagram-tiktok/"+post.ID, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestLinkedinTwitterEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/brands", fiber.Map{"name": "Acme"})
	brand := decode[models.Brand](t, resp)

	resp = doJSON(t, app, fiber.MethodPost, "/api/linkedin-twitter", fiber.Map{
		"brand_id":         brand.ID,
		"linkedin_content": "li post",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	post := decode[models.LinkedinTwitterPost](t, resp)
	assert.Equal(t, models.StatusDraft, post.Status)

	resp = doJSON(t, app, fiber.MethodPut, "/api/linkedin-twitter/"+post.ID, fiber.Map{
		"status": "bogus",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/linkedin-twitter/"+post.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestDashboardEndpoints(t *testing.T) {
	app, db := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/brands", fiber.Map{"name": "Acme"})
	brand := decode[models.Brand](t, resp)

	resp = doJSON(t, app, fiber.MethodPost, "/api/instagram-tiktok", fiber.Map{
		"brand_id":          brand.ID,
		"instagram_content": "hi",
		"status":            "published",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/dashboard/metrics", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	metrics := decode[models.DashboardMetrics](t, resp)
	assert.Equal(t, models.DashboardMetrics{
		TotalPosts:     1,
		InstagramPosts: 1,
	}, metrics)

	resp = doJSON(t, app, fiber.MethodGet, "/api/dashboard/latest-posts", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	feed := decode[[]models.PostWithBrand](t, resp)
	require.Len(t, feed, 1)
	assert.Equal(t, "instagram", feed[0].Platform)
	assert.Equal(t, "Acme", feed[0].BrandName)

	resp = doJSON(t, app, fiber.MethodGet, "/api/dashboard/brand-stats", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	stats := decode[[]models.BrandStats](t, resp)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].PostCount)

	// Seed more published rows directly to exercise the limit param.
	now := time.Now().UTC()
	for _, id := range []string{"x1", "x2", "x3"} {
		_, err := db.Exec(
			`INSERT INTO social_instagram_tiktok
			 (id, brand_id, instagram_content, status, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			id, brand.ID, "copy "+id, models.StatusPublished, now, now,
		)
		require.NoError(t, err)
	}

	resp = doJSON(t, app, fiber.MethodGet, "/api/dashboard/latest-posts?limit=2", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	limited := decode[[]models.PostWithBrand](t, resp)
	assert.Len(t, limited, 2)
}
