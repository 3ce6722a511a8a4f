package service

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/vyrade/postlog/internal/database"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, cleanup, err := database.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return db
}

func seedBrand(t *testing.T, db *sqlx.DB, id, name string) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO brands (id, name, created_at) VALUES ($1, $2, $3)`,
		id, name, time.Now().UTC(),
	)
	require.NoError(t, err)
}

func seedInstagramTiktok(t *testing.T, db *sqlx.DB, id, brandID string, instagram, tiktok *string, status string, createdAt time.Time) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO social_instagram_tiktok
		 (id, brand_id, instagram_content, tiktok_content, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, brandID, instagram, tiktok, status, createdAt, createdAt,
	)
	require.NoError(t, err)
}

func seedLinkedinTwitter(t *testing.T, db *sqlx.DB, id, brandID string, linkedin, twitter *string, status string, createdAt time.Time) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO social_linkedin_twitter
		 (id, brand_id, linkedin_content, twitter_content, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, brandID, linkedin, twitter, status, createdAt, createdAt,
	)
	require.NoError(t, err)
}

func str(s string) *string {
	return &s
}
