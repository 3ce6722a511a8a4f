package models

import "time"

// DashboardMetrics counts published posts per platform. A row counts toward
// a platform only when its status is published and that platform's content
// slot is non-null.
type DashboardMetrics struct {
	TotalPosts     int `json:"totalPosts"`
	InstagramPosts int `json:"instagramPosts"`
	TiktokPosts    int `json:"tiktokPosts"`
	LinkedinPosts  int `json:"linkedinPosts"`
	TwitterPosts   int `json:"twitterPosts"`
}

// PostWithBrand is one latest-posts feed entry. ID is synthesized as
// "<row-id>_<platform>", so a row with both slots populated yields two
// entries with distinct ids.
type PostWithBrand struct {
	ID        string    `db:"id" json:"id"`
	BrandName string    `db:"brand_name" json:"brand_name"`
	Content   string    `db:"content" json:"content"`
	Platform  string    `db:"platform" json:"platform"`
	Date      time.Time `db:"date" json:"date"`
	Status    string    `db:"status" json:"status"`
}

type BrandStats struct {
	BrandID   string `db:"brand_id" json:"brand_id"`
	BrandName string `db:"brand_name" json:"brand_name"`
	PostCount int    `db:"post_count" json:"post_count"`
}
