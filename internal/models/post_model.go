package models

import "time"

// InstagramTiktokPost is one post event with an optional content slot per
// platform. A single row may carry copy for both Instagram and TikTok.
type InstagramTiktokPost struct {
	ID                 string    `db:"id" json:"id"`
	BrandID            string    `db:"brand_id" json:"brand_id"`
	GeneratedReelVideo *string   `db:"generated_reel_video" json:"generated_reel_video"`
	InstagramContent   *string   `db:"instagram_content" json:"instagram_content"`
	TiktokContent      *string   `db:"tiktok_content" json:"tiktok_content"`
	Status             string    `db:"status" json:"status"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
	BrandName          string    `db:"brand_name" json:"brand_name,omitempty"`
}

type LinkedinTwitterPost struct {
	ID              string     `db:"id" json:"id"`
	BrandID         string     `db:"brand_id" json:"brand_id"`
	TwitterContent  *string    `db:"twitter_content" json:"twitter_content"`
	LinkedinContent *string    `db:"linkedin_content" json:"linkedin_content"`
	DatePosted      *time.Time `db:"date_posted" json:"date_posted"`
	Status          string     `db:"status" json:"status"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
	BrandName       string     `db:"brand_name" json:"brand_name,omitempty"`
}

const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
	StatusFailed    = "failed"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusScheduled, StatusPublished, StatusFailed:
		return true
	}
	return false
}

// Platform is a content-distribution channel. Each platform maps to one
// nullable content slot on one of the two post tables.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTiktok    Platform = "tiktok"
	PlatformLinkedin  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
)
