package transfer

import "time"

type InstagramTiktokCreation struct {
	BrandID            string  `json:"brand_id"`
	GeneratedReelVideo *string `json:"generated_reel_video"`
	InstagramContent   *string `json:"instagram_content"`
	TiktokContent      *string `json:"tiktok_content"`
	Status             string  `json:"status"`
}

// Update DTOs use pointer fields throughout: nil means the column is left
// untouched (PATCH semantics, not full replace).
type InstagramTiktokUpdate struct {
	GeneratedReelVideo *string `json:"generated_reel_video"`
	InstagramContent   *string `json:"instagram_content"`
	TiktokContent      *string `json:"tiktok_content"`
	Status             *string `json:"status"`
}

type LinkedinTwitterCreation struct {
	BrandID         string     `json:"brand_id"`
	TwitterContent  *string    `json:"twitter_content"`
	LinkedinContent *string    `json:"linkedin_content"`
	DatePosted      *time.Time `json:"date_posted"`
	Status          string     `json:"status"`
}

type LinkedinTwitterUpdate struct {
	TwitterContent  *string    `json:"twitter_content"`
	LinkedinContent *string    `json:"linkedin_content"`
	DatePosted      *time.Time `json:"date_posted"`
	Status          *string    `json:"status"`
}
