package service

import (
	"context"
	"sort"

	"github.com/vyrade/postlog/internal/models"
	"github.com/vyrade/postlog/internal/repository"
)

// DefaultLatestPostsLimit caps the feed when the caller passes no limit.
const DefaultLatestPostsLimit = 10

// feedPlatforms fixes the order the four content slots are queried in.
var feedPlatforms = []models.Platform{
	models.PlatformInstagram,
	models.PlatformTiktok,
	models.PlatformLinkedin,
	models.PlatformTwitter,
}

type DashboardService interface {
	GetMetrics(ctx context.Context, filters repository.PostFilters) (*models.DashboardMetrics, error)
	GetLatestPosts(ctx context.Context, limit int, filters repository.PostFilters) ([]*models.PostWithBrand, error)
	GetBrandStats(ctx context.Context) ([]*models.BrandStats, error)
}

type dashboardService struct {
	dr repository.DashboardRepository
}

func NewDashboardService(dr repository.DashboardRepository) DashboardService {
	return &dashboardService{dr: dr}
}

// GetMetrics runs the four per-platform counts and sums them. The counts are
// separate statements, so concurrent writes can shift later counts relative
// to earlier ones; TotalPosts is still the exact sum of the four values
// returned. Any failing count fails the whole request.
func (s *dashboardService) GetMetrics(ctx context.Context, filters repository.PostFilters) (*models.DashboardMetrics, error) {
	counts := make(map[models.Platform]int, len(feedPlatforms))
	for _, platform := range feedPlatforms {
		count, err := s.dr.CountPublishedSlot(ctx, platform, filters)
		if err != nil {
			return nil, err
		}
		counts[platform] = count
	}

	return &models.DashboardMetrics{
		TotalPosts:     counts[models.PlatformInstagram] + counts[models.PlatformTiktok] + counts[models.PlatformLinkedin] + counts[models.PlatformTwitter],
		InstagramPosts: counts[models.PlatformInstagram],
		TiktokPosts:    counts[models.PlatformTiktok],
		LinkedinPosts:  counts[models.PlatformLinkedin],
		TwitterPosts:   counts[models.PlatformTwitter],
	}, nil
}

// GetLatestPosts merges the four per-slot feeds into one sequence: fetch
// each source, concatenate, sort newest first and truncate. A row with both
// of its slots populated contributes two entries with distinct ids.
func (s *dashboardService) GetLatestPosts(ctx context.Context, limit int, filters repository.PostFilters) ([]*models.PostWithBrand, error) {
	if limit <= 0 {
		limit = DefaultLatestPostsLimit
	}

	var feed []*models.PostWithBrand
	for _, platform := range feedPlatforms {
		posts, err := s.dr.PublishedBySlot(ctx, platform, filters)
		if err != nil {
			return nil, err
		}
		feed = append(feed, posts...)
	}

	sort.Slice(feed, func(i, j int) bool {
		if feed[i].Date.Equal(feed[j].Date) {
			// Synthesized id as a stable tie-break for equal dates.
			return feed[i].ID < feed[j].ID
		}
		return feed[i].Date.After(feed[j].Date)
	})

	if len(feed) > limit {
		feed = feed[:limit]
	}
	if feed == nil {
		feed = []*models.PostWithBrand{}
	}
	return feed, nil
}

func (s *dashboardService) GetBrandStats(ctx context.Context) ([]*models.BrandStats, error) {
	return s.dr.BrandStats(ctx)
}
