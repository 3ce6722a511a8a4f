package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/vyrade/postlog/internal/models"
)

// slotSource maps a platform onto the table and content slot that stores its
// copy. The two post tables each carry two platforms.
type slotSource struct {
	table string
	alias string
	slot  string
}

var slotSources = map[models.Platform]slotSource{
	models.PlatformInstagram: {table: "social_instagram_tiktok", alias: "sit", slot: "instagram_content"},
	models.PlatformTiktok:    {table: "social_instagram_tiktok", alias: "sit", slot: "tiktok_content"},
	models.PlatformLinkedin:  {table: "social_linkedin_twitter", alias: "slt", slot: "linkedin_content"},
	models.PlatformTwitter:   {table: "social_linkedin_twitter", alias: "slt", slot: "twitter_content"},
}

type DashboardRepository interface {
	CountPublishedSlot(ctx context.Context, platform models.Platform, filters PostFilters) (int, error)
	PublishedBySlot(ctx context.Context, platform models.Platform, filters PostFilters) ([]*models.PostWithBrand, error)
	BrandStats(ctx context.Context) ([]*models.BrandStats, error)
}

type dashboardRepository struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// CountPublishedSlot counts rows whose status is published and whose content
// slot for the platform is non-null, narrowed by the optional filters. All
// four platforms run through the same predicate shape so their counts are
// directly summable.
func (r *dashboardRepository) CountPublishedSlot(ctx context.Context, platform models.Platform, filters PostFilters) (int, error) {
	src, ok := slotSources[platform]
	if !ok {
		return 0, fmt.Errorf("unknown platform %q", platform)
	}

	b := psql.Select("COUNT(*)").
		From(fmt.Sprintf("%s %s", src.table, src.alias)).
		Where(sq.Eq{src.alias + ".status": models.StatusPublished}).
		Where(fmt.Sprintf("%s.%s IS NOT NULL", src.alias, src.slot))
	b = filters.apply(b, src.alias, time.Now().UTC())

	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		slog.Error("failed to count published posts", "platform", platform, "error", err)
		return 0, err
	}
	return count, nil
}

// PublishedBySlot returns the feed rows one platform contributes: published
// rows with that slot populated, projected into the common feed shape with a
// synthesized "<row-id>_<platform>" id.
func (r *dashboardRepository) PublishedBySlot(ctx context.Context, platform models.Platform, filters PostFilters) ([]*models.PostWithBrand, error) {
	src, ok := slotSources[platform]
	if !ok {
		return nil, fmt.Errorf("unknown platform %q", platform)
	}

	b := psql.Select(
		fmt.Sprintf("%s.id || '_%s' AS id", src.alias, platform),
		"b.name AS brand_name",
		fmt.Sprintf("%s.%s AS content", src.alias, src.slot),
		fmt.Sprintf("'%s' AS platform", platform),
		fmt.Sprintf("%s.created_at AS date", src.alias),
		src.alias+".status",
	).
		From(fmt.Sprintf("%s %s", src.table, src.alias)).
		Join(fmt.Sprintf("brands b ON %s.brand_id = b.id", src.alias)).
		Where(sq.Eq{src.alias + ".status": models.StatusPublished}).
		Where(fmt.Sprintf("%s.%s IS NOT NULL", src.alias, src.slot))
	b = filters.apply(b, src.alias, time.Now().UTC())

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	var posts []*models.PostWithBrand
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		slog.Error("failed to fetch published posts", "platform", platform, "error", err)
		return nil, err
	}
	return posts, nil
}

// brandStatsQuery left-joins brands against per-brand published counts so
// brands with no posts still report a zero count. Always global: no brand or
// date filter applies here.
const brandStatsQuery = `
	SELECT
		b.id AS brand_id,
		b.name AS brand_name,
		COALESCE(sit.instagram_count, 0) + COALESCE(sit.tiktok_count, 0) +
		COALESCE(slt.linkedin_count, 0) + COALESCE(slt.twitter_count, 0) AS post_count
	FROM brands b
	LEFT JOIN (
		SELECT
			brand_id,
			SUM(CASE WHEN instagram_content IS NOT NULL AND status = 'published' THEN 1 ELSE 0 END) AS instagram_count,
			SUM(CASE WHEN tiktok_content IS NOT NULL AND status = 'published' THEN 1 ELSE 0 END) AS tiktok_count
		FROM social_instagram_tiktok
		GROUP BY brand_id
	) sit ON b.id = sit.brand_id
	LEFT JOIN (
		SELECT
			brand_id,
			SUM(CASE WHEN linkedin_content IS NOT NULL AND status = 'published' THEN 1 ELSE 0 END) AS linkedin_count,
			SUM(CASE WHEN twitter_content IS NOT NULL AND status = 'published' THEN 1 ELSE 0 END) AS twitter_count
		FROM social_linkedin_twitter
		GROUP BY brand_id
	) slt ON b.id = slt.brand_id
	ORDER BY post_count DESC, b.id ASC
`

func (r *dashboardRepository) BrandStats(ctx context.Context) ([]*models.BrandStats, error) {
	var stats []*models.BrandStats
	if err := r.db.SelectContext(ctx, &stats, brandStatsQuery); err != nil {
		slog.Error("failed to fetch brand stats", "error", err)
		return nil, err
	}
	if stats == nil {
		stats = []*models.BrandStats{}
	}
	return stats, nil
}
