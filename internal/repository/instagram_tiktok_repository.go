package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vyrade/postlog/internal/models"
	"github.com/vyrade/postlog/internal/transfer"
)

type InstagramTiktokRepository interface {
	List(ctx context.Context, filters PostFilters) ([]*models.InstagramTiktokPost, error)
	GetByID(ctx context.Context, id string) (*models.InstagramTiktokPost, bool, error)
	Create(ctx context.Context, post *transfer.InstagramTiktokCreation) (string, error)
	Update(ctx context.Context, id string, post *transfer.InstagramTiktokUpdate) error
	Remove(ctx context.Context, id string) error
}

type instagramTiktokRepository struct {
	db *sqlx.DB
}

func NewInstagramTiktokRepository(db *sqlx.DB) InstagramTiktokRepository {
	return &instagramTiktokRepository{db: db}
}

func (r *instagramTiktokRepository) List(ctx context.Context, filters PostFilters) ([]*models.InstagramTiktokPost, error) {
	b := psql.Select(
		"sit.id", "sit.brand_id", "sit.generated_reel_video", "sit.instagram_content",
		"sit.tiktok_content", "sit.status", "sit.created_at", "sit.updated_at",
		"b.name AS brand_name",
	).
		From("social_instagram_tiktok sit").
		Join("brands b ON sit.brand_id = b.id").
		OrderBy("sit.created_at DESC")
	b = filters.apply(b, "sit", time.Now().UTC())

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	var posts []*models.InstagramTiktokPost
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		slog.Error("failed to list instagram/tiktok posts", "error", err)
		return nil, err
	}
	if posts == nil {
		posts = []*models.InstagramTiktokPost{}
	}
	return posts, nil
}

func (r *instagramTiktokRepository) GetByID(ctx context.Context, id string) (*models.InstagramTiktokPost, bool, error) {
	query := `
		SELECT id, brand_id, generated_reel_video, instagram_content, tiktok_content, status, created_at, updated_at
		FROM social_instagram_tiktok WHERE id = $1
	`

	var post models.InstagramTiktokPost
	err := r.db.GetContext(ctx, &post, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Error("failed to get instagram/tiktok post", "id", id, "error", err)
		return nil, false, err
	}
	return &post, true, nil
}

func (r *instagramTiktokRepository) Create(ctx context.Context, post *transfer.InstagramTiktokCreation) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()
	query := `
		INSERT INTO social_instagram_tiktok
		(id, brand_id, generated_reel_video, instagram_content, tiktok_content, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		id, post.BrandID, post.GeneratedReelVideo, post.InstagramContent,
		post.TiktokContent, post.Status, now, now)
	if err != nil {
		slog.Error("failed to create instagram/tiktok post", "error", err)
		return "", err
	}
	return id, nil
}

func (r *instagramTiktokRepository) Update(ctx context.Context, id string, post *transfer.InstagramTiktokUpdate) error {
	clauses := map[string]interface{}{}
	if post.GeneratedReelVideo != nil {
		clauses["generated_reel_video"] = *post.GeneratedReelVideo
	}
	if post.InstagramContent != nil {
		clauses["instagram_content"] = *post.InstagramContent
	}
	if post.TiktokContent != nil {
		clauses["tiktok_content"] = *post.TiktokContent
	}
	if post.Status != nil {
		clauses["status"] = *post.Status
	}
	if len(clauses) == 0 {
		return nil
	}
	clauses["updated_at"] = time.Now().UTC()

	query, args, err := psql.Update("social_instagram_tiktok").
		SetMap(clauses).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		slog.Error("failed to update instagram/tiktok post", "id", id, "error", err)
		return err
	}
	return nil
}

func (r *instagramTiktokRepository) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM social_instagram_tiktok WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		slog.Error("failed to delete instagram/tiktok post", "id", id, "error", err)
		return err
	}
	return nil
}
