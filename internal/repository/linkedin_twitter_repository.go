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

type LinkedinTwitterRepository interface {
	List(ctx context.Context, filters PostFilters) ([]*models.LinkedinTwitterPost, error)
	GetByID(ctx context.Context, id string) (*models.LinkedinTwitterPost, bool, error)
	Create(ctx context.Context, post *transfer.LinkedinTwitterCreation) (string, error)
	Update(ctx context.Context, id string, post *transfer.LinkedinTwitterUpdate) error
	Remove(ctx context.Context, id string) error
}

type linkedinTwitterRepository struct {
	db *sqlx.DB
}

func NewLinkedinTwitterRepository(db *sqlx.DB) LinkedinTwitterRepository {
	return &linkedinTwitterRepository{db: db}
}

func (r *linkedinTwitterRepository) List(ctx context.Context, filters PostFilters) ([]*models.LinkedinTwitterPost, error) {
	b := psql.Select(
		"slt.id", "slt.brand_id", "slt.twitter_content", "slt.linkedin_content",
		"slt.date_posted", "slt.status", "slt.created_at", "slt.updated_at",
		"b.name AS brand_name",
	).
		From("social_linkedin_twitter slt").
		Join("brands b ON slt.brand_id = b.id").
		OrderBy("slt.created_at DESC")
	b = filters.apply(b, "slt", time.Now().UTC())

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	var posts []*models.LinkedinTwitterPost
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		slog.Error("failed to list linkedin/twitter posts", "error", err)
		return nil, err
	}
	if posts == nil {
		posts = []*models.LinkedinTwitterPost{}
	}
	return posts, nil
}

func (r *linkedinTwitterRepository) GetByID(ctx context.Context, id string) (*models.LinkedinTwitterPost, bool, error) {
	query := `
		SELECT id, brand_id, twitter_content, linkedin_content, date_posted, status, created_at, updated_at
		FROM social_linkedin_twitter WHERE id = $1
	`

	var post models.LinkedinTwitterPost
	err := r.db.GetContext(ctx, &post, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Error("failed to get linkedin/twitter post", "id", id, "error", err)
		return nil, false, err
	}
	return &post, true, nil
}

func (r *linkedinTwitterRepository) Create(ctx context.Context, post *transfer.LinkedinTwitterCreation) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()
	query := `
		INSERT INTO social_linkedin_twitter
		(id, brand_id, twitter_content, linkedin_content, date_posted, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		id, post.BrandID, post.TwitterContent, post.LinkedinContent,
		post.DatePosted, post.Status, now, now)
	if err != nil {
		slog.Error("failed to create linkedin/twitter post", "error", err)
		return "", err
	}
	return id, nil
}

func (r *linkedinTwitterRepository) Update(ctx context.Context, id string, post *transfer.LinkedinTwitterUpdate) error {
	clauses := map[string]interface{}{}
	if post.TwitterContent != nil {
		clauses["twitter_content"] = *post.TwitterContent
	}
	if post.LinkedinContent != nil {
		clauses["linkedin_content"] = *post.LinkedinContent
	}
	if post.DatePosted != nil {
		clauses["date_posted"] = *post.DatePosted
	}
	if post.Status != nil {
		clauses["status"] = *post.Status
	}
	if len(clauses) == 0 {
		return nil
	}
	clauses["updated_at"] = time.Now().UTC()

	query, args, err := psql.Update("social_linkedin_twitter").
		SetMap(clauses).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		slog.Error("failed to update linkedin/twitter post", "id", id, "error", err)
		return err
	}
	return nil
}

func (r *linkedinTwitterRepository) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM social_linkedin_twitter WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		slog.Error("failed to delete linkedin/twitter post", "id", id, "error", err)
		return err
	}
	return nil
}
