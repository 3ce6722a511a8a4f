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

type BrandRepository interface {
	GetAll(ctx context.Context) ([]*models.Brand, error)
	GetByID(ctx context.Context, id string) (*models.Brand, bool, error)
	Create(ctx context.Context, name string) (string, error)
	Update(ctx context.Context, id string, brand *transfer.BrandUpdate) error
	Remove(ctx context.Context, id string) error
}

type brandRepository struct {
	db *sqlx.DB
}

func NewBrandRepository(db *sqlx.DB) BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) GetAll(ctx context.Context) ([]*models.Brand, error) {
	query := `SELECT id, name, created_at FROM brands ORDER BY created_at DESC`

	var brands []*models.Brand
	if err := r.db.SelectContext(ctx, &brands, query); err != nil {
		slog.Error("failed to list brands", "error", err)
		return nil, err
	}
	if brands == nil {
		brands = []*models.Brand{}
	}
	return brands, nil
}

func (r *brandRepository) GetByID(ctx context.Context, id string) (*models.Brand, bool, error) {
	query := `SELECT id, name, created_at FROM brands WHERE id = $1`

	var brand models.Brand
	err := r.db.GetContext(ctx, &brand, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Error("failed to get brand", "id", id, "error", err)
		return nil, false, err
	}
	return &brand, true, nil
}

func (r *brandRepository) Create(ctx context.Context, name string) (string, error) {
	id := uuid.NewString()
	query := `INSERT INTO brands (id, name, created_at) VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(ctx, query, id, name, time.Now().UTC()); err != nil {
		slog.Error("failed to create brand", "error", err)
		return "", err
	}
	return id, nil
}

func (r *brandRepository) Update(ctx context.Context, id string, brand *transfer.BrandUpdate) error {
	clauses := map[string]interface{}{}
	if brand.Name != nil {
		clauses["name"] = *brand.Name
	}
	if len(clauses) == 0 {
		// Empty partial update is a no-op; the caller re-reads the row.
		return nil
	}

	query, args, err := psql.Update("brands").
		SetMap(clauses).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		slog.Error("failed to update brand", "id", id, "error", err)
		return err
	}
	return nil
}

func (r *brandRepository) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM brands WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		slog.Error("failed to delete brand", "id", id, "error", err)
		return err
	}
	return nil
}
