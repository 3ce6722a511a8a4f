package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyrade/postlog/internal/transfer"
)

func TestBrandRepository_CreateAndGetByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewBrandRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, "Acme")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	brand, found, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, id, brand.ID)
	assert.Equal(t, "Acme", brand.Name)
	assert.False(t, brand.CreatedAt.IsZero())
}

func TestBrandRepository_GetByID_Missing(t *testing.T) {
	db := newTestDB(t)
	repo := NewBrandRepository(db)

	brand, found, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, brand)
}

func TestBrandRepository_GetAll_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewBrandRepository(db)
	now := time.Now().UTC()

	seedBrand(t, db, "b1", "Oldest", now.Add(-48*time.Hour))
	seedBrand(t, db, "b2", "Newest", now)
	seedBrand(t, db, "b3", "Middle", now.Add(-24*time.Hour))

	brands, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, brands, 3)
	assert.Equal(t, "b2", brands[0].ID)
	assert.Equal(t, "b3", brands[1].ID)
	assert.Equal(t, "b1", brands[2].ID)
}

func TestBrandRepository_Update_Partial(t *testing.T) {
	db := newTestDB(t)
	repo := NewBrandRepository(db)
	ctx := context.Background()
	seedBrand(t, db, "b1", "Before", time.Now().UTC())

	err := repo.Update(ctx, "b1", &transfer.BrandUpdate{Name: str("After")})
	require.NoError(t, err)

	brand, _, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "After", brand.Name)
}

func TestBrandRepository_Update_EmptyPartialLeavesRowUnchanged(t *testing.T) {
	db := newTestDB(t)
	repo := NewBrandRepository(db)
	ctx := context.Background()
	seedBrand(t, db, "b1", "Acme", time.Now().UTC())

	before, _, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, "b1", &transfer.BrandUpdate{}))

	after, _, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, before.Name, after.Name)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
}

func TestBrandRepository_Remove_Idempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewBrandRepository(db)
	ctx := context.Background()
	seedBrand(t, db, "b1", "Acme", time.Now().UTC())

	require.NoError(t, repo.Remove(ctx, "b1"))

	_, found, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.False(t, found)

	// Second delete of the same id, and a delete of an id that never
	// existed, both succeed.
	require.NoError(t, repo.Remove(ctx, "b1"))
	require.NoError(t, repo.Remove(ctx, "never-existed"))
}

func TestBrandRepository_Remove_CascadesToPosts(t *testing.T) {
	db := newTestDB(t)
	repo := NewBrandRepository(db)
	postRepo := NewInstagramTiktokRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	seedBrand(t, db, "b1", "Acme", now)
	seedInstagramTiktok(t, db, "p1", "b1", str("hello"), nil, "published", now)

	require.NoError(t, repo.Remove(ctx, "b1"))

	_, found, err := postRepo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, found)
}
