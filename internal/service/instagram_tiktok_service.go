package service

import (
	"context"

	"github.com/vyrade/postlog/internal/apperrors"
	"github.com/vyrade/postlog/internal/models"
	"github.com/vyrade/postlog/internal/repository"
	"github.com/vyrade/postlog/internal/transfer"
)

type InstagramTiktokService interface {
	List(ctx context.Context, filters repository.PostFilters) ([]*models.InstagramTiktokPost, error)
	GetByID(ctx context.Context, id string) (*models.InstagramTiktokPost, error)
	Create(ctx context.Context, post *transfer.InstagramTiktokCreation) (*models.InstagramTiktokPost, error)
	Update(ctx context.Context, id string, post *transfer.InstagramTiktokUpdate) (*models.InstagramTiktokPost, error)
	Remove(ctx context.Context, id string) error
}

type instagramTiktokService struct {
	pr repository.InstagramTiktokRepository
	br repository.BrandRepository
}

func NewInstagramTiktokService(pr repository.InstagramTiktokRepository, br repository.BrandRepository) InstagramTiktokService {
	return &instagramTiktokService{pr: pr, br: br}
}

func (s *instagramTiktokService) List(ctx context.Context, filters repository.PostFilters) ([]*models.InstagramTiktokPost, error) {
	return s.pr.List(ctx, filters)
}

func (s *instagramTiktokService) GetByID(ctx context.Context, id string) (*models.InstagramTiktokPost, error) {
	post, found, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFound("post", id)
	}
	return post, nil
}

func (s *instagramTiktokService) Create(ctx context.Context, post *transfer.InstagramTiktokCreation) (*models.InstagramTiktokPost, error) {
	if post.BrandID == "" {
		return nil, apperrors.NewValidation("brand is required")
	}
	if post.Status == "" {
		post.Status = models.StatusDraft
	}
	if !models.ValidStatus(post.Status) {
		return nil, apperrors.NewValidation("invalid status %q", post.Status)
	}

	if _, found, err := s.br.GetByID(ctx, post.BrandID); err != nil {
		return nil, err
	} else if !found {
		return nil, apperrors.NewValidation("brand %s does not exist", post.BrandID)
	}

	id, err := s.pr.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *instagramTiktokService) Update(ctx context.Context, id string, post *transfer.InstagramTiktokUpdate) (*models.InstagramTiktokPost, error) {
	if post.Status != nil && !models.ValidStatus(*post.Status) {
		return nil, apperrors.NewValidation("invalid status %q", *post.Status)
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.pr.Update(ctx, id, post); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *instagramTiktokService) Remove(ctx context.Context, id string) error {
	return s.pr.Remove(ctx, id)
}
