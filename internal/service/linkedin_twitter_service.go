package service

import (
	"context"

	"github.com/vyrade/postlog/internal/apperrors"
	"github.com/vyrade/postlog/internal/models"
	"github.com/vyrade/postlog/internal/repository"
	"github.com/vyrade/postlog/internal/transfer"
)

type LinkedinTwitterService interface {
	List(ctx context.Context, filters repository.PostFilters) ([]*models.LinkedinTwitterPost, error)
	GetByID(ctx context.Context, id string) (*models.LinkedinTwitterPost, error)
	Create(ctx context.Context, post *transfer.LinkedinTwitterCreation) (*models.LinkedinTwitterPost, error)
	Update(ctx context.Context, id string, post *transfer.LinkedinTwitterUpdate) (*models.LinkedinTwitterPost, error)
	Remove(ctx context.Context, id string) error
}

type linkedinTwitterService struct {
	pr repository.LinkedinTwitterRepository
	br repository.BrandRepository
}

func NewLinkedinTwitterService(pr repository.LinkedinTwitterRepository, br repository.BrandRepository) LinkedinTwitterService {
	return &linkedinTwitterService{pr: pr, br: br}
}

func (s *linkedinTwitterService) List(ctx context.Context, filters repository.PostFilters) ([]*models.LinkedinTwitterPost, error) {
	return s.pr.List(ctx, filters)
}

func (s *linkedinTwitterService) GetByID(ctx context.Context, id string) (*models.LinkedinTwitterPost, error) {
	post, found, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFound("post", id)
	}
	return post, nil
}

func (s *linkedinTwitterService) Create(ctx context.Context, post *transfer.LinkedinTwitterCreation) (*models.LinkedinTwitterPost, error) {
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

func (s *linkedinTwitterService) Update(ctx context.Context, id string, post *transfer.LinkedinTwitterUpdate) (*models.LinkedinTwitterPost, error) {
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

func (s *linkedinTwitterService) Remove(ctx context.Context, id string) error {
	return s.pr.Remove(ctx, id)
}
