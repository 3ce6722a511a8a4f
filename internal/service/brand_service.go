package service

import (
	"context"
	"strings"

	"github.com/vyrade/postlog/internal/apperrors"
	"github.com/vyrade/postlog/internal/models"
	"github.com/vyrade/postlog/internal/repository"
	"github.com/vyrade/postlog/internal/transfer"
)

const maxBrandNameLen = 255

type BrandService interface {
	List(ctx context.Context) ([]*models.Brand, error)
	GetByID(ctx context.Context, id string) (*models.Brand, error)
	Create(ctx context.Context, brand *transfer.BrandCreation) (*models.Brand, error)
	Update(ctx context.Context, id string, brand *transfer.BrandUpdate) (*models.Brand, error)
	Remove(ctx context.Context, id string) error
}

type brandService struct {
	br repository.BrandRepository
}

func NewBrandService(br repository.BrandRepository) BrandService {
	return &brandService{br: br}
}

func (s *brandService) List(ctx context.Context) ([]*models.Brand, error) {
	return s.br.GetAll(ctx)
}

func (s *brandService) GetByID(ctx context.Context, id string) (*models.Brand, error) {
	brand, found, err := s.br.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFound("brand", id)
	}
	return brand, nil
}

func (s *brandService) Create(ctx context.Context, brand *transfer.BrandCreation) (*models.Brand, error) {
	if err := validateBrandName(brand.Name); err != nil {
		return nil, err
	}

	id, err := s.br.Create(ctx, brand.Name)
	if err != nil {
		return nil, err
	}
	// Read back the inserted row so the caller sees stored defaults.
	return s.GetByID(ctx, id)
}

func (s *brandService) Update(ctx context.Context, id string, brand *transfer.BrandUpdate) (*models.Brand, error) {
	if brand.Name != nil {
		if err := validateBrandName(*brand.Name); err != nil {
			return nil, err
		}
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.br.Update(ctx, id, brand); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *brandService) Remove(ctx context.Context, id string) error {
	// Delete is idempotent: removing an unknown id is not an error.
	return s.br.Remove(ctx, id)
}

func validateBrandName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidation("brand name is required")
	}
	if len(name) > maxBrandNameLen {
		return apperrors.NewValidation("brand name must be at most %d characters", maxBrandNameLen)
	}
	return nil
}
