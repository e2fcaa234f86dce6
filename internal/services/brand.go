package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/tatthien/church-equipment/internal/dto"
	"github.com/tatthien/church-equipment/internal/entities"
	"github.com/tatthien/church-equipment/internal/repositories"
	"github.com/tatthien/church-equipment/pkg/utils"
	"github.com/tatthien/church-equipment/pkg/validation"
)

type BrandServiceInterface interface {
	GetBrands(ctx context.Context, search string, page utils.PageRequest) ([]dto.BrandDTO, uint64, error)
	FindBrand(ctx context.Context, id uint64) (*dto.BrandDTO, error)
	CreateBrand(ctx context.Context, payload dto.CreateBrandDTO) (*dto.BrandDTO, error)
	UpdateBrand(ctx context.Context, id uint64, payload dto.UpdateBrandDTO) (*dto.BrandDTO, error)
	DeleteBrand(ctx context.Context, id uint64) error
}

type BrandService struct {
	brandRepo repositories.BrandRepositoryInterface
	logger    *zap.Logger
}

func NewBrandService(brandRepo repositories.BrandRepositoryInterface, logger *zap.Logger) BrandServiceInterface {
	return &BrandService{
		brandRepo: brandRepo,
		logger:    logger,
	}
}

func (s *BrandService) GetBrands(ctx context.Context, search string, page utils.PageRequest) ([]dto.BrandDTO, uint64, error) {
	brands, total, err := s.brandRepo.GetBrands(ctx, search, page.Limit, page.Offset())
	if err != nil {
		s.logger.Error("failed to list brands", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.BrandDTO, 0, len(brands))
	for i := range brands {
		result = append(result, mapBrandToDTO(&brands[i]))
	}
	return result, total, nil
}

func (s *BrandService) FindBrand(ctx context.Context, id uint64) (*dto.BrandDTO, error) {
	brand, err := s.brandRepo.FindBrand(ctx, id)
	if err != nil {
		return nil, err
	}
	res := mapBrandToDTO(brand)
	return &res, nil
}

func (s *BrandService) CreateBrand(ctx context.Context, payload dto.CreateBrandDTO) (*dto.BrandDTO, error) {
	if outcome := validation.ValidateRequiredName(payload.Name); !outcome.OK {
		return nil, outcome.Err("name")
	}

	brand, err := s.brandRepo.CreateBrand(ctx, payload)
	if err != nil {
		s.logger.Error("failed to create brand", zap.String("name", payload.Name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("brand created", zap.Uint64("id", brand.ID))
	res := mapBrandToDTO(brand)
	return &res, nil
}

func (s *BrandService) UpdateBrand(ctx context.Context, id uint64, payload dto.UpdateBrandDTO) (*dto.BrandDTO, error) {
	if payload.Name != nil {
		if outcome := validation.ValidateRequiredName(*payload.Name); !outcome.OK {
			return nil, outcome.Err("name")
		}
	}

	brand, err := s.brandRepo.UpdateBrand(ctx, id, payload)
	if err != nil {
		s.logger.Error("failed to update brand", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	res := mapBrandToDTO(brand)
	return &res, nil
}

func (s *BrandService) DeleteBrand(ctx context.Context, id uint64) error {
	if err := s.brandRepo.DeleteBrand(ctx, id); err != nil {
		s.logger.Error("failed to delete brand", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func mapBrandToDTO(brand *entities.Brand) dto.BrandDTO {
	return dto.BrandDTO{
		ID:          brand.ID,
		Name:        brand.Name,
		Description: brand.Description.Ptr(),
		CreatedAt:   brand.CreatedAt.Format(timeLayout),
	}
}
