package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tatthien/church-equipment/internal/authz"
	"github.com/tatthien/church-equipment/internal/dto"
	"github.com/tatthien/church-equipment/internal/entities"
	"github.com/tatthien/church-equipment/internal/repositories"
	"github.com/tatthien/church-equipment/pkg/constants"
	apperrors "github.com/tatthien/church-equipment/pkg/errors"
	"github.com/tatthien/church-equipment/pkg/utils"
	"github.com/tatthien/church-equipment/pkg/validation"
)

type EquipmentServiceInterface interface {
	GetEquipment(ctx context.Context, caller authz.Caller, filter dto.EquipmentFilter, page utils.PageRequest) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, caller authz.Caller, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, caller authz.Caller, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, caller authz.Caller, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, caller authz.Caller, id uint64) error
	GetEquipmentQRCode(ctx context.Context, caller authz.Caller, id uint64) ([]byte, error)
	GetPublicEquipment(ctx context.Context, publicID string) (*dto.PublicEquipmentDTO, error)
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	cacheRepo     repositories.CacheRepositoryInterface
	qrSvc         *QRCodeService
	cfg           EquipmentServiceConfig
	logger        *zap.Logger
}

type EquipmentServiceConfig struct {
	PublicCacheTTL time.Duration
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	qrSvc *QRCodeService,
	cfg EquipmentServiceConfig,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		cacheRepo:     cacheRepo,
		qrSvc:         qrSvc,
		cfg:           cfg,
		logger:        logger,
	}
}

func publicCacheKey(publicID string) string {
	return fmt.Sprintf("public_equipment:%s", publicID)
}

func (s *EquipmentService) GetEquipment(ctx context.Context, caller authz.Caller, filter dto.EquipmentFilter, page utils.PageRequest) ([]dto.EquipmentDTO, uint64, error) {
	if outcome := validation.ValidateEquipmentStatus(filter.Status); !outcome.OK {
		return nil, 0, outcome.Err("status")
	}

	scope := authz.ScopeForList(caller)
	filter.RestrictToOwner = scope.RestrictToOwner
	filter.Limit = page.Limit
	filter.Offset = page.Offset()

	items, total, err := s.equipmentRepo.GetEquipment(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list equipment", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.EquipmentDTO, 0, len(items))
	for i := range items {
		result = append(result, mapEquipmentToDTO(&items[i]))
	}
	return result, total, nil
}

// fetchAccessible loads a row and applies the ownership policy. A row the
// caller may not touch is reported as absent, so forbidden ids are
// indistinguishable from missing ones.
func (s *EquipmentService) fetchAccessible(ctx context.Context, caller authz.Caller, id uint64) (*entities.Equipment, error) {
	item, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccess(caller, authz.Target{OwnerID: item.CreatedBy}) {
		return nil, apperrors.ErrNotFound
	}
	return item, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, caller authz.Caller, id uint64) (*dto.EquipmentDTO, error) {
	item, err := s.fetchAccessible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	res := mapEquipmentToDTO(item)
	return &res, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, caller authz.Caller, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	if outcome := validation.ValidateRequiredName(payload.Name); !outcome.OK {
		return nil, outcome.Err("name")
	}
	if outcome := validation.ValidateEquipmentStatus(payload.Status); !outcome.OK {
		return nil, outcome.Err("status")
	}

	// Absent status means the default; an explicit value is kept as-is.
	status := constants.StatusNew
	if payload.Status != nil {
		status = *payload.Status
	}

	entity := entities.Equipment{
		PublicID:     uuid.New(),
		Name:         payload.Name,
		Status:       status,
		DepartmentID: payload.DepartmentID,
		BrandID:      payload.BrandID,
		CreatedBy:    &caller.ID,
	}

	if payload.PurchaseDate != nil {
		t, err := parseDate(*payload.PurchaseDate)
		if err != nil {
			return nil, apperrors.NewValidationError("purchase_date", "INVALID_DATE", "purchase_date must be an RFC3339 timestamp or YYYY-MM-DD")
		}
		entity.PurchaseDate.SetValid(t)
	}

	item, err := s.equipmentRepo.CreateEquipment(ctx, entity)
	if err != nil {
		s.logger.Error("failed to create equipment", zap.String("name", payload.Name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("equipment created", zap.Uint64("id", item.ID), zap.Uint64("by", caller.ID))
	res := mapEquipmentToDTO(item)
	return &res, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, caller authz.Caller, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	existing, err := s.fetchAccessible(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		if outcome := validation.ValidateRequiredName(*payload.Name); !outcome.OK {
			return nil, outcome.Err("name")
		}
	}
	// A nil status keeps the stored value; the default is never substituted
	// on update.
	if outcome := validation.ValidateEquipmentStatus(payload.Status); !outcome.OK {
		return nil, outcome.Err("status")
	}

	params := repositories.UpdateEquipmentParams{
		Name:         payload.Name,
		Status:       payload.Status,
		DepartmentID: payload.DepartmentID,
		BrandID:      payload.BrandID,
	}
	if payload.PurchaseDate != nil {
		t, err := parseDate(*payload.PurchaseDate)
		if err != nil {
			return nil, apperrors.NewValidationError("purchase_date", "INVALID_DATE", "purchase_date must be an RFC3339 timestamp or YYYY-MM-DD")
		}
		params.PurchaseDate = &t
	}

	item, err := s.equipmentRepo.UpdateEquipment(ctx, id, params)
	if err != nil {
		s.logger.Error("failed to update equipment", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	s.invalidatePublicCache(ctx, existing.PublicID.String())
	res := mapEquipmentToDTO(item)
	return &res, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, caller authz.Caller, id uint64) error {
	existing, err := s.fetchAccessible(ctx, caller, id)
	if err != nil {
		return err
	}

	if err := s.equipmentRepo.DeleteEquipment(ctx, id); err != nil {
		s.logger.Error("failed to delete equipment", zap.Uint64("id", id), zap.Error(err))
		return err
	}

	s.invalidatePublicCache(ctx, existing.PublicID.String())
	s.logger.Info("equipment deleted", zap.Uint64("id", id), zap.Uint64("by", caller.ID))
	return nil
}

func (s *EquipmentService) GetEquipmentQRCode(ctx context.Context, caller authz.Caller, id uint64) ([]byte, error) {
	item, err := s.fetchAccessible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return s.qrSvc.GenerateEquipmentQR(item.PublicID.String())
}

// GetPublicEquipment serves the unauthenticated QR lookup. Only the limited
// public field set is ever cached or returned.
func (s *EquipmentService) GetPublicEquipment(ctx context.Context, publicID string) (*dto.PublicEquipmentDTO, error) {
	parsed, err := uuid.Parse(publicID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	key := publicCacheKey(parsed.String())
	if cached, err := s.cacheRepo.Get(ctx, key); err == nil {
		var result dto.PublicEquipmentDTO
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	}

	item, err := s.equipmentRepo.FindEquipmentByPublicID(ctx, parsed)
	if err != nil {
		return nil, err
	}

	result := mapEquipmentToPublicDTO(item)
	if encoded, err := json.Marshal(result); err == nil {
		if err := s.cacheRepo.Set(ctx, key, encoded, s.cfg.PublicCacheTTL); err != nil {
			s.logger.Warn("failed to cache public equipment", zap.Error(err))
		}
	}
	return &result, nil
}

func (s *EquipmentService) invalidatePublicCache(ctx context.Context, publicID string) {
	if err := s.cacheRepo.Del(ctx, publicCacheKey(publicID)); err != nil {
		s.logger.Warn("failed to invalidate public equipment cache", zap.String("publicID", publicID), zap.Error(err))
	}
}

func mapEquipmentToDTO(item *entities.Equipment) dto.EquipmentDTO {
	result := dto.EquipmentDTO{
		ID:             item.ID,
		PublicID:       item.PublicID.String(),
		Name:           item.Name,
		Status:         item.Status,
		DepartmentID:   item.DepartmentID,
		BrandID:        item.BrandID,
		CreatedBy:      item.CreatedBy,
		DepartmentName: item.DepartmentName.Ptr(),
		BrandName:      item.BrandName.Ptr(),
		CreatorName:    item.CreatorName.Ptr(),
		CreatedAt:      item.CreatedAt.Format(timeLayout),
	}
	if item.PurchaseDate.Valid {
		result.PurchaseDate = utils.ToPtr(item.PurchaseDate.Time.Format(timeLayout))
	}
	return result
}

func mapEquipmentToPublicDTO(item *entities.Equipment) dto.PublicEquipmentDTO {
	result := dto.PublicEquipmentDTO{
		Name:           item.Name,
		Status:         item.Status,
		DepartmentName: item.DepartmentName.Ptr(),
		BrandName:      item.BrandName.Ptr(),
		CreatedAt:      item.CreatedAt.Format(timeLayout),
	}
	if item.PurchaseDate.Valid {
		result.PurchaseDate = utils.ToPtr(item.PurchaseDate.Time.Format(timeLayout))
	}
	return result
}
