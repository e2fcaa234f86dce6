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

type DepartmentServiceInterface interface {
	GetDepartments(ctx context.Context, search string, page utils.PageRequest) ([]dto.DepartmentDTO, uint64, error)
	FindDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error)
	CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*dto.DepartmentDTO, error)
	UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*dto.DepartmentDTO, error)
	DeleteDepartment(ctx context.Context, id uint64) error
}

type DepartmentService struct {
	departmentRepo repositories.DepartmentRepositoryInterface
	logger         *zap.Logger
}

func NewDepartmentService(departmentRepo repositories.DepartmentRepositoryInterface, logger *zap.Logger) DepartmentServiceInterface {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

func (s *DepartmentService) GetDepartments(ctx context.Context, search string, page utils.PageRequest) ([]dto.DepartmentDTO, uint64, error) {
	departments, total, err := s.departmentRepo.GetDepartments(ctx, search, page.Limit, page.Offset())
	if err != nil {
		s.logger.Error("failed to list departments", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.DepartmentDTO, 0, len(departments))
	for i := range departments {
		result = append(result, mapDepartmentToDTO(&departments[i]))
	}
	return result, total, nil
}

func (s *DepartmentService) FindDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error) {
	department, err := s.departmentRepo.FindDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	res := mapDepartmentToDTO(department)
	return &res, nil
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*dto.DepartmentDTO, error) {
	if outcome := validation.ValidateRequiredName(payload.Name); !outcome.OK {
		return nil, outcome.Err("name")
	}

	department, err := s.departmentRepo.CreateDepartment(ctx, payload)
	if err != nil {
		s.logger.Error("failed to create department", zap.String("name", payload.Name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("department created", zap.Uint64("id", department.ID))
	res := mapDepartmentToDTO(department)
	return &res, nil
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*dto.DepartmentDTO, error) {
	if payload.Name != nil {
		if outcome := validation.ValidateRequiredName(*payload.Name); !outcome.OK {
			return nil, outcome.Err("name")
		}
	}

	department, err := s.departmentRepo.UpdateDepartment(ctx, id, payload)
	if err != nil {
		s.logger.Error("failed to update department", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	res := mapDepartmentToDTO(department)
	return &res, nil
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, id uint64) error {
	if err := s.departmentRepo.DeleteDepartment(ctx, id); err != nil {
		s.logger.Error("failed to delete department", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func mapDepartmentToDTO(department *entities.Department) dto.DepartmentDTO {
	return dto.DepartmentDTO{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description.Ptr(),
		CreatedAt:   department.CreatedAt.Format(timeLayout),
	}
}
