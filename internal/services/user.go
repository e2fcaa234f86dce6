package services

import (
	"context"

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

type UserServiceInterface interface {
	GetUsers(ctx context.Context, caller authz.Caller, page utils.PageRequest) ([]dto.UserDTO, uint64, error)
	CreateUser(ctx context.Context, caller authz.Caller, payload dto.CreateUserDTO) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, caller authz.Caller, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error)
	DeleteUser(ctx context.Context, caller authz.Caller, id uint64) error
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *UserService) GetUsers(ctx context.Context, caller authz.Caller, page utils.PageRequest) ([]dto.UserDTO, uint64, error) {
	if !authz.CanManageUsers(caller) {
		return nil, 0, apperrors.ErrForbidden
	}

	users, total, err := s.userRepo.GetUsers(ctx, page.Limit, page.Offset())
	if err != nil {
		s.logger.Error("failed to list users", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		result = append(result, mapUserToDTO(&users[i]))
	}
	return result, total, nil
}

func (s *UserService) CreateUser(ctx context.Context, caller authz.Caller, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	if !authz.CanManageUsers(caller) {
		return nil, apperrors.ErrForbidden
	}

	if outcome := validation.ValidateCredentials(payload.Username, payload.Password); !outcome.OK {
		return nil, outcome.Err("username")
	}
	if outcome := validation.ValidateUserRole(payload.Role); !outcome.OK {
		return nil, outcome.Err("role")
	}

	role := constants.RoleUser
	if payload.Role != nil {
		role = *payload.Role
	}

	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.CreateUser(ctx, entities.User{
		Username: payload.Username,
		Name:     payload.Name,
		Password: hashed,
		Role:     role,
	})
	if err != nil {
		s.logger.Error("failed to create user", zap.String("username", payload.Username), zap.Error(err))
		return nil, err
	}

	s.logger.Info("user created", zap.Uint64("id", user.ID), zap.String("username", user.Username))
	res := mapUserToDTO(user)
	return &res, nil
}

func (s *UserService) UpdateUser(ctx context.Context, caller authz.Caller, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	if !authz.CanManageUsers(caller) {
		return nil, apperrors.ErrForbidden
	}

	if outcome := validation.ValidateUserRole(payload.Role); !outcome.OK {
		return nil, outcome.Err("role")
	}

	params := repositories.UpdateUserParams{
		Name: payload.Name,
		Role: payload.Role,
	}
	if payload.Password != nil {
		if outcome := validation.ValidatePassword(*payload.Password); !outcome.OK {
			return nil, outcome.Err("password")
		}
		hashed, err := utils.HashPassword(*payload.Password)
		if err != nil {
			return nil, err
		}
		params.Password = &hashed
	}

	user, err := s.userRepo.UpdateUser(ctx, id, params)
	if err != nil {
		s.logger.Error("failed to update user", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	res := mapUserToDTO(user)
	return &res, nil
}

func (s *UserService) DeleteUser(ctx context.Context, caller authz.Caller, id uint64) error {
	if !authz.CanManageUsers(caller) {
		return apperrors.ErrForbidden
	}
	if !authz.CanDeleteUser(caller, id) {
		return apperrors.ErrSelfDelete
	}

	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		s.logger.Error("failed to delete user", zap.Uint64("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("user deleted", zap.Uint64("id", id), zap.Uint64("by", caller.ID))
	return nil
}
