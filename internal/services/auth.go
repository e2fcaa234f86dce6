package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tatthien/church-equipment/internal/dto"
	"github.com/tatthien/church-equipment/internal/entities"
	"github.com/tatthien/church-equipment/internal/repositories"
	apperrors "github.com/tatthien/church-equipment/pkg/errors"
	"github.com/tatthien/church-equipment/pkg/service"
	"github.com/tatthien/church-equipment/pkg/utils"
	"github.com/tatthien/church-equipment/pkg/validation"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	GetUserByID(ctx context.Context, userID uint64) (*dto.UserDTO, error)
}

type AuthService struct {
	userRepo repositories.UserRepositoryInterface
	jwtSvc   service.JWTService
	logger   *zap.Logger
}

func NewAuthService(userRepo repositories.UserRepositoryInterface, jwtSvc service.JWTService, logger *zap.Logger) AuthServiceInterface {
	return &AuthService{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		logger:   logger,
	}
}

// Login checks credentials and issues a token. A missing user and a wrong
// password produce the same error so usernames cannot be probed.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	if outcome := validation.ValidateCredentials(payload.Username, payload.Password); !outcome.OK {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindUserByUsername(ctx, payload.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.logger.Error("login: user lookup failed", zap.Error(err))
		return nil, err
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtSvc.GenerateToken(user.ID, user.Username, user.Name, user.Role)
	if err != nil {
		s.logger.Error("login: token generation failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("user logged in", zap.Uint64("userID", user.ID))
	return &dto.LoginResponseDTO{
		User:  mapUserToDTO(user),
		Token: token,
	}, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := mapUserToDTO(user)
	return &res, nil
}

func mapUserToDTO(user *entities.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format(timeLayout),
	}
}
