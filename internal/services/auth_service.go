package services

import (
	"jobmarket_backend/internal/auth"
	"jobmarket_backend/internal/logger"
	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/repositories"
	"jobmarket_backend/internal/services/dto"
	"jobmarket_backend/pkg/apperrors"
)

type AuthService interface {
	Signup(req *dto.SignupRequest) (*dto.SignupResponse, error)
	Signin(req *dto.SigninRequest) (*dto.SigninResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Signup registers a new account in PENDING status and assigns it to the
// least-loaded verification agent. Admin accounts are never created here.
func (s *AuthServiceImpl) Signup(req *dto.SignupRequest) (*dto.SignupResponse, error) {
	role := models.UserRole(req.Role)
	switch role {
	case models.UserRoleClient, models.UserRoleProvider, models.UserRoleAgent:
	default:
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Status:       models.UserStatusPending,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Country:      req.Country,
		State:        req.State,
		City:         req.City,
	}

	// Agents verify others and are not supervised themselves.
	if role != models.UserRoleAgent {
		if agent, err := s.userRepo.FindLeastLoadedAgent(); err == nil {
			user.AgentID = &agent.ID
		} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.InternalError(err)
		}
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "role", user.Role)

	return &dto.SignupResponse{
		Message: "Account created. Verification pending.",
		User:    dto.NewUserProjection(user),
	}, nil
}

func (s *AuthServiceImpl) Signin(req *dto.SigninRequest) (*dto.SigninResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SigninResponse{
		Token: token,
		User:  dto.NewUserProjection(user),
	}, nil
}
