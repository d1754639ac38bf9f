package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"slotswapper/core/cache"
	"slotswapper/core/errors"
	"slotswapper/core/logger"
	"slotswapper/core/storage"
	"slotswapper/core/utils"
	"slotswapper/modules/auth/dto"
	"slotswapper/modules/auth/entity"
	"slotswapper/modules/auth/repository"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError)
	UploadAvatar(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (*dto.AvatarResponse, *errors.AppError)
}

type AuthService struct {
	repo    repository.AuthRepositoryInterface
	cache   cache.Cache
	storage storage.Storage
}

func NewAuthService(repo repository.AuthRepositoryInterface, cache cache.Cache, storage storage.Storage) AuthServiceInterface {
	return &AuthService{
		repo:    repo,
		cache:   cache,
		storage: storage,
	}
}

// Register creates a new account and returns a signed token.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError) {
	existing, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:Register:GetUserByEmail", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to register user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "User with this email already exists", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to register user", err)
	}

	user, err := s.repo.CreateUser(ctx, &entity.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
	})
	if err != nil {
		logger.Error("AuthService:Register:CreateUser", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to register user", err)
	}

	return s.issueToken(user)
}

// Login verifies credentials. Unknown email and wrong password return the
// same generic message.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:Login:GetUserByEmail", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to log in", err)
	}
	if user == nil || !utils.ComparePassword(user.Password, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid email or password", nil)
	}

	return s.issueToken(user)
}

// Logout blacklists the presented token for the remainder of its lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	if token == "" {
		return nil
	}
	if err := s.cache.AddToTokenBlacklist(ctx, token); err != nil {
		logger.Error("AuthService:Logout:AddToTokenBlacklist", "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to log out", err)
	}
	return nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		logger.Error("AuthService:GetProfile:GetUserByID", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get profile", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// UploadAvatar stores the image in object storage and records its URL.
func (s *AuthService) UploadAvatar(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (*dto.AvatarResponse, *errors.AppError) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upload avatar", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}

	key := fmt.Sprintf("avatars/%s/%s%s", userID, utils.GenerateID(), path.Ext(filename))
	url, err := s.storage.Upload(ctx, key, contentType, body)
	if err != nil {
		logger.Error("AuthService:UploadAvatar:Upload", "error", err, "user_id", userID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upload avatar", err)
	}

	if err := s.repo.UpdateAvatarURL(ctx, userID, url); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upload avatar", err)
	}

	return &dto.AvatarResponse{AvatarURL: url}, nil
}

func (s *AuthService) issueToken(user *entity.User) (*dto.AuthResponse, *errors.AppError) {
	token, err := utils.GenerateToken(user.ID, user.Email, user.Name)
	if err != nil {
		logger.Error("AuthService:IssueToken", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}
	return &dto.AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}
