package repository

import (
	"context"
	"database/sql"
	"time"

	"slotswapper/core/database"
	"slotswapper/core/logger"
	"slotswapper/modules/auth/entity"

	"github.com/google/uuid"
)

// AuthRepository handles all user persistence for authentication.
type AuthRepository struct {
	DB database.Database
}

func NewAuthRepository(db database.Database) *AuthRepository {
	return &AuthRepository{DB: db}
}

// AuthRepositoryInterface defines the contract for authentication repository operations.
type AuthRepositoryInterface interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL string) error
}

func (r *AuthRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (name, email, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, password, avatar_url, created_at, updated_at
	`
	now := time.Now()

	var created entity.User
	err := r.DB.GetContext(ctx, &created, query, user.Name, user.Email, user.Password, now, now)
	if err != nil {
		logger.Error("AuthRepository:CreateUser", err)
		return nil, err
	}
	return &created, nil
}

func (r *AuthRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password, avatar_url, created_at, updated_at
		FROM users WHERE email = $1
	`
	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByEmail", err)
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, name, email, password, avatar_url, created_at, updated_at
		FROM users WHERE id = $1
	`
	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByID", err)
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL string) error {
	query := `UPDATE users SET avatar_url = $2, updated_at = NOW() WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id, avatarURL); err != nil {
		logger.Error("AuthRepository:UpdateAvatarURL", err)
		return err
	}
	return nil
}
