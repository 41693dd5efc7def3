package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub_backend/internal/auth"
	"talenthub_backend/internal/config"
	"talenthub_backend/internal/email"
	"talenthub_backend/internal/logger"
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(req *dto.RefreshRequest) (*dto.TokenResponse, error)
	Logout(userID string) error
}

type authService struct {
	db               *gorm.DB
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
}

func NewAuthService(
	db *gorm.DB,
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
) AuthService {
	return &authService{
		db:               db,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
	}
}

// Register creates the user and their empty profile atomically, then issues
// a token pair. The welcome email is best effort.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("username = ? OR email = ?", user.Username, user.Email).First(&existing).Error
		if err == nil {
			return repositories.ErrUserAlreadyExists
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Profile{UserID: user.ID}).Error
	})
	if err != nil {
		return nil, err
	}

	if sendErr := s.emailProvider.Send(&email.Email{
		To:      []string{user.Email},
		Subject: "Welcome to TalentHub",
		Body:    fmt.Sprintf("Hi %s, your account is ready. Complete your profile to start getting noticed.", user.Username),
	}); sendErr != nil {
		logger.CtxWarn(ctx, "failed to send welcome email", "error", sendErr, "user_id", user.ID)
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: toUserResponse(user), Tokens: *tokens}, nil
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "invalid username or password", http.StatusUnauthorized)
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "invalid username or password", http.StatusUnauthorized)
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: toUserResponse(user), Tokens: *tokens}, nil
}

// Refresh rotates the refresh token: the presented one is consumed and a
// fresh pair is issued.
func (s *authService) Refresh(req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	stored, err := s.refreshTokenRepo.FindByToken(req.RefreshToken)
	if err != nil {
		if err == repositories.ErrRefreshTokenNotFound {
			return nil, apperrors.New(apperrors.CodeInvalidToken, "auth", "invalid refresh token", http.StatusUnauthorized)
		}
		return nil, err
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.refreshTokenRepo.Delete(stored.Token)
		return nil, apperrors.New(apperrors.CodeTokenExpired, "auth", "refresh token expired", http.StatusUnauthorized)
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.refreshTokenRepo.Delete(stored.Token); err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

func (s *authService) Logout(userID string) error {
	return s.refreshTokenRepo.DeleteByUser(userID)
}

func (s *authService) issueTokens(user *models.User) (*dto.TokenResponse, error) {
	cfg := config.GetConfig()

	accessToken, err := auth.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Duration(cfg.JWT.RefreshTTL) * time.Hour),
	}
	if err := s.refreshTokenRepo.Create(refreshToken); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		TokenType:    "Bearer",
		ExpiresIn:    cfg.JWT.TTL * 60,
	}, nil
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
