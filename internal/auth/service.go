package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Akr1040317/CollegeApp-sub000/internal/ai"
	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrResetTokenInvalid  = errors.New("reset token invalid or expired")
)

const (
	tokenTTL      = 24 * time.Hour
	resetTokenTTL = time.Hour
)

type Service struct {
	db     *gorm.DB
	secret string
	email  ai.Emailer
}

func NewService(db *gorm.DB, secret string, email ai.Emailer) *Service {
	return &Service{db: db, secret: secret, email: email}
}

func (s *Service) SignUp(ctx context.Context, email, password, displayName string) (*models.User, string, error) {
	var existing models.User
	err := s.db.WithContext(ctx).First(&existing, "email = ?", email).Error
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{Email: email, PasswordHash: string(hash), DisplayName: displayName}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := IssueToken(s.secret, &user, tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := IssueToken(s.secret, &user, tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// RequestPasswordReset emails a reset token. It deliberately reports
// success for unknown addresses so the endpoint cannot be used to probe
// which emails have accounts.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	token := uuid.NewString()
	expires := time.Now().Add(resetTokenTTL)
	if err := s.db.WithContext(ctx).Model(&user).Updates(map[string]any{
		"reset_token":      token,
		"reset_expires_at": expires,
	}).Error; err != nil {
		return err
	}

	return s.email.Send(ctx, ai.Email{
		To:      user.Email,
		Subject: "Reset your password",
		Body:    fmt.Sprintf("Use this token to reset your password within the hour: %s", token),
	})
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "reset_token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrResetTokenInvalid
	}
	if err != nil {
		return err
	}
	if user.ResetExpiresAt == nil || user.ResetExpiresAt.Before(time.Now()) {
		return ErrResetTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(&user).Updates(map[string]any{
		"password_hash":    string(hash),
		"reset_token":      nil,
		"reset_expires_at": nil,
	}).Error
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, displayName string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&user).Update("display_name", displayName).Error; err != nil {
		return nil, err
	}
	user.DisplayName = displayName
	return &user, nil
}
