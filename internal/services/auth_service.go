package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rewear-app/backend/internal/models"
	"github.com/rewear-app/backend/internal/repository"
	appErr "github.com/rewear-app/backend/pkg/errors"
	"github.com/rewear-app/backend/pkg/logger"
	"github.com/rewear-app/backend/pkg/utils"
	"go.uber.org/zap"
)

const minPasswordLength = 8

// commonPasswords is a short deny-list of passwords that pass the length and
// numeric checks but are trivially guessable.
var commonPasswords = map[string]struct{}{
	"password":   {},
	"password1":  {},
	"qwertyuiop": {},
	"letmein123": {},
	"iloveyou1":  {},
	"sunshine1":  {},
	"admin1234":  {},
	"welcome123": {},
}

// RegisterInput carries the registration form. Password2 is the confirmation
// field and must match Password exactly.
type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	Password2 string
	FullName  string
	City      string
}

// TokenPair is an access/refresh token pair issued at login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type AuthService interface {
	Register(ctx context.Context, input *RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, *models.User, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

type authService struct {
	db         *gorm.DB
	userRepo   repository.UserRepository
	hmacSecret []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, secret []byte, accessTTL, refreshTTL time.Duration) AuthService {
	return &authService{
		db:         db,
		userRepo:   userRepo,
		hmacSecret: secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

var _ AuthService = (*authService)(nil)

// Register validates the form and creates the user together with its linked
// profile in one transaction, so a half-registered account can never exist.
func (s *authService) Register(ctx context.Context, input *RegisterInput) (*models.User, error) {
	if input.Password != input.Password2 {
		return nil, appErr.Validation("password", "Passwords do not match.")
	}
	if err := validatePasswordPolicy(input.Password); err != nil {
		return nil, err
	}

	if taken, err := s.userRepo.EmailTaken(ctx, input.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, appErr.Validation("email", "A user with that email already exists.")
	}
	if taken, err := s.userRepo.UsernameTaken(ctx, input.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, appErr.Validation("username", "A user with that username already exists.")
	}

	ph, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}

	user := &models.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: ph,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if repository.IsUniqueViolation(err) {
				// lost a race with a concurrent registration
				return appErr.Validation("email", "A user with that email already exists.")
			}
			return appErr.Wrap(err, appErr.CodeInternal, "create user failed")
		}
		profile := &models.Profile{
			UserID:   user.ID,
			FullName: input.FullName,
			City:     input.City,
		}
		if err := tx.Create(profile).Error; err != nil {
			return appErr.Wrap(err, appErr.CodeInternal, "create profile failed")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.L().Info("user registered", zap.String("user_id", user.ID.String()), zap.String("email", user.Email))
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*TokenPair, *models.User, error) {
	var user models.User
	if err := s.userRepo.GetByEmail(ctx, email, &user); err != nil {
		return nil, nil, appErr.New(appErr.CodeUnauthorized, "invalid credentials")
	}
	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, nil, appErr.New(appErr.CodeUnauthorized, "invalid credentials")
	}

	access, err := s.signToken(user.ID, "access", s.accessTTL)
	if err != nil {
		return nil, nil, appErr.Wrap(err, appErr.CodeInternal, "sign access token failed")
	}
	refresh, err := s.signToken(user.ID, "refresh", s.refreshTTL)
	if err != nil {
		return nil, nil, appErr.Wrap(err, appErr.CodeInternal, "sign refresh token failed")
	}

	logger.L().Info("user logged in", zap.String("user_id", user.ID.String()))
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, &user, nil
}

// Refresh exchanges a valid refresh token for a new access token. Refresh
// tokens are not rotated or blacklisted; they stay valid until expiry.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.hmacSecret, nil
	})
	if err != nil || !token.Valid {
		return "", appErr.New(appErr.CodeUnauthorized, "invalid refresh token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", appErr.New(appErr.CodeUnauthorized, "invalid refresh token")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return "", appErr.New(appErr.CodeUnauthorized, "not a refresh token")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return "", appErr.New(appErr.CodeUnauthorized, "invalid refresh token")
	}

	access, err := s.signToken(userID, "access", s.accessTTL)
	if err != nil {
		return "", appErr.Wrap(err, appErr.CodeInternal, "sign access token failed")
	}
	return access, nil
}

func (s *authService) signToken(userID uuid.UUID, typ string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"typ": typ,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString(s.hmacSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// validatePasswordPolicy enforces minimum length, rejects purely numeric
// passwords, and rejects entries from the common-password list.
func validatePasswordPolicy(password string) error {
	if len(password) < minPasswordLength {
		return appErr.Validation("password", fmt.Sprintf("This password is too short. It must contain at least %d characters.", minPasswordLength))
	}
	numeric := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		return appErr.Validation("password", "This password is entirely numeric.")
	}
	if _, found := commonPasswords[strings.ToLower(password)]; found {
		return appErr.Validation("password", "This password is too common.")
	}
	return nil
}
