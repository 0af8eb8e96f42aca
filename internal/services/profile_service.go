package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/rewear-app/backend/internal/models"
	"github.com/rewear-app/backend/internal/repository"
	appErr "github.com/rewear-app/backend/pkg/errors"
	"github.com/rewear-app/backend/pkg/logger"
	"go.uber.org/zap"
)

// ProfileView is the composite read model for the profile endpoint. Email and
// DateJoined come from the user row, everything else from the profile row.
type ProfileView struct {
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	City       string    `json:"city"`
	DateJoined time.Time `json:"date_joined"`
}

// UpdateProfileInput is a partial update; nil fields are left untouched.
// Email is read-only and intentionally absent.
type UpdateProfileInput struct {
	FullName    *string
	City        *string
	Preferences map[string]interface{}
}

type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
	Update(ctx context.Context, userID uuid.UUID, updates *UpdateProfileInput) (*ProfileView, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) ProfileService {
	return &profileService{profileRepo: profileRepo, userRepo: userRepo}
}

var _ ProfileService = (*profileService)(nil)

// Get returns the caller's profile, creating an empty one on first access.
func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	p, err := s.profileRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, p)
}

func (s *profileService) Update(ctx context.Context, userID uuid.UUID, updates *UpdateProfileInput) (*ProfileView, error) {
	p, err := s.profileRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if updates.FullName != nil {
		p.FullName = *updates.FullName
	}
	if updates.City != nil {
		p.City = *updates.City
	}
	if updates.Preferences != nil {
		b, err := json.Marshal(updates.Preferences)
		if err != nil {
			return nil, appErr.Wrap(err, appErr.CodeInvalid, "invalid preferences json")
		}
		p.Preferences = datatypes.JSON(b)
	}

	if err := s.profileRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	logger.L().Info("profile updated", zap.String("user_id", userID.String()))
	return s.view(ctx, p)
}

func (s *profileService) view(ctx context.Context, p *models.Profile) (*ProfileView, error) {
	var u models.User
	if err := s.userRepo.GetByID(ctx, p.UserID, &u); err != nil {
		return nil, err
	}
	return &ProfileView{
		FullName:   p.FullName,
		Email:      u.Email,
		City:       p.City,
		DateJoined: u.CreatedAt,
	}, nil
}
