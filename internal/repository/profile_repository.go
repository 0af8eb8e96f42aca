package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rewear-app/backend/internal/models"
	appErr "github.com/rewear-app/backend/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID, dest *models.Profile) error
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, p *models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uuid.UUID, dest *models.Profile) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(dest).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.New(appErr.CodeNotFound, "profile not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get profile failed")
	}
	return nil
}

// GetOrCreate returns the profile for the user, inserting an empty one on
// first access. The insert uses ON CONFLICT DO NOTHING on the primary key so
// two concurrent first-accesses cannot both create a row; the loser falls
// through to the read.
func (r *profileRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	p := models.Profile{UserID: userID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(&p).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get-or-create profile failed")
	}
	if err := r.GetByUserID(ctx, userID, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Update(ctx context.Context, p *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "update profile failed")
	}
	return nil
}
