package repository

import (
	"context"

	"github.com/rewear-app/backend/internal/models"
	appErr "github.com/rewear-app/backend/pkg/errors"
	"gorm.io/gorm"
)

type TaxonomyRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, c *models.Category) error
	ListBrands(ctx context.Context) ([]models.Brand, error)
	CreateBrand(ctx context.Context, b *models.Brand) error
}

type taxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list categories failed")
	}
	return out, nil
}

func (r *taxonomyRepository) CreateCategory(ctx context.Context, c *models.Category) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if IsUniqueViolation(err) {
			return appErr.Wrap(err, appErr.CodeConflict, "category name already exists")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "create category failed")
	}
	return nil
}

func (r *taxonomyRepository) ListBrands(ctx context.Context) ([]models.Brand, error) {
	var out []models.Brand
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list brands failed")
	}
	return out, nil
}

func (r *taxonomyRepository) CreateBrand(ctx context.Context, b *models.Brand) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if IsUniqueViolation(err) {
			return appErr.Wrap(err, appErr.CodeConflict, "brand name already exists")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "create brand failed")
	}
	return nil
}
