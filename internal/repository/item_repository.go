package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rewear-app/backend/internal/models"
	appErr "github.com/rewear-app/backend/pkg/errors"
	"gorm.io/gorm"
)

// ItemFilters narrows wardrobe listings. Zero values mean "no filter".
type ItemFilters struct {
	Lifecycle  string
	CategoryID uint
}

type ItemRepository interface {
	BaseRepository[models.Item]
	ListByUser(ctx context.Context, userID uuid.UUID, f *ItemFilters) ([]models.Item, error)
	GetOwned(ctx context.Context, id uint, userID uuid.UUID, dest *models.Item) error
	CreatePurchase(ctx context.Context, p *models.Purchase) error
	GetPurchaseByItem(ctx context.Context, itemID uint, dest *models.Purchase) error
	CountByUser(ctx context.Context, userID uuid.UUID, lifecycles []string) (int64, error)
	AvgPurchaseCents(ctx context.Context, userID uuid.UUID) (float64, error)
}

type itemRepository struct {
	BaseRepository[models.Item]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{BaseRepository: NewBaseRepository[models.Item](db), db: db}
}

func (r *itemRepository) ListByUser(ctx context.Context, userID uuid.UUID, f *ItemFilters) ([]models.Item, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if f != nil {
		if f.Lifecycle != "" {
			q = q.Where("lifecycle = ?", f.Lifecycle)
		}
		if f.CategoryID != 0 {
			q = q.Where("category_id = ?", f.CategoryID)
		}
	}
	var out []models.Item
	if err := q.Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list items by user failed")
	}
	return out, nil
}

// GetOwned fetches an item only when it belongs to the given profile. Items of
// other profiles are reported as not found, never as forbidden, so the API
// does not leak which ids exist.
func (r *itemRepository) GetOwned(ctx context.Context, id uint, userID uuid.UUID, dest *models.Item) error {
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(dest).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.New(appErr.CodeNotFound, "item not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get item failed")
	}
	return nil
}

func (r *itemRepository) CreatePurchase(ctx context.Context, p *models.Purchase) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if IsUniqueViolation(err) {
			return appErr.Wrap(err, appErr.CodeConflict, "item already has a purchase record")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "create purchase failed")
	}
	return nil
}

func (r *itemRepository) GetPurchaseByItem(ctx context.Context, itemID uint, dest *models.Purchase) error {
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(dest).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.New(appErr.CodeNotFound, "purchase not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get purchase failed")
	}
	return nil
}

// CountByUser counts the profile's items, optionally restricted to a set of
// lifecycle states.
func (r *itemRepository) CountByUser(ctx context.Context, userID uuid.UUID, lifecycles []string) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&models.Item{}).Where("user_id = ?", userID)
	if len(lifecycles) > 0 {
		q = q.Where("lifecycle IN ?", lifecycles)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, appErr.Wrap(err, appErr.CodeInternal, "count items failed")
	}
	return n, nil
}

// AvgPurchaseCents averages the acquisition cost over every purchase record of
// the profile's items. AVG over an empty set is NULL, so COALESCE keeps the
// contract of 0 for profiles with no purchases.
func (r *itemRepository) AvgPurchaseCents(ctx context.Context, userID uuid.UUID) (float64, error) {
	var avg float64
	if err := r.db.WithContext(ctx).Model(&models.Purchase{}).
		Joins("JOIN items ON items.id = purchases.item_id").
		Where("items.user_id = ?", userID).
		Select("COALESCE(AVG(purchases.price_cents), 0)").
		Scan(&avg).Error; err != nil {
		return 0, appErr.Wrap(err, appErr.CodeInternal, "average purchase cost failed")
	}
	return avg, nil
}
