package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rewear-app/backend/internal/models"
	appErr "github.com/rewear-app/backend/pkg/errors"
	"gorm.io/gorm"
)

// ListingRow is a listing with the item name joined in, for seller summaries.
type ListingRow struct {
	ListingID      uint
	ItemName       string
	ListPriceCents int
	Status         string
}

type ListingRepository interface {
	BaseRepository[models.Listing]
	ListOpen(ctx context.Context) ([]models.Listing, error)
	RecentBySeller(ctx context.Context, sellerID uuid.UUID, limit int) ([]ListingRow, error)
	IncrementViews(ctx context.Context, id uint) error
}

type listingRepository struct {
	BaseRepository[models.Listing]
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{BaseRepository: NewBaseRepository[models.Listing](db), db: db}
}

func (r *listingRepository) ListOpen(ctx context.Context) ([]models.Listing, error) {
	var out []models.Listing
	if err := r.db.WithContext(ctx).
		Where("status = ?", models.ListingActive).
		Order("id DESC").
		Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list open listings failed")
	}
	return out, nil
}

// RecentBySeller returns the seller's listings, newest first.
func (r *listingRepository) RecentBySeller(ctx context.Context, sellerID uuid.UUID, limit int) ([]ListingRow, error) {
	var out []ListingRow
	q := r.db.WithContext(ctx).Model(&models.Listing{}).
		Select("listings.id AS listing_id, items.name AS item_name, listings.list_price_cents AS list_price_cents, listings.status AS status").
		Joins("JOIN items ON items.id = listings.item_id").
		Where("listings.seller_id = ?", sellerID).
		Order("listings.id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list listings by seller failed")
	}
	return out, nil
}

// IncrementViews bumps the view counter with a single UPDATE so concurrent
// reads do not lose increments.
func (r *listingRepository) IncrementViews(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.Listing{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "increment views failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "listing not found")
	}
	return nil
}
