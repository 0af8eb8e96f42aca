package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rewear-app/backend/internal/models"
	appErr "github.com/rewear-app/backend/pkg/errors"
	"gorm.io/gorm"
)

// SaleRow is a sale with the item name joined in, for order summaries.
type SaleRow struct {
	ListingID      uint
	ItemName       string
	SalePriceCents int
	SoldOn         time.Time
}

type SaleRepository interface {
	BaseRepository[models.Sale]
	RecentByBuyer(ctx context.Context, buyerID uuid.UUID, limit int) ([]SaleRow, error)
}

type saleRepository struct {
	BaseRepository[models.Sale]
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{BaseRepository: NewBaseRepository[models.Sale](db), db: db}
}

// RecentByBuyer returns the buyer's sales, newest first.
func (r *saleRepository) RecentByBuyer(ctx context.Context, buyerID uuid.UUID, limit int) ([]SaleRow, error) {
	var out []SaleRow
	q := r.db.WithContext(ctx).Model(&models.Sale{}).
		Select("sales.listing_id AS listing_id, items.name AS item_name, sales.sale_price_cents AS sale_price_cents, sales.sold_on AS sold_on").
		Joins("JOIN listings ON listings.id = sales.listing_id").
		Joins("JOIN items ON items.id = listings.item_id").
		Where("sales.buyer_id = ?", buyerID).
		Order("sales.sold_on DESC, sales.id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list sales by buyer failed")
	}
	return out, nil
}
