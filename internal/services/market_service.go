package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rewear-app/backend/internal/models"
	"github.com/rewear-app/backend/internal/repository"
	appErr "github.com/rewear-app/backend/pkg/errors"
	"github.com/rewear-app/backend/pkg/logger"
	"go.uber.org/zap"
)

type CreateListingInput struct {
	ItemID         uint
	Title          string
	Description    string
	ListPriceCents int
}

// MarketService manages listings and checkout. Checkout is the one place the
// item lifecycle is moved automatically: the sale, the listing close, and the
// lifecycle change commit or roll back together.
type MarketService interface {
	CreateListing(ctx context.Context, sellerID uuid.UUID, input *CreateListingInput) (*models.Listing, error)
	GetListing(ctx context.Context, listingID uint) (*models.Listing, error)
	BrowseListings(ctx context.Context) ([]models.Listing, error)
	Checkout(ctx context.Context, listingID uint, buyerID uuid.UUID) (*models.Sale, error)
}

type marketService struct {
	db          *gorm.DB
	listingRepo repository.ListingRepository
	itemRepo    repository.ItemRepository
}

func NewMarketService(db *gorm.DB, listingRepo repository.ListingRepository, itemRepo repository.ItemRepository) MarketService {
	return &marketService{db: db, listingRepo: listingRepo, itemRepo: itemRepo}
}

var _ MarketService = (*marketService)(nil)

// CreateListing puts an owned item up for sale. The item lifecycle is left
// untouched; only checkout moves it.
func (s *marketService) CreateListing(ctx context.Context, sellerID uuid.UUID, input *CreateListingInput) (*models.Listing, error) {
	if input.ListPriceCents <= 0 {
		return nil, appErr.Validation("list_price_cents", "Price must be a positive number of cents.")
	}

	var item models.Item
	if err := s.itemRepo.GetOwned(ctx, input.ItemID, sellerID, &item); err != nil {
		return nil, err
	}

	l := &models.Listing{
		ItemID:         input.ItemID,
		SellerID:       sellerID,
		Title:          input.Title,
		Description:    input.Description,
		ListedOn:       time.Now(),
		ListPriceCents: input.ListPriceCents,
		Status:         models.ListingActive,
	}
	if err := s.listingRepo.Create(ctx, l); err != nil {
		return nil, err
	}

	logger.L().Info("listing created",
		zap.Uint("listing_id", l.ID),
		zap.Uint("item_id", input.ItemID),
		zap.String("seller_id", sellerID.String()),
	)
	return l, nil
}

// GetListing returns a listing detail and counts the view.
func (s *marketService) GetListing(ctx context.Context, listingID uint) (*models.Listing, error) {
	if err := s.listingRepo.IncrementViews(ctx, listingID); err != nil {
		return nil, err
	}
	var l models.Listing
	if err := s.listingRepo.GetByID(ctx, listingID, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *marketService) BrowseListings(ctx context.Context) ([]models.Listing, error) {
	return s.listingRepo.ListOpen(ctx)
}

// Checkout closes a listing: in a single transaction it creates the Sale at
// the listed price, marks the listing Sold with the buyer recorded, and sets
// the item lifecycle to Sold. A listing that is no longer Active cannot be
// bought again, and sellers cannot buy their own listings.
func (s *marketService) Checkout(ctx context.Context, listingID uint, buyerID uuid.UUID) (*models.Sale, error) {
	var sale *models.Sale

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var l models.Listing
		if err := tx.First(&l, "id = ?", listingID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return appErr.New(appErr.CodeNotFound, "listing not found")
			}
			return appErr.Wrap(err, appErr.CodeInternal, "get listing failed")
		}
		if l.SellerID == buyerID {
			return appErr.New(appErr.CodeInvalid, "cannot buy your own listing")
		}
		if l.Status != models.ListingActive {
			return appErr.New(appErr.CodeConflict, "listing is no longer available")
		}

		sale = &models.Sale{
			ListingID:      l.ID,
			BuyerID:        buyerID,
			SoldOn:         time.Now(),
			SalePriceCents: l.ListPriceCents,
		}
		if err := tx.Create(sale).Error; err != nil {
			return appErr.Wrap(err, appErr.CodeInternal, "create sale failed")
		}

		res := tx.Model(&models.Listing{}).
			Where("id = ? AND status = ?", l.ID, models.ListingActive).
			Updates(map[string]interface{}{"status": models.ListingSold, "buyer_id": buyerID})
		if res.Error != nil {
			return appErr.Wrap(res.Error, appErr.CodeInternal, "close listing failed")
		}
		if res.RowsAffected == 0 {
			// another checkout committed between the read and the update
			return appErr.New(appErr.CodeConflict, "listing is no longer available")
		}

		if err := tx.Model(&models.Item{}).
			Where("id = ?", l.ItemID).
			Update("lifecycle", models.LifecycleSold).Error; err != nil {
			return appErr.Wrap(err, appErr.CodeInternal, "mark item sold failed")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.L().Info("listing sold",
		zap.Uint("listing_id", listingID),
		zap.Uint("sale_id", sale.ID),
		zap.String("buyer_id", buyerID.String()),
	)
	return sale, nil
}
