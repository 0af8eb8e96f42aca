package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rewear-app/backend/internal/models"
	"github.com/rewear-app/backend/internal/repository"
)

// recentLimit caps the orders and listings summaries.
const recentLimit = 10

// Stats is the derived, read-only summary of a profile's catalog. AvgCPW is
// the mean acquisition cost per item in major currency units (avg price_cents
// over every purchase of the profile's items, divided by 100), 0 when the
// profile has no purchase records.
type Stats struct {
	TotalItems  int64   `json:"total_items"`
	ItemsResold int64   `json:"items_resold"`
	AvgCPW      float64 `json:"avg_cpw"`
}

// OrderView is one row of the recent-orders summary (sales where the profile
// is the buyer).
type OrderView struct {
	ListingID      uint      `json:"listing_id"`
	ItemName       string    `json:"item_name"`
	SalePriceCents int       `json:"sale_price_cents"`
	SoldOn         time.Time `json:"sold_on"`
}

// ListingView is one row of the recent-listings summary (listings where the
// profile is the seller).
type ListingView struct {
	ListingID      uint   `json:"listing_id"`
	ItemName       string `json:"item_name"`
	ListPriceCents int    `json:"list_price_cents"`
	Status         string `json:"status"`
}

// StatsService computes point-in-time snapshots over the catalog and
// transaction stores. It owns no data and never caches; every call recomputes
// from the database.
type StatsService interface {
	ComputeStats(ctx context.Context, userID uuid.UUID) (*Stats, error)
	RecentOrders(ctx context.Context, userID uuid.UUID) ([]OrderView, error)
	RecentListings(ctx context.Context, userID uuid.UUID) ([]ListingView, error)
}

type statsService struct {
	itemRepo    repository.ItemRepository
	listingRepo repository.ListingRepository
	saleRepo    repository.SaleRepository
}

func NewStatsService(itemRepo repository.ItemRepository, listingRepo repository.ListingRepository, saleRepo repository.SaleRepository) StatsService {
	return &statsService{itemRepo: itemRepo, listingRepo: listingRepo, saleRepo: saleRepo}
}

var _ StatsService = (*statsService)(nil)

func (s *statsService) ComputeStats(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	var out Stats
	var err error

	if out.TotalItems, err = s.itemRepo.CountByUser(ctx, userID, nil); err != nil {
		return nil, err
	}
	if out.ItemsResold, err = s.itemRepo.CountByUser(ctx, userID, []string{models.LifecycleSold, models.LifecycleDonated}); err != nil {
		return nil, err
	}

	avgCents, err := s.itemRepo.AvgPurchaseCents(ctx, userID)
	if err != nil {
		return nil, err
	}
	out.AvgCPW = avgCents / 100

	return &out, nil
}

func (s *statsService) RecentOrders(ctx context.Context, userID uuid.UUID) ([]OrderView, error) {
	rows, err := s.saleRepo.RecentByBuyer(ctx, userID, recentLimit)
	if err != nil {
		return nil, err
	}
	out := make([]OrderView, 0, len(rows))
	for _, r := range rows {
		out = append(out, OrderView{
			ListingID:      r.ListingID,
			ItemName:       r.ItemName,
			SalePriceCents: r.SalePriceCents,
			SoldOn:         r.SoldOn,
		})
	}
	return out, nil
}

func (s *statsService) RecentListings(ctx context.Context, userID uuid.UUID) ([]ListingView, error) {
	rows, err := s.listingRepo.RecentBySeller(ctx, userID, recentLimit)
	if err != nil {
		return nil, err
	}
	out := make([]ListingView, 0, len(rows))
	for _, r := range rows {
		out = append(out, ListingView{
			ListingID:      r.ListingID,
			ItemName:       r.ItemName,
			ListPriceCents: r.ListPriceCents,
			Status:         r.Status,
		})
	}
	return out, nil
}
