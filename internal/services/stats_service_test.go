package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rewear-app/backend/internal/models"
	"github.com/rewear-app/backend/internal/repository"
)

func newStatsService(db *gorm.DB) StatsService {
	return NewStatsService(
		repository.NewItemRepository(db),
		repository.NewListingRepository(db),
		repository.NewSaleRepository(db),
	)
}

// seedProfile inserts a user+profile pair directly and returns the user id.
func seedProfile(t *testing.T, db *gorm.DB, tag string) uuid.UUID {
	t.Helper()
	u := models.User{Email: tag + "@example.com", Username: tag, PasswordHash: "x"}
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Create(&models.Profile{UserID: u.ID}).Error)
	return u.ID
}

func seedCategory(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	c := models.Category{Name: "Outerwear-" + uuid.NewString()[:8]}
	require.NoError(t, db.Create(&c).Error)
	return c.ID
}

func seedItem(t *testing.T, db *gorm.DB, userID uuid.UUID, categoryID uint, lifecycle string) *models.Item {
	t.Helper()
	item := models.Item{UserID: userID, CategoryID: categoryID, Name: "coat", Lifecycle: lifecycle}
	require.NoError(t, db.Create(&item).Error)
	return &item
}

func TestComputeStatsCounts(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)
	userID := seedProfile(t, db, "stats1")
	catID := seedCategory(t, db)

	for _, lc := range []string{
		models.LifecycleActive,
		models.LifecycleSold,
		models.LifecycleDonated,
		models.LifecycleListed,
	} {
		seedItem(t, db, userID, catID, lc)
	}

	stats, err := svc.ComputeStats(context.Background(), userID)
	require.NoError(t, err)
	require.EqualValues(t, 4, stats.TotalItems)
	require.EqualValues(t, 2, stats.ItemsResold)
}

func TestComputeStatsAverageCost(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)
	userID := seedProfile(t, db, "stats2")
	catID := seedCategory(t, db)

	for _, cents := range []int{1000, 2000, 3000} {
		item := seedItem(t, db, userID, catID, models.LifecycleActive)
		require.NoError(t, db.Create(&models.Purchase{
			ItemID:     item.ID,
			SellerType: "Retail",
			PriceCents: cents,
		}).Error)
	}

	stats, err := svc.ComputeStats(context.Background(), userID)
	require.NoError(t, err)
	require.InDelta(t, 20.00, stats.AvgCPW, 1e-9)
}

func TestComputeStatsNoPurchasesIsZero(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)
	userID := seedProfile(t, db, "stats3")
	catID := seedCategory(t, db)
	seedItem(t, db, userID, catID, models.LifecycleActive)

	stats, err := svc.ComputeStats(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, 0.0, stats.AvgCPW)
}

func TestComputeStatsOnlyOwnItems(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)
	mine := seedProfile(t, db, "mine")
	other := seedProfile(t, db, "other")
	catID := seedCategory(t, db)

	seedItem(t, db, mine, catID, models.LifecycleSold)
	item := seedItem(t, db, other, catID, models.LifecycleSold)
	require.NoError(t, db.Create(&models.Purchase{ItemID: item.ID, SellerType: "Gift", PriceCents: 9900}).Error)

	stats, err := svc.ComputeStats(context.Background(), mine)
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.TotalItems)
	require.Equal(t, 0.0, stats.AvgCPW)
}

func TestRecentOrdersOrderedAndCapped(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)
	seller := seedProfile(t, db, "seller")
	buyer := seedProfile(t, db, "buyer")
	catID := seedCategory(t, db)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		item := models.Item{UserID: seller, CategoryID: catID, Name: fmt.Sprintf("item-%d", i)}
		require.NoError(t, db.Create(&item).Error)
		listing := models.Listing{ItemID: item.ID, SellerID: seller, ListPriceCents: 500, Status: models.ListingSold}
		require.NoError(t, db.Create(&listing).Error)
		require.NoError(t, db.Create(&models.Sale{
			ListingID:      listing.ID,
			BuyerID:        buyer,
			SoldOn:         base.AddDate(0, 0, i),
			SalePriceCents: 500,
		}).Error)
	}

	orders, err := svc.RecentOrders(context.Background(), buyer)
	require.NoError(t, err)
	require.Len(t, orders, 10)
	// newest first
	require.Equal(t, "item-11", orders[0].ItemName)
	for i := 1; i < len(orders); i++ {
		require.False(t, orders[i].SoldOn.After(orders[i-1].SoldOn))
	}
}

func TestRecentListingsOrderedAndCapped(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)
	seller := seedProfile(t, db, "seller2")
	catID := seedCategory(t, db)

	var lastID uint
	for i := 0; i < 12; i++ {
		item := models.Item{UserID: seller, CategoryID: catID, Name: fmt.Sprintf("item-%d", i)}
		require.NoError(t, db.Create(&item).Error)
		listing := models.Listing{ItemID: item.ID, SellerID: seller, ListPriceCents: 700, Status: models.ListingActive}
		require.NoError(t, db.Create(&listing).Error)
		lastID = listing.ID
	}

	listings, err := svc.RecentListings(context.Background(), seller)
	require.NoError(t, err)
	require.Len(t, listings, 10)
	require.Equal(t, lastID, listings[0].ListingID)
	for i := 1; i < len(listings); i++ {
		require.Less(t, listings[i].ListingID, listings[i-1].ListingID)
	}
}
