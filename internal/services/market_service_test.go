package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rewear-app/backend/internal/models"
	"github.com/rewear-app/backend/internal/repository"
	appErr "github.com/rewear-app/backend/pkg/errors"
)

func TestCreateListingRequiresOwnedItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewMarketService(db, repository.NewListingRepository(db), repository.NewItemRepository(db))
	seller := seedProfile(t, db, "seller")
	stranger := seedProfile(t, db, "stranger")
	catID := seedCategory(t, db)
	item := seedItem(t, db, seller, catID, models.LifecycleActive)

	_, err := svc.CreateListing(context.Background(), stranger, &CreateListingInput{
		ItemID:         item.ID,
		ListPriceCents: 1500,
	})
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound))

	l, err := svc.CreateListing(context.Background(), seller, &CreateListingInput{
		ItemID:         item.ID,
		Title:          "Wool coat",
		ListPriceCents: 1500,
	})
	require.NoError(t, err)
	require.Equal(t, models.ListingActive, l.Status)
	require.Equal(t, 0, l.ViewCount)

	// creating a listing does not move the item lifecycle
	var fresh models.Item
	require.NoError(t, db.First(&fresh, "id = ?", item.ID).Error)
	require.Equal(t, models.LifecycleActive, fresh.Lifecycle)
}

func TestCreateListingRejectsNonPositivePrice(t *testing.T) {
	db := newTestDB(t)
	svc := NewMarketService(db, repository.NewListingRepository(db), repository.NewItemRepository(db))
	seller := seedProfile(t, db, "seller")
	catID := seedCategory(t, db)
	item := seedItem(t, db, seller, catID, models.LifecycleActive)

	for _, cents := range []int{0, -100} {
		_, err := svc.CreateListing(context.Background(), seller, &CreateListingInput{
			ItemID:         item.ID,
			ListPriceCents: cents,
		})
		require.Error(t, err)
		require.True(t, appErr.IsCode(err, appErr.CodeInvalid))
	}
}

func TestGetListingCountsViews(t *testing.T) {
	db := newTestDB(t)
	svc := NewMarketService(db, repository.NewListingRepository(db), repository.NewItemRepository(db))
	seller := seedProfile(t, db, "seller")
	catID := seedCategory(t, db)
	item := seedItem(t, db, seller, catID, models.LifecycleActive)

	created, err := svc.CreateListing(context.Background(), seller, &CreateListingInput{ItemID: item.ID, ListPriceCents: 900})
	require.NoError(t, err)

	for want := 1; want <= 3; want++ {
		got, err := svc.GetListing(context.Background(), created.ID)
		require.NoError(t, err)
		require.Equal(t, want, got.ViewCount)
	}
}

func TestCheckoutClosesListingAndItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewMarketService(db, repository.NewListingRepository(db), repository.NewItemRepository(db))
	seller := seedProfile(t, db, "seller")
	buyer := seedProfile(t, db, "buyer")
	catID := seedCategory(t, db)
	item := seedItem(t, db, seller, catID, models.LifecycleActive)

	listing, err := svc.CreateListing(context.Background(), seller, &CreateListingInput{ItemID: item.ID, ListPriceCents: 2500})
	require.NoError(t, err)

	sale, err := svc.Checkout(context.Background(), listing.ID, buyer)
	require.NoError(t, err)
	require.Equal(t, 2500, sale.SalePriceCents)
	require.Equal(t, buyer, sale.BuyerID)

	var closed models.Listing
	require.NoError(t, db.First(&closed, "id = ?", listing.ID).Error)
	require.Equal(t, models.ListingSold, closed.Status)
	require.NotNil(t, closed.BuyerID)
	require.Equal(t, buyer, *closed.BuyerID)

	var soldItem models.Item
	require.NoError(t, db.First(&soldItem, "id = ?", item.ID).Error)
	require.Equal(t, models.LifecycleSold, soldItem.Lifecycle)
}

func TestCheckoutRejectsOwnListingAndDoubleSale(t *testing.T) {
	db := newTestDB(t)
	svc := NewMarketService(db, repository.NewListingRepository(db), repository.NewItemRepository(db))
	seller := seedProfile(t, db, "seller")
	buyer := seedProfile(t, db, "buyer")
	other := seedProfile(t, db, "other")
	catID := seedCategory(t, db)
	item := seedItem(t, db, seller, catID, models.LifecycleActive)

	listing, err := svc.CreateListing(context.Background(), seller, &CreateListingInput{ItemID: item.ID, ListPriceCents: 2500})
	require.NoError(t, err)

	_, err = svc.Checkout(context.Background(), listing.ID, seller)
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	_, err = svc.Checkout(context.Background(), listing.ID, buyer)
	require.NoError(t, err)

	_, err = svc.Checkout(context.Background(), listing.ID, other)
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeConflict))

	var saleCount int64
	require.NoError(t, db.Model(&models.Sale{}).Where("listing_id = ?", listing.ID).Count(&saleCount).Error)
	require.EqualValues(t, 1, saleCount)
}

func TestBrowseListingsOnlyOpen(t *testing.T) {
	db := newTestDB(t)
	svc := NewMarketService(db, repository.NewListingRepository(db), repository.NewItemRepository(db))
	seller := seedProfile(t, db, "seller")
	buyer := seedProfile(t, db, "buyer")
	catID := seedCategory(t, db)

	a := seedItem(t, db, seller, catID, models.LifecycleActive)
	b := seedItem(t, db, seller, catID, models.LifecycleActive)

	la, err := svc.CreateListing(context.Background(), seller, &CreateListingInput{ItemID: a.ID, ListPriceCents: 100})
	require.NoError(t, err)
	lb, err := svc.CreateListing(context.Background(), seller, &CreateListingInput{ItemID: b.ID, ListPriceCents: 200})
	require.NoError(t, err)

	_, err = svc.Checkout(context.Background(), la.ID, buyer)
	require.NoError(t, err)

	open, err := svc.BrowseListings(context.Background())
	require.NoError(t, err)
	require.Len(t, open, 1)
	require.Equal(t, lb.ID, open[0].ID)
}
