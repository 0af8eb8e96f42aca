package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rewear-app/backend/internal/models"
	"github.com/rewear-app/backend/internal/repository"
	appErr "github.com/rewear-app/backend/pkg/errors"
)

func TestCreateItemDefaultsToActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewWardrobeService(repository.NewItemRepository(db))
	userID := seedProfile(t, db, "w1")
	catID := seedCategory(t, db)

	item, err := svc.CreateItem(context.Background(), userID, &CreateItemInput{
		Name:       "Linen shirt",
		CategoryID: catID,
		Material:   "linen",
	})
	require.NoError(t, err)
	require.Equal(t, models.LifecycleActive, item.Lifecycle)
	require.Equal(t, userID, item.UserID)
}

func TestItemsAreProfileScoped(t *testing.T) {
	db := newTestDB(t)
	svc := NewWardrobeService(repository.NewItemRepository(db))
	owner := seedProfile(t, db, "owner")
	stranger := seedProfile(t, db, "stranger")
	catID := seedCategory(t, db)

	item, err := svc.CreateItem(context.Background(), owner, &CreateItemInput{Name: "Denim jacket", CategoryID: catID})
	require.NoError(t, err)

	// a different profile cannot see, update, or delete the item
	_, err = svc.GetItem(context.Background(), item.ID, stranger)
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound))

	name := "hijacked"
	_, err = svc.UpdateItem(context.Background(), item.ID, stranger, &UpdateItemInput{Name: &name})
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound))

	err = svc.DeleteItem(context.Background(), item.ID, stranger)
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound))

	mine, err := svc.ListItems(context.Background(), owner, nil)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	theirs, err := svc.ListItems(context.Background(), stranger, nil)
	require.NoError(t, err)
	require.Len(t, theirs, 0)
}

func TestUpdateItemPartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewWardrobeService(repository.NewItemRepository(db))
	userID := seedProfile(t, db, "w2")
	catID := seedCategory(t, db)

	item, err := svc.CreateItem(context.Background(), userID, &CreateItemInput{
		Name:       "Silk scarf",
		CategoryID: catID,
		Color:      "red",
	})
	require.NoError(t, err)

	lifecycle := models.LifecycleDonated
	updated, err := svc.UpdateItem(context.Background(), item.ID, userID, &UpdateItemInput{Lifecycle: &lifecycle})
	require.NoError(t, err)
	require.Equal(t, models.LifecycleDonated, updated.Lifecycle)
	// untouched fields survive
	require.Equal(t, "Silk scarf", updated.Name)
	require.Equal(t, "red", updated.Color)
}

func TestAttachPurchaseIsOneToOne(t *testing.T) {
	db := newTestDB(t)
	svc := NewWardrobeService(repository.NewItemRepository(db))
	userID := seedProfile(t, db, "w3")
	catID := seedCategory(t, db)

	item, err := svc.CreateItem(context.Background(), userID, &CreateItemInput{Name: "Boots", CategoryID: catID})
	require.NoError(t, err)

	_, err = svc.AttachPurchase(context.Background(), item.ID, userID, &AttachPurchaseInput{
		SellerType: "SecondHand",
		PriceCents: 4500,
		Location:   "flea market",
	})
	require.NoError(t, err)

	_, err = svc.AttachPurchase(context.Background(), item.ID, userID, &AttachPurchaseInput{
		SellerType: "Retail",
		PriceCents: 9900,
	})
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeConflict))
}

func TestAttachPurchaseRejectsNonPositivePrice(t *testing.T) {
	db := newTestDB(t)
	svc := NewWardrobeService(repository.NewItemRepository(db))
	userID := seedProfile(t, db, "w4")
	catID := seedCategory(t, db)

	item, err := svc.CreateItem(context.Background(), userID, &CreateItemInput{Name: "Hat", CategoryID: catID})
	require.NoError(t, err)

	_, err = svc.AttachPurchase(context.Background(), item.ID, userID, &AttachPurchaseInput{
		SellerType: "Gift",
		PriceCents: 0,
	})
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}

func TestDeleteItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewWardrobeService(repository.NewItemRepository(db))
	userID := seedProfile(t, db, "w5")
	catID := seedCategory(t, db)

	item, err := svc.CreateItem(context.Background(), userID, &CreateItemInput{Name: "Blazer", CategoryID: catID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(context.Background(), item.ID, userID))

	_, err = svc.GetItem(context.Background(), item.ID, userID)
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound))

	err = svc.DeleteItem(context.Background(), item.ID, userID)
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestGetPurchase(t *testing.T) {
	db := newTestDB(t)
	svc := NewWardrobeService(repository.NewItemRepository(db))
	userID := seedProfile(t, db, "w6")
	stranger := seedProfile(t, db, "w7")
	catID := seedCategory(t, db)

	item, err := svc.CreateItem(context.Background(), userID, &CreateItemInput{Name: "Boots", CategoryID: catID})
	require.NoError(t, err)

	// nothing attached yet
	_, err = svc.GetPurchase(context.Background(), item.ID, userID)
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound))

	_, err = svc.AttachPurchase(context.Background(), item.ID, userID, &AttachPurchaseInput{
		SellerType: "SecondHand",
		PriceCents: 4500,
		Location:   "flea market",
	})
	require.NoError(t, err)

	p, err := svc.GetPurchase(context.Background(), item.ID, userID)
	require.NoError(t, err)
	require.Equal(t, 4500, p.PriceCents)
	require.Equal(t, "SecondHand", p.SellerType)

	// another profile cannot read it
	_, err = svc.GetPurchase(context.Background(), item.ID, stranger)
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}
