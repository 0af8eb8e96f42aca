package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rewear-app/backend/internal/models"
	appErr "github.com/rewear-app/backend/pkg/errors"
)

func TestProfileGetOrCreateIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	u := seedUser(t, db, "gc1")

	first, err := repo.GetOrCreate(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, u.ID, first.UserID)

	// mutate and re-fetch; the second call must return the existing row
	first.City = "Lisbon"
	require.NoError(t, repo.Update(context.Background(), first))

	second, err := repo.GetOrCreate(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, "Lisbon", second.City)

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Where("user_id = ?", u.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestProfileGetOrCreateConcurrent(t *testing.T) {
	db := newTestDB(t)
	// single connection keeps sqlite from returning busy errors under
	// concurrent writers; the conflict clause is still what dedupes rows
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	repo := NewProfileRepository(db)
	u := seedUser(t, db, "gc2")

	const callers = 8
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		go func() {
			_, err := repo.GetOrCreate(context.Background(), u.ID)
			errs <- err
		}()
	}
	for i := 0; i < callers; i++ {
		require.NoError(t, <-errs)
	}

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Where("user_id = ?", u.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestProfileKeyedByAccountID(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "fk1")

	// the profile row is keyed by the account uuid even with the full
	// catalog schema migrated alongside it
	require.NoError(t, db.Create(&models.Profile{UserID: u.ID, City: "Braga"}).Error)

	var p models.Profile
	require.NoError(t, db.First(&p, "user_id = ?", u.ID).Error)
	require.Equal(t, u.ID, p.UserID)

	cat := models.Category{Name: "Knitwear"}
	require.NoError(t, db.Create(&cat).Error)
	item := models.Item{UserID: u.ID, CategoryID: cat.ID, Name: "Cardigan", Lifecycle: models.LifecycleActive}
	require.NoError(t, db.Create(&item).Error)

	var owned []models.Item
	require.NoError(t, db.Where("user_id = ?", u.ID).Find(&owned).Error)
	require.Len(t, owned, 1)
	require.Equal(t, u.ID, owned[0].UserID)
}

func TestProfileGetByUserIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	u := seedUser(t, db, "gc3")

	var p models.Profile
	err := repo.GetByUserID(context.Background(), u.ID, &p)
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}
