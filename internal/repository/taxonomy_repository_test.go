package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rewear-app/backend/internal/models"
	appErr "github.com/rewear-app/backend/pkg/errors"
)

func TestTaxonomyDuplicateNameIsConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaxonomyRepository(db)

	cases := []struct {
		name   string
		create func(string) error
	}{
		{"category", func(n string) error {
			return repo.CreateCategory(context.Background(), &models.Category{Name: n})
		}},
		{"brand", func(n string) error {
			return repo.CreateBrand(context.Background(), &models.Brand{Name: n})
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.create("Outerwear"))
			err := tc.create("Outerwear")
			require.Error(t, err)
			require.True(t, appErr.IsCode(err, appErr.CodeConflict))
		})
	}
}

func TestTaxonomyListsSortedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaxonomyRepository(db)

	for _, n := range []string{"Shoes", "Accessories", "Knitwear"} {
		require.NoError(t, repo.CreateCategory(context.Background(), &models.Category{Name: n}))
	}

	cats, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 3)
	require.Equal(t, "Accessories", cats[0].Name)
	require.Equal(t, "Knitwear", cats[1].Name)
	require.Equal(t, "Shoes", cats[2].Name)
}
