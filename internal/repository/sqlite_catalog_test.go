package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepo_ReplaceAllKeepsOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCatalogRepo(db)
	ctx := context.Background()

	kit := []domain.RecommendedItem{
		testutil.NewTestRecommendation("bottled-water", domain.CategoryWater, 3, domain.UnitLiters,
			testutil.ScalesWithPeople(), testutil.ScalesWithDays(), testutil.WithEntryName("Drinking water")),
		testutil.NewTestRecommendation("pasta", domain.CategoryFood, 0.5, domain.UnitKilograms,
			testutil.WithEntryCalories(3500), testutil.WithEntryWater(1.25)),
		testutil.NewTestRecommendation("ice-packs", domain.CategoryMedical, 2, domain.UnitPieces,
			testutil.NeedsFreezer(), testutil.ScalesWithPets()),
	}
	require.NoError(t, repo.ReplaceAll(ctx, kit))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, kit, got)
}

func TestCatalogRepo_ReplaceAllDropsPrevious(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCatalogRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []domain.RecommendedItem{
		testutil.NewTestRecommendation("old", domain.CategoryTools, 1, domain.UnitPieces),
	}))
	require.NoError(t, repo.ReplaceAll(ctx, []domain.RecommendedItem{
		testutil.NewTestRecommendation("new", domain.CategoryTools, 1, domain.UnitPieces),
	}))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)

	_, err = repo.GetByID(ctx, "old")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogRepo_ReplaceAllRejectsDuplicateIDs(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCatalogRepo(db)

	err := repo.ReplaceAll(context.Background(), []domain.RecommendedItem{
		testutil.NewTestRecommendation("dup", domain.CategoryTools, 1, domain.UnitPieces),
		testutil.NewTestRecommendation("dup", domain.CategoryTools, 2, domain.UnitPieces),
	})
	assert.Error(t, err)
}

func TestCatalogRepo_GetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCatalogRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []domain.RecommendedItem{
		testutil.NewTestRecommendation("radio", domain.CategoryCommunication, 1, domain.UnitPieces),
	}))

	got, err := repo.GetByID(ctx, "radio")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryCommunication, got.CategoryID)
	assert.Nil(t, got.CaloriesPerUnit)
}
