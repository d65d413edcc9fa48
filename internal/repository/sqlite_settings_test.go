package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_DisableEnable(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)
	ctx := context.Background()

	ids, err := repo.ListDisabled(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, repo.Disable(ctx, "long-life-milk"))
	require.NoError(t, repo.Disable(ctx, "candles"))
	require.NoError(t, repo.Disable(ctx, "candles"))

	ids, err = repo.ListDisabled(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"candles", "long-life-milk"}, ids)

	require.NoError(t, repo.Enable(ctx, "candles"))
	require.NoError(t, repo.Enable(ctx, "never-disabled"))

	ids, err = repo.ListDisabled(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"long-life-milk"}, ids)
}

func TestSettingsRepo_Options_DefaultAbsent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)

	opts, err := repo.GetOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryCalculationOptions{}, opts)
}

func TestSettingsRepo_Options_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)
	ctx := context.Background()

	want := domain.CategoryCalculationOptions{
		ChildrenMultiplier:  domain.Float64Ptr(0.5),
		DailyWaterPerPerson: domain.Float64Ptr(4),
	}
	require.NoError(t, repo.SaveOptions(ctx, want))

	got, err := repo.GetOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Nil(t, got.DailyCaloriesPerPerson)

	require.NoError(t, repo.SaveOptions(ctx, domain.CategoryCalculationOptions{}))
	got, err = repo.GetOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryCalculationOptions{}, got)
}
