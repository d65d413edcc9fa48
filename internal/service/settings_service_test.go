package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHousehold_UpdateAndGet(t *testing.T) {
	r := setupRepos(t)
	svc := NewHouseholdService(r.household)
	ctx := context.Background()

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultHousehold(), got)

	want := domain.HouseholdConfig{Adults: 2, Children: 3, Pets: 1, SupplyDurationDays: 7, UseFreezer: true}
	require.NoError(t, svc.Update(ctx, want))

	got, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHousehold_RejectsNegativeCounts(t *testing.T) {
	r := setupRepos(t)
	svc := NewHouseholdService(r.household)
	ctx := context.Background()

	err := svc.Update(ctx, domain.HouseholdConfig{Adults: -1, Pets: -2, SupplyDurationDays: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "adults")
	assert.Contains(t, err.Error(), "pets")

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultHousehold(), got)
}

func TestOptions_UpdateAndReset(t *testing.T) {
	r := setupRepos(t)
	svc := NewOptionsService(r.settings)
	ctx := context.Background()

	require.NoError(t, svc.Update(ctx, domain.CategoryCalculationOptions{
		ChildrenMultiplier:  domain.Float64Ptr(0.5),
		DailyWaterPerPerson: domain.Float64Ptr(4),
	}))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got.ChildrenMultiplier)
	assert.Equal(t, 0.5, *got.ChildrenMultiplier)
	assert.Nil(t, got.DailyCaloriesPerPerson)
	require.NotNil(t, got.DailyWaterPerPerson)
	assert.Equal(t, 4.0, *got.DailyWaterPerPerson)

	require.NoError(t, svc.Update(ctx, domain.CategoryCalculationOptions{}))
	got, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryCalculationOptions{}, got)
}

func TestOptions_RejectsNegative(t *testing.T) {
	r := setupRepos(t)
	err := NewOptionsService(r.settings).Update(context.Background(), domain.CategoryCalculationOptions{
		DailyCaloriesPerPerson: domain.Float64Ptr(-100),
	})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
