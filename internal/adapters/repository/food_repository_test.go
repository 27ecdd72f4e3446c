package repository

import (
	"context"
	"testing"

	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentFoodRepository(t *testing.T) {
	for _, backend := range []string{"memory", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			store := storeBackends()[backend](t)
			repo := NewDocumentFoodRepository(store)
			ctx := context.Background()

			explicit := 200.0
			withCalories, err := domain.NewConsumedFood("user-1", "2026-03-10", "Protein bar", &explicit, 20, 25, 8, "5601234567890")
			require.NoError(t, err)
			macrosOnly, err := domain.NewConsumedFood("user-1", "2026-03-10", "Rice bowl", nil, 10, 20, 5, "")
			require.NoError(t, err)
			otherDay, err := domain.NewConsumedFood("user-1", "2026-03-11", "Apple", nil, 0, 25, 0, "")
			require.NoError(t, err)

			for _, f := range []*domain.ConsumedFood{withCalories, macrosOnly, otherDay} {
				require.NoError(t, repo.Create(ctx, f))
			}

			foods, err := repo.ListByDay(ctx, "user-1", "2026-03-10")
			require.NoError(t, err)
			require.Len(t, foods, 2)

			assert.Equal(t, "Protein bar", foods[0].Name)
			assert.Equal(t, 200.0, foods[0].EffectiveCalories)
			assert.Equal(t, "5601234567890", foods[0].Barcode)
			require.NotNil(t, foods[0].Calories)

			assert.Equal(t, "Rice bowl", foods[1].Name)
			assert.Nil(t, foods[1].Calories)
			assert.Equal(t, 165, foods[1].DerivedCalories)
			assert.Equal(t, 165.0, foods[1].EffectiveCalories)

			empty, err := repo.ListByDay(ctx, "user-2", "2026-03-10")
			require.NoError(t, err)
			assert.Empty(t, empty)
		})
	}
}

func TestDocumentFoodRepository_LegacyDocumentWithoutDerivedFields(t *testing.T) {
	store := NewInMemoryDocumentStore()
	ctx := context.Background()
	path := domain.ConsumedFoodsPath("user-1", "2026-03-10")

	require.NoError(t, store.Put(ctx, path, &domain.Document{
		ID:   "legacy",
		Data: []byte(`{"name":"Toast","calories":0,"protein_g":3,"carbs_g":15}`),
	}))

	foods, err := NewDocumentFoodRepository(store).ListByDay(ctx, "user-1", "2026-03-10")

	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, 72, foods[0].DerivedCalories)
	assert.Equal(t, 72.0, foods[0].EffectiveCalories)
}
