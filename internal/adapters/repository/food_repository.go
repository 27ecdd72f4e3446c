package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
)

var _ domain.FoodRepository = (*DocumentFoodRepository)(nil)

type foodDocument struct {
	UserID            string   `json:"user_id"`
	Name              string   `json:"name"`
	Calories          *float64 `json:"calories"`
	ProteinG          float64  `json:"protein_g"`
	CarbsG            float64  `json:"carbs_g"`
	FatG              float64  `json:"fat_g"`
	DerivedCalories   int      `json:"derived_calories"`
	EffectiveCalories float64  `json:"effective_calories"`
	Barcode           string   `json:"barcode,omitempty"`
}

// DocumentFoodRepository stores consumed foods in one collection per user and day.
type DocumentFoodRepository struct {
	store domain.DocumentStore
}

func NewDocumentFoodRepository(store domain.DocumentStore) *DocumentFoodRepository {
	return &DocumentFoodRepository{store: store}
}

func (r *DocumentFoodRepository) Create(ctx context.Context, f *domain.ConsumedFood) error {
	data, err := json.Marshal(foodDocument{
		UserID:            f.UserID,
		Name:              f.Name,
		Calories:          f.Calories,
		ProteinG:          f.ProteinG,
		CarbsG:            f.CarbsG,
		FatG:              f.FatG,
		DerivedCalories:   f.DerivedCalories,
		EffectiveCalories: f.EffectiveCalories,
		Barcode:           f.Barcode,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal food: %w", err)
	}

	doc := &domain.Document{ID: f.ID, Data: data, CreatedAt: f.CreatedAt, UpdatedAt: f.CreatedAt}
	if err := r.store.Put(ctx, domain.ConsumedFoodsPath(f.UserID, f.Day), doc); err != nil {
		return fmt.Errorf("failed to insert food: %w", err)
	}
	return nil
}

// ListByDay recomputes derived and effective calories from the stored nutrients.
func (r *DocumentFoodRepository) ListByDay(ctx context.Context, userID, day string) ([]*domain.ConsumedFood, error) {
	docs, err := r.store.QueryAll(ctx, domain.ConsumedFoodsPath(userID, day))
	if err != nil {
		return nil, err
	}

	foods := make([]*domain.ConsumedFood, 0, len(docs))
	for _, doc := range docs {
		var fd foodDocument
		if err := json.Unmarshal(doc.Data, &fd); err != nil {
			return nil, fmt.Errorf("failed to unmarshal food %s: %w", doc.ID, err)
		}
		derived := domain.DeriveCalories(fd.ProteinG, fd.CarbsG, fd.FatG)
		foods = append(foods, &domain.ConsumedFood{
			ID:                doc.ID,
			UserID:            userID,
			Day:               day,
			Name:              fd.Name,
			Calories:          fd.Calories,
			ProteinG:          fd.ProteinG,
			CarbsG:            fd.CarbsG,
			FatG:              fd.FatG,
			DerivedCalories:   derived,
			EffectiveCalories: domain.EffectiveCalories(fd.Calories, derived),
			Barcode:           fd.Barcode,
			CreatedAt:         doc.CreatedAt,
		})
	}
	return foods, nil
}
