package domain

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrFoodNameEmpty     = errors.New("food name cannot be empty")
	ErrFoodInvalidUserID = errors.New("invalid user id")
	ErrNegativeNutrient  = errors.New("nutrient values cannot be negative")
	ErrNutrientTooLarge  = errors.New("nutrient values exceed the allowed maximum")
)

// Upper bounds for a single logged item.
const (
	MaxNutrientGrams = 10000
	MaxFoodCalories  = 100000
)

// Atwater factors, kcal per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

type ConsumedFood struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Day               string    `json:"day"`
	Name              string    `json:"name"`
	Calories          *float64  `json:"calories,omitempty"`
	ProteinG          float64   `json:"protein_g"`
	CarbsG            float64   `json:"carbs_g"`
	FatG              float64   `json:"fat_g"`
	DerivedCalories   int       `json:"derived_calories"`
	EffectiveCalories float64   `json:"effective_calories"`
	Barcode           string    `json:"barcode,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// DeriveCalories converts macronutrient grams to kcal, rounded to the nearest integer.
// Sums outside [0, MaxInt32] saturate; NaN yields 0.
func DeriveCalories(proteinG, carbsG, fatG float64) int {
	sum := math.Round(proteinG*kcalPerGramProtein + carbsG*kcalPerGramCarbs + fatG*kcalPerGramFat)
	switch {
	case math.IsNaN(sum), sum <= 0:
		return 0
	case sum >= math.MaxInt32:
		return math.MaxInt32
	}
	return int(sum)
}

// EffectiveCalories is the figure counted toward totals: the entered value when it is
// a positive finite number, else the derived value, else 0.
func EffectiveCalories(entered *float64, derived int) float64 {
	if entered != nil && isPositiveFinite(*entered) {
		return *entered
	}
	if derived > 0 {
		return float64(derived)
	}
	return 0
}

func isPositiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func validNutrient(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func NewConsumedFood(userID, day, name string, calories *float64, protein, carbs, fat float64, barcode string) (*ConsumedFood, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrFoodInvalidUserID
	}
	if err := ValidateDayKey(day); err != nil {
		return nil, err
	}
	cleanName := strings.TrimSpace(name)
	if cleanName == "" {
		return nil, ErrFoodNameEmpty
	}
	if !validNutrient(protein) || !validNutrient(carbs) || !validNutrient(fat) {
		return nil, ErrNegativeNutrient
	}
	if calories != nil && !validNutrient(*calories) {
		return nil, ErrNegativeNutrient
	}
	if protein > MaxNutrientGrams || carbs > MaxNutrientGrams || fat > MaxNutrientGrams {
		return nil, ErrNutrientTooLarge
	}
	if calories != nil && *calories > MaxFoodCalories {
		return nil, ErrNutrientTooLarge
	}

	derived := DeriveCalories(protein, carbs, fat)
	return &ConsumedFood{
		ID:                uuid.NewString(),
		UserID:            userID,
		Day:               day,
		Name:              cleanName,
		Calories:          calories,
		ProteinG:          protein,
		CarbsG:            carbs,
		FatG:              fat,
		DerivedCalories:   derived,
		EffectiveCalories: EffectiveCalories(calories, derived),
		Barcode:           strings.TrimSpace(barcode),
		CreatedAt:         time.Now().UTC(),
	}, nil
}
