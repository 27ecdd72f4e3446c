package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
)

type FoodService struct {
	repo  domain.FoodRepository
	loc   *time.Location
	clock func() time.Time
}

func NewFoodService(repo domain.FoodRepository, loc *time.Location) *FoodService {
	if loc == nil {
		loc = time.UTC
	}
	return &FoodService{
		repo:  repo,
		loc:   loc,
		clock: time.Now,
	}
}

type LogFoodInput struct {
	UserID string
	// Day is the bucket key. Empty means today in the reporting timezone.
	Day      string
	Name     string
	Calories *float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
	Barcode  string
}

func (s *FoodService) Log(ctx context.Context, input LogFoodInput) (*domain.ConsumedFood, error) {
	day := input.Day
	if day == "" {
		day = domain.DayKeyAt(s.clock(), s.loc)
	}

	food, err := domain.NewConsumedFood(
		input.UserID,
		day,
		input.Name,
		input.Calories,
		input.ProteinG,
		input.CarbsG,
		input.FatG,
		input.Barcode,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, food); err != nil {
		return nil, err
	}

	return food, nil
}

func (s *FoodService) ListByDay(ctx context.Context, userID, day string) ([]*domain.ConsumedFood, error) {
	if day == "" {
		day = domain.DayKeyAt(s.clock(), s.loc)
	}
	if err := domain.ValidateDayKey(day); err != nil {
		return nil, err
	}
	return s.repo.ListByDay(ctx, userID, day)
}
