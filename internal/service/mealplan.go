package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/planwise/assistant/internal/model"
	"github.com/planwise/assistant/internal/repository"
)

// MealPlanEntry is a meal plan with its referenced meals resolved.
type MealPlanEntry struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"user_id"`
	Date      time.Time     `json:"date"`
	MealType  string        `json:"meal_type"`
	Breakfast *model.Meal   `json:"breakfast,omitempty"`
	Lunch     *model.Meal   `json:"lunch,omitempty"`
	Dinner    *model.Meal   `json:"dinner,omitempty"`
	Snacks    []*model.Meal `json:"snacks,omitempty"`
}

type MealPlanService struct {
	mealPlanRepository repository.MealPlanRepository
	mealRepository     repository.MealRepository
}

func NewMealPlanService(mealPlanRepository repository.MealPlanRepository, mealRepository repository.MealRepository) *MealPlanService {
	return &MealPlanService{
		mealPlanRepository: mealPlanRepository,
		mealRepository:     mealRepository,
	}
}

// Plans returns the user's meal plans between start and end (inclusive) with
// meal references resolved. Dangling meal ids are skipped, not errors; the
// schema does not enforce referential integrity for them.
func (s *MealPlanService) Plans(ctx context.Context, userID int64, start, end time.Time) ([]*MealPlanEntry, error) {
	plans, err := s.mealPlanRepository.ByUserAndRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get meal plans: %w", err)
	}

	entries := make([]*MealPlanEntry, 0, len(plans))
	for _, plan := range plans {
		entry := &MealPlanEntry{
			ID:       plan.ID,
			UserID:   plan.UserID,
			Date:     plan.Date,
			MealType: plan.MealType,
		}

		entry.Breakfast, err = s.resolve(ctx, plan.Breakfast)
		if err != nil {
			return nil, err
		}
		entry.Lunch, err = s.resolve(ctx, plan.Lunch)
		if err != nil {
			return nil, err
		}
		entry.Dinner, err = s.resolve(ctx, plan.Dinner)
		if err != nil {
			return nil, err
		}

		entry.Snacks, err = s.resolveSnacks(ctx, plan.Snacks)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *MealPlanService) resolve(ctx context.Context, id *int64) (*model.Meal, error) {
	if id == nil {
		return nil, nil
	}

	meal, err := s.mealRepository.ByID(ctx, *id)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}
	return meal, nil
}

func (s *MealPlanService) resolveSnacks(ctx context.Context, snacks *string) ([]*model.Meal, error) {
	if snacks == nil || *snacks == "" {
		return nil, nil
	}

	var meals []*model.Meal
	for _, raw := range strings.Split(*snacks, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			continue
		}
		meal, err := s.resolve(ctx, &id)
		if err != nil {
			return nil, err
		}
		if meal != nil {
			meals = append(meals, meal)
		}
	}
	return meals, nil
}
