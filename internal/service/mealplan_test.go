package service

import (
	"context"
	"testing"
	"time"

	"github.com/planwise/assistant/internal/model"
	"github.com/planwise/assistant/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestPlans_RangeFilterAndResolution(t *testing.T) {
	repo := repository.NewMemoryMealPlanRepository()
	s := NewMealPlanService(repo, repo)
	ctx := context.Background()

	repo.AddMeal(&model.Meal{ID: 1, UserID: 1, Name: "Oatmeal", MealType: model.MealTypeBreakfast})
	repo.AddMeal(&model.Meal{ID: 2, UserID: 1, Name: "Salad", MealType: model.MealTypeLunch})
	repo.AddMeal(&model.Meal{ID: 3, UserID: 1, Name: "Crackers", MealType: model.MealTypeSnack})

	day := time.Date(2023, 10, 7, 0, 0, 0, 0, time.UTC)
	snacks := "3"
	repo.AddPlan(&model.MealPlan{
		ID: 1, UserID: 1, Date: day, MealType: model.MealTypeBreakfast,
		Breakfast: int64Ptr(1), Lunch: int64Ptr(2), Snacks: &snacks,
	})
	// Outside the queried range
	repo.AddPlan(&model.MealPlan{ID: 2, UserID: 1, Date: day.AddDate(0, 1, 0), MealType: model.MealTypeDinner})
	// Another user's plan
	repo.AddPlan(&model.MealPlan{ID: 3, UserID: 2, Date: day, MealType: model.MealTypeDinner})

	plans, err := s.Plans(ctx, 1, day.AddDate(0, 0, -1), day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, plans, 1)

	plan := plans[0]
	require.NotNil(t, plan.Breakfast)
	assert.Equal(t, "Oatmeal", plan.Breakfast.Name)
	require.NotNil(t, plan.Lunch)
	assert.Equal(t, "Salad", plan.Lunch.Name)
	assert.Nil(t, plan.Dinner)
	require.Len(t, plan.Snacks, 1)
	assert.Equal(t, "Crackers", plan.Snacks[0].Name)
}

func TestPlans_DanglingMealReference(t *testing.T) {
	repo := repository.NewMemoryMealPlanRepository()
	s := NewMealPlanService(repo, repo)

	day := time.Date(2023, 10, 7, 0, 0, 0, 0, time.UTC)
	repo.AddPlan(&model.MealPlan{
		ID: 1, UserID: 1, Date: day, MealType: model.MealTypeDinner,
		Dinner: int64Ptr(999),
	})

	plans, err := s.Plans(context.Background(), 1, day, day)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Nil(t, plans[0].Dinner)
}

func TestPlans_EmptyRange(t *testing.T) {
	repo := repository.NewMemoryMealPlanRepository()
	s := NewMealPlanService(repo, repo)

	plans, err := s.Plans(context.Background(), 1, time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, plans)
}
