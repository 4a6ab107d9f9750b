package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/planwise/assistant/internal/model"
)

var ErrMealNotFound = errors.New("meal not found")

type MealPlanRepository interface {
	ByUserAndRange(ctx context.Context, userID int64, start, end time.Time) ([]*model.MealPlan, error)
}

type MealRepository interface {
	ByID(ctx context.Context, id int64) (*model.Meal, error)
	ByUser(ctx context.Context, userID int64) ([]*model.Meal, error)
}

type mealPlanRepository struct {
	db *sqlx.DB
}

func NewMealPlanRepository(db *sqlx.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) ByUserAndRange(ctx context.Context, userID int64, start, end time.Time) ([]*model.MealPlan, error) {
	plans := []*model.MealPlan{}
	query := `SELECT * FROM mealplans WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date`

	err := r.db.SelectContext(ctx, &plans, query, userID, start, end)
	return plans, err
}

type mealRepository struct {
	db *sqlx.DB
}

func NewMealRepository(db *sqlx.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) ByID(ctx context.Context, id int64) (*model.Meal, error) {
	meal := &model.Meal{}
	query := `SELECT * FROM meals WHERE id = $1`

	err := r.db.GetContext(ctx, meal, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrMealNotFound
	}

	return meal, err
}

func (r *mealRepository) ByUser(ctx context.Context, userID int64) ([]*model.Meal, error) {
	meals := []*model.Meal{}
	query := `SELECT * FROM meals WHERE user_id = $1 ORDER BY id`

	err := r.db.SelectContext(ctx, &meals, query, userID)
	return meals, err
}
