package model

import "time"

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

type Meal struct {
	ID          int64   `db:"id" json:"id"`
	UserID      int64   `db:"user_id" json:"user_id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
	MealType    string  `db:"meal_type" json:"meal_type"`
}

// MealPlan is one date-stamped plan slot. The breakfast/lunch/dinner columns
// hold meal ids; snacks is a comma-joined id list.
type MealPlan struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Date      time.Time `db:"date" json:"date"`
	MealType  string    `db:"meal_type" json:"meal_type"`
	Breakfast *int64    `db:"breakfast" json:"-"`
	Lunch     *int64    `db:"lunch" json:"-"`
	Dinner    *int64    `db:"dinner" json:"-"`
	Snacks    *string   `db:"snacks" json:"-"`
}
