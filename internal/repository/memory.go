package repository

import (
	"context"
	"sync"
	"time"

	"github.com/planwise/assistant/internal/model"
)

// In-memory implementations of the repository interfaces. Used by tests and
// by deployments that don't need durable storage.

type MemoryUserRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]*model.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{nextID: 1, users: make(map[int64]*model.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return ErrDuplicateUsername
		}
		if user.Email != nil && u.Email != nil && *u.Email == *user.Email {
			return ErrDuplicateEmail
		}
	}

	user.ID = r.nextID
	r.nextID++

	clone := *user
	r.users[user.ID] = &clone
	return nil
}

// SetActive flips a user's active flag. Test helper; the production
// repository interface has no update operation.
func (r *MemoryUserRepository) SetActive(id int64, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if ok {
		user.IsActive = active
	}
}

func (r *MemoryUserRepository) ByID(_ context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *MemoryUserRepository) ByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *MemoryUserRepository) ByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email != nil && *user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *MemoryUserRepository) List(_ context.Context, skip, limit int) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := []*model.User{}
	// Map iteration order is random; walk ids in insertion order instead.
	for id := int64(1); id < r.nextID; id++ {
		user, ok := r.users[id]
		if !ok {
			continue
		}
		clone := *user
		users = append(users, &clone)
	}

	if skip >= len(users) {
		return []*model.User{}, nil
	}
	users = users[skip:]
	if limit < len(users) {
		users = users[:limit]
	}
	return users, nil
}

type MemorySettingsRepository struct {
	mu       sync.RWMutex
	settings map[int64]*model.Settings
}

func NewMemorySettingsRepository() *MemorySettingsRepository {
	return &MemorySettingsRepository{settings: make(map[int64]*model.Settings)}
}

func (r *MemorySettingsRepository) Create(_ context.Context, settings *model.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *settings
	r.settings[settings.UserID] = &clone
	return nil
}

func (r *MemorySettingsRepository) ByUserID(_ context.Context, userID int64) (*model.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings, ok := r.settings[userID]
	if !ok {
		return nil, ErrSettingsNotFound
	}
	clone := *settings
	return &clone, nil
}

func (r *MemorySettingsRepository) Update(_ context.Context, settings *model.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.settings[settings.UserID]
	if !ok {
		return ErrSettingsNotFound
	}
	clone := *settings
	r.settings[settings.UserID] = &clone
	return nil
}

type MemoryMealPlanRepository struct {
	mu    sync.RWMutex
	plans []*model.MealPlan
	meals map[int64]*model.Meal
}

func NewMemoryMealPlanRepository() *MemoryMealPlanRepository {
	return &MemoryMealPlanRepository{meals: make(map[int64]*model.Meal)}
}

// AddPlan seeds a meal plan row. Test helper; ids must be unique per repo.
func (r *MemoryMealPlanRepository) AddPlan(plan *model.MealPlan) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *plan
	r.plans = append(r.plans, &clone)
}

// AddMeal seeds a meal row.
func (r *MemoryMealPlanRepository) AddMeal(meal *model.Meal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *meal
	r.meals[meal.ID] = &clone
}

func (r *MemoryMealPlanRepository) ByUserAndRange(_ context.Context, userID int64, start, end time.Time) ([]*model.MealPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plans := []*model.MealPlan{}
	for _, plan := range r.plans {
		if plan.UserID != userID {
			continue
		}
		if plan.Date.Before(start) || plan.Date.After(end) {
			continue
		}
		clone := *plan
		plans = append(plans, &clone)
	}
	return plans, nil
}

func (r *MemoryMealPlanRepository) ByID(_ context.Context, id int64) (*model.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meal, ok := r.meals[id]
	if !ok {
		return nil, ErrMealNotFound
	}
	clone := *meal
	return &clone, nil
}

func (r *MemoryMealPlanRepository) ByUser(_ context.Context, userID int64) ([]*model.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meals := []*model.Meal{}
	for id := range r.meals {
		if r.meals[id].UserID == userID {
			clone := *r.meals[id]
			meals = append(meals, &clone)
		}
	}
	return meals, nil
}
