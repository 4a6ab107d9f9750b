package repository

import (
	"context"
	"testing"
	"time"

	"github.com/planwise/assistant/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(username string, email *string) *model.User {
	return &model.User{
		Username:       username,
		Email:          email,
		HashedPassword: "x",
		IsActive:       true,
		CreatedAt:      time.Now(),
	}
}

func emailPtr(s string) *string { return &s }

func TestMemoryUserRepository_CreateAndLookups(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user := testUser("rick", emailPtr("rick@example.com"))
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, int64(1), user.ID)

	byID, err := repo.ByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "rick", byID.Username)

	byName, err := repo.ByUsername(ctx, "rick")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repo.ByEmail(ctx, "rick@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.ByUsername(ctx, "morty")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = repo.ByID(ctx, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryUserRepository_Duplicates(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser("rick", emailPtr("rick@example.com"))))

	err := repo.Create(ctx, testUser("rick", nil))
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	err = repo.Create(ctx, testUser("morty", emailPtr("rick@example.com")))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// Users without email never collide on email
	require.NoError(t, repo.Create(ctx, testUser("summer", nil)))
	require.NoError(t, repo.Create(ctx, testUser("beth", nil)))
}

func TestMemoryUserRepository_List(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	for _, name := range []string{"a", "bb", "ccc", "dddd"} {
		require.NoError(t, repo.Create(ctx, testUser(name, nil)))
	}

	users, err := repo.List(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, users, 4)
	assert.Equal(t, "a", users[0].Username)

	page, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "bb", page[0].Username)
	assert.Equal(t, "ccc", page[1].Username)

	empty, err := repo.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser("rick", nil)))

	user, err := repo.ByUsername(ctx, "rick")
	require.NoError(t, err)
	user.Username = "mutated"

	again, err := repo.ByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "rick", again.Username)
}

func TestMemorySettingsRepository(t *testing.T) {
	repo := NewMemorySettingsRepository()
	ctx := context.Background()

	_, err := repo.ByUserID(ctx, 1)
	assert.ErrorIs(t, err, ErrSettingsNotFound)

	require.NoError(t, repo.Create(ctx, model.DefaultSettings(1)))

	settings, err := repo.ByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "system", settings.ThemeMode)
	assert.Equal(t, "lime", settings.ThemeColor)

	settings.ThemeMode = "dark"
	require.NoError(t, repo.Update(ctx, settings))

	updated, err := repo.ByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "dark", updated.ThemeMode)

	err = repo.Update(ctx, model.DefaultSettings(99))
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}
