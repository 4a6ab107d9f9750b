package service

import (
	"context"
	"testing"

	"github.com/planwise/assistant/internal/model"
	"github.com/planwise/assistant/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService() *SettingsService {
	return NewSettingsService(repository.NewMemorySettingsRepository())
}

func TestSettings_LazyDefault(t *testing.T) {
	s := newSettingsService()
	ctx := context.Background()

	settings, err := s.Settings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "system", settings.ThemeMode)
	assert.Equal(t, "lime", settings.ThemeColor)

	// Second read returns the same row, not a fresh default
	again, err := s.Settings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, settings, again)
}

func TestSetting_KnownAndUnknown(t *testing.T) {
	s := newSettingsService()
	ctx := context.Background()

	value, err := s.Setting(ctx, 1, SettingThemeMode)
	require.NoError(t, err)
	assert.Equal(t, "system", value)

	_, err = s.Setting(ctx, 1, "nonexistent")
	assert.ErrorIs(t, err, ErrUnknownSetting)
}

func TestSetSetting_UpdatesExactlyOneField(t *testing.T) {
	s := newSettingsService()
	ctx := context.Background()

	settings, err := s.SetSetting(ctx, 1, model.Setting{Key: SettingThemeMode, Value: "dark"})
	require.NoError(t, err)
	assert.Equal(t, "dark", settings.ThemeMode)
	assert.Equal(t, "lime", settings.ThemeColor)

	// The change persisted and the other field is still untouched
	stored, err := s.Settings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "dark", stored.ThemeMode)
	assert.Equal(t, "lime", stored.ThemeColor)
}

func TestSetSetting_UnknownKey(t *testing.T) {
	s := newSettingsService()
	ctx := context.Background()

	_, err := s.SetSetting(ctx, 1, model.Setting{Key: "is_admin", Value: "true"})
	assert.ErrorIs(t, err, ErrUnknownSetting)

	// Nothing was written
	settings, err := s.Settings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "system", settings.ThemeMode)
	assert.Equal(t, "lime", settings.ThemeColor)
}

func TestSetSome(t *testing.T) {
	s := newSettingsService()
	ctx := context.Background()

	settings, err := s.SetSome(ctx, 1, []model.Setting{
		{Key: SettingThemeMode, Value: "dark"},
		{Key: SettingThemeColor, Value: "teal"},
	})
	require.NoError(t, err)
	assert.Equal(t, "dark", settings.ThemeMode)
	assert.Equal(t, "teal", settings.ThemeColor)
}

func TestSetSome_UnknownKeyRejectsWholeBatch(t *testing.T) {
	s := newSettingsService()
	ctx := context.Background()

	_, err := s.SetSome(ctx, 1, []model.Setting{
		{Key: SettingThemeMode, Value: "dark"},
		{Key: "bogus", Value: "x"},
	})
	assert.ErrorIs(t, err, ErrUnknownSetting)

	settings, err := s.Settings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "system", settings.ThemeMode)
}

func TestSetAll(t *testing.T) {
	s := newSettingsService()
	ctx := context.Background()

	settings, err := s.SetAll(ctx, 1, "light", "violet")
	require.NoError(t, err)
	assert.Equal(t, "light", settings.ThemeMode)
	assert.Equal(t, "violet", settings.ThemeColor)

	stored, err := s.Settings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, settings, stored)
}

func TestSettings_PerUserIsolation(t *testing.T) {
	s := newSettingsService()
	ctx := context.Background()

	_, err := s.SetSetting(ctx, 1, model.Setting{Key: SettingThemeMode, Value: "dark"})
	require.NoError(t, err)

	other, err := s.Settings(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "system", other.ThemeMode)
}
