package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/planwise/assistant/internal/model"
	"github.com/planwise/assistant/internal/repository"
)

var ErrUnknownSetting = errors.New("unknown setting")

// Setting keys. Mutation goes through this enumerated allow-list only; there
// is deliberately no reflective "any field name is settable" path.
const (
	SettingThemeMode  = "theme_mode"
	SettingThemeColor = "theme_color"
)

type SettingsService struct {
	settingsRepository repository.SettingsRepository
}

func NewSettingsService(settingsRepository repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepository: settingsRepository}
}

// Settings returns the user's settings row, creating a default one on first
// read if absent.
func (s *SettingsService) Settings(ctx context.Context, userID int64) (*model.Settings, error) {
	settings, err := s.settingsRepository.ByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return s.createDefault(ctx, userID)
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

func (s *SettingsService) createDefault(ctx context.Context, userID int64) (*model.Settings, error) {
	settings := model.DefaultSettings(userID)
	err := s.settingsRepository.Create(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}
	return settings, nil
}

// Setting returns the value of a single named field.
func (s *SettingsService) Setting(ctx context.Context, userID int64, name string) (string, error) {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return "", err
	}

	switch name {
	case SettingThemeMode:
		return settings.ThemeMode, nil
	case SettingThemeColor:
		return settings.ThemeColor, nil
	default:
		return "", ErrUnknownSetting
	}
}

// SetSetting assigns one field by name and persists the row.
func (s *SettingsService) SetSetting(ctx context.Context, userID int64, setting model.Setting) (*model.Settings, error) {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	err = apply(settings, setting)
	if err != nil {
		return nil, err
	}

	err = s.settingsRepository.Update(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}

// SetSome applies a list of single-field patches in order. An unknown key
// fails the whole call before anything is written.
func (s *SettingsService) SetSome(ctx context.Context, userID int64, patches []model.Setting) (*model.Settings, error) {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, patch := range patches {
		err = apply(settings, patch)
		if err != nil {
			return nil, err
		}
	}

	err = s.settingsRepository.Update(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}

// SetAll overwrites every known field at once, creating the row if needed.
func (s *SettingsService) SetAll(ctx context.Context, userID int64, themeMode, themeColor string) (*model.Settings, error) {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings.ThemeMode = themeMode
	settings.ThemeColor = themeColor

	err = s.settingsRepository.Update(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}

func apply(settings *model.Settings, patch model.Setting) error {
	switch patch.Key {
	case SettingThemeMode:
		settings.ThemeMode = patch.Value
	case SettingThemeColor:
		settings.ThemeColor = patch.Value
	default:
		return ErrUnknownSetting
	}
	return nil
}
