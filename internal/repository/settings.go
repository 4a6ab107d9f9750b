package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/planwise/assistant/internal/model"
)

type SettingsRepository interface {
	Create(ctx context.Context, settings *model.Settings) error
	ByUserID(ctx context.Context, userID int64) (*model.Settings, error)
	Update(ctx context.Context, settings *model.Settings) error
}

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Create(ctx context.Context, settings *model.Settings) error {
	query := `INSERT INTO settings (user_id, theme_mode, theme_color) VALUES ($1, $2, $3)`

	_, err := r.db.ExecContext(ctx, query, settings.UserID, settings.ThemeMode, settings.ThemeColor)
	return err
}

func (r *settingsRepository) ByUserID(ctx context.Context, userID int64) (*model.Settings, error) {
	settings := &model.Settings{}
	query := `SELECT * FROM settings WHERE user_id = $1`

	err := r.db.GetContext(ctx, settings, query, userID)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}

	return settings, err
}

func (r *settingsRepository) Update(ctx context.Context, settings *model.Settings) error {
	query := `UPDATE settings SET theme_mode = $1, theme_color = $2 WHERE user_id = $3`

	result, err := r.db.ExecContext(ctx, query, settings.ThemeMode, settings.ThemeColor, settings.UserID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrSettingsNotFound
	}

	return nil
}
