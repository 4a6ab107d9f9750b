package model

const (
	DefaultThemeMode  = "system"
	DefaultThemeColor = "lime"
)

// Settings is the per-user app settings row. One row per user; the user id
// doubles as the primary key.
type Settings struct {
	UserID     int64  `db:"user_id" json:"user_id"`
	ThemeMode  string `db:"theme_mode" json:"theme_mode"`
	ThemeColor string `db:"theme_color" json:"theme_color"`
}

// Setting is a single {key, value} patch applied to a Settings row.
type Setting struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// DefaultSettings returns a fresh Settings row for a user.
func DefaultSettings(userID int64) *Settings {
	return &Settings{
		UserID:     userID,
		ThemeMode:  DefaultThemeMode,
		ThemeColor: DefaultThemeColor,
	}
}
