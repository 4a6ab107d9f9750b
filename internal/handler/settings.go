package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/planwise/assistant/internal/ctxkeys"
	"github.com/planwise/assistant/internal/model"
	"github.com/planwise/assistant/internal/service"
)

type settingsHandler struct {
	settingsService *service.SettingsService
}

func NewSettingsHandler(settingsService *service.SettingsService) *settingsHandler {
	return &settingsHandler{settingsService: settingsService}
}

// GetSettings returns the user's settings, creating defaults on first read.
func (h *settingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	settings, err := h.settingsService.Settings(r.Context(), user.ID)
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// GetSetting returns a single named field.
func (h *settingsHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	name := r.PathValue("name")

	value, err := h.settingsService.Setting(r.Context(), user.ID, name)
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.Setting{Key: name, Value: value})
}

// PatchSetting updates exactly one field by name.
func (h *settingsHandler) PatchSetting(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var patch model.Setting
	err := decodeJSON(r, &patch)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	settings, err := h.settingsService.SetSetting(r.Context(), user.ID, patch)
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// PatchSome applies a list of single-field patches.
func (h *settingsHandler) PatchSome(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var patches []model.Setting
	err := json.NewDecoder(r.Body).Decode(&patches)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid JSON body")
		return
	}
	for _, patch := range patches {
		if patch.Key == "" {
			writeError(w, http.StatusUnprocessableEntity, "setting key is required")
			return
		}
	}

	settings, err := h.settingsService.SetSome(r.Context(), user.ID, patches)
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

type settingsRequest struct {
	ThemeMode  string `json:"theme_mode" validate:"required"`
	ThemeColor string `json:"theme_color" validate:"required"`
}

// PatchAll overwrites every known field at once.
func (h *settingsHandler) PatchAll(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req settingsRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	settings, err := h.settingsService.SetAll(r.Context(), user.ID, req.ThemeMode, req.ThemeColor)
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

func (h *settingsHandler) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrUnknownSetting) {
		writeError(w, http.StatusNotFound, "Setting not found")
		return
	}
	slog.Error("settings operation failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
