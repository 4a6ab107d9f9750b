package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/planwise/assistant/internal/ctxkeys"
	"github.com/planwise/assistant/internal/service"
)

type authHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *authHandler {
	return &authHandler{authService: authService}
}

// tokenResponse is the shape returned by login and signup.
type tokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Expires     time.Time `json:"expires"`
}

// Login exchanges form-encoded credentials for a bearer token.
func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid form data")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		slog.Error("login failed", "error", err, "username", username)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.issueToken(w, user.Username)
}

// Signup creates the user, then performs the same flow as login.
func (h *authHandler) Signup(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid form data")
		return
	}

	input := service.SignupInput{
		Username:  r.PostFormValue("username"),
		Password:  r.PostFormValue("password"),
		Email:     optionalFormValue(r, "email"),
		FirstName: optionalFormValue(r, "first_name"),
		LastName:  optionalFormValue(r, "last_name"),
		Emoji:     optionalFormValue(r, "emoji"),
	}

	user, err := h.authService.Signup(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameAlreadyTaken),
			errors.Is(err, service.ErrEmailAlreadyTaken):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		}
		return
	}

	h.issueToken(w, user.Username)
}

type validateUsernameRequest struct {
	Username string `json:"username" validate:"required"`
}

// ValidateUsername reports username availability. Advisory only.
func (h *authHandler) ValidateUsername(w http.ResponseWriter, r *http.Request) {
	var req validateUsernameRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	available, err := h.authService.ValidateUsername(r.Context(), req.Username)
	if err != nil {
		slog.Error("username validation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, available)
}

// UserID returns the authenticated user's numeric id.
func (h *authHandler) UserID(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	writeJSON(w, http.StatusOK, user.ID)
}

func (h *authHandler) issueToken(w http.ResponseWriter, username string) {
	token, expiresAt, err := h.authService.GenerateToken(username)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "username", username)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Expires:     expiresAt,
	})
}

func optionalFormValue(r *http.Request, key string) *string {
	value := r.PostFormValue(key)
	if value == "" {
		return nil
	}
	return &value
}
