package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/planwise/assistant/internal/ctxkeys"
	"github.com/planwise/assistant/internal/service"
)

type mealPlanHandler struct {
	mealPlanService *service.MealPlanService
}

func NewMealPlanHandler(mealPlanService *service.MealPlanService) *mealPlanHandler {
	return &mealPlanHandler{mealPlanService: mealPlanService}
}

// List returns the user's meal plans for the requested date range.
// start_date and end_date are required RFC 3339 timestamps or plain dates.
func (h *mealPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	start, err := parseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid start_date")
		return
	}
	end, err := parseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid end_date")
		return
	}

	plans, err := h.mealPlanService.Plans(r.Context(), user.ID, start, end)
	if err != nil {
		slog.Error("failed to list meal plans", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, plans)
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
