package routes

import (
	"net/http"

	"github.com/planwise/assistant/internal/app"
	"github.com/planwise/assistant/internal/handler"
	"github.com/planwise/assistant/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	root := handler.NewRootHandler()
	auth := handler.NewAuthHandler(app.AuthService)
	user := handler.NewUserHandler(app.UserService)
	settings := handler.NewSettingsHandler(app.SettingsService)
	mealPlan := handler.NewMealPlanHandler(app.MealPlanService)

	mux := http.NewServeMux()

	// Root
	mux.HandleFunc("GET /{$}", root.Root)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth(app.Cfg.AuthRateLimit, app.Cfg.AuthRateWindow)

	mux.HandleFunc("POST /login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /signup", rateLimiter(auth.Signup))
	mux.HandleFunc("POST /auth/signup", rateLimiter(auth.Signup))
	mux.HandleFunc("POST /auth/validate-username", auth.ValidateUsername)
	mux.HandleFunc("GET /auth/user-id", middleware.RequireAuth(auth.UserID))

	// Users
	mux.HandleFunc("GET /users", middleware.RequireAuth(user.List))
	mux.HandleFunc("GET /users/me", middleware.RequireAuth(user.Me))

	// Settings
	mux.HandleFunc("GET /users/me/settings", middleware.RequireAuth(settings.GetSettings))
	mux.HandleFunc("GET /users/me/settings/{name}", middleware.RequireAuth(settings.GetSetting))
	mux.HandleFunc("PATCH /users/me/setting", middleware.RequireAuth(settings.PatchSetting))
	mux.HandleFunc("PATCH /users/me/settings", middleware.RequireAuth(settings.PatchSome))
	mux.HandleFunc("PATCH /users/me/settings/all", middleware.RequireAuth(settings.PatchAll))
	mux.HandleFunc("POST /settings", middleware.RequireAuth(settings.PatchAll))

	// Meal plans
	mux.HandleFunc("GET /mealplans", middleware.RequireAuth(mealPlan.List))

	// 404
	mux.HandleFunc("/{path...}", root.NotFound)

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService),
	)

	return h
}
