package routes

import (
	"io/fs"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/templui/fittrack/assets"
	"github.com/templui/fittrack/internal/app"
	"github.com/templui/fittrack/internal/handler"
	"github.com/templui/fittrack/internal/middleware"
	"github.com/templui/fittrack/internal/storage"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	seo := handler.NewSEOHandler()
	health := handler.NewHealthHandler(app.DB)
	dashboard := handler.NewDashboardHandler(app.DashboardService)
	activity := handler.NewActivityHandler(app.ActivityService)
	goal := handler.NewGoalHandler(app.GoalService)
	ai := handler.NewAIHandler(app.AIService)
	settings := handler.NewSettingsHandler(app.SettingsService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	// Static files
	sub, _ := fs.Sub(assets.AssetsFS, ".")
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))

	mux.HandleFunc("GET /robots.txt", seo.Robots)
	mux.HandleFunc("GET /healthz", health.Health)
	mux.Handle("GET /metrics", middleware.BasicAuth(app.Cfg.MetricsUser, app.Cfg.MetricsPass, promhttp.Handler()))

	// Home
	mux.HandleFunc("GET /{$}", home.HomePage)

	// Export downloads (local storage only, S3 hands out presigned URLs)
	if local, ok := app.Storage.(*storage.LocalStorage); ok {
		exports := handler.NewExportHandler(local)
		mux.HandleFunc("GET "+storage.LocalURLPrefix+"{path...}", exports.Download)
	}

	// ============================================================================
	// APP ROUTES (/app/*)
	// ============================================================================

	mux.HandleFunc("GET /app/dashboard", dashboard.DashboardPage)
	mux.HandleFunc("GET /app/activities", activity.ActivitiesPage)

	// Goals
	mux.HandleFunc("GET /app/goals", goal.GoalsPage)
	mux.HandleFunc("GET /app/goals/new-dialog", goal.NewGoalDialog)
	mux.HandleFunc("GET /app/goals/{id}/progress-dialog", goal.ProgressDialog)
	mux.HandleFunc("POST /app/goals", goal.Create)
	mux.HandleFunc("PATCH /app/goals/{id}/progress", goal.UpdateProgress)

	// AI features (generation is rate limited per client)
	limiter := middleware.NewRateLimiter(app.Cfg.RateLimitRPS, app.Cfg.RateLimitBurst)
	rateLimited := middleware.RateLimit(limiter, ai.TooManyRequests)

	mux.HandleFunc("GET /app/ai", ai.AIPage)
	mux.HandleFunc("GET /app/ai/jobs/{id}", ai.Job)
	mux.HandleFunc("GET /app/ai/{panel}/new", ai.NewPanel)
	mux.HandleFunc("POST /app/ai/workout-plan", rateLimited(ai.StartWorkoutPlan))
	mux.HandleFunc("POST /app/ai/nutrition", rateLimited(ai.StartNutrition))
	mux.HandleFunc("POST /app/ai/progress", rateLimited(ai.StartProgressAnalysis))

	// Settings
	mux.HandleFunc("GET /app/settings", settings.SettingsPage)
	mux.HandleFunc("POST /app/settings/units", settings.SaveUnits)
	mux.HandleFunc("POST /app/settings/privacy", settings.SavePrivacy)
	mux.HandleFunc("POST /app/settings/export", settings.RequestExport)

	// ============================================================================
	// FALLBACK
	// ============================================================================

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),                   // Config must be first (needed by SecurityHeaders and the layout)
		middleware.NonceMiddleware,                   // Generate CSP nonce for each request (must be before SecurityHeaders)
		middleware.SecurityHeaders,                   // Security headers for all responses (XSS, clickjacking, etc.)
		middleware.Recovery(app.Cfg.IsDevelopment()), // Panics become 500s, headers above are already set
		middleware.Compress,
		middleware.Metrics(mux),
		middleware.RequestLogging,
		middleware.CSRFProtection, // CSRF protection for all state-changing requests
		middleware.WithURLPath,
	)

	return handler
}
