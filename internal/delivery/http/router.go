package http

import (
	"log/slog"
	"net/http"

	"github.com/TedMN/mplsjrdevs/internal/delivery/http/controllers"
	"github.com/TedMN/mplsjrdevs/internal/delivery/http/middleware"
	"github.com/TedMN/mplsjrdevs/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterConfig holds the controllers and middleware dependencies for NewRouter.
type RouterConfig struct {
	Logger             *slog.Logger
	Schedule           *controllers.ScheduleController
	Auth               *controllers.AuthController
	Announcement       *controllers.AnnouncementController
	TokenVerifier      domain.TokenVerifier
	CORSAllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes,
// wrapped in request logging and CORS.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(cfg.TokenVerifier, cfg.Logger)

	mux.HandleFunc("GET /health", cfg.Schedule.Health)

	// Schedule
	mux.HandleFunc("GET /schedule", cfg.Schedule.GetSchedule)
	mux.HandleFunc("POST /schedule/disclosure", cfg.Schedule.ToggleDisclosure)

	// Auth
	mux.HandleFunc("POST /auth/token", cfg.Auth.IssueToken)

	// Announcements
	mux.HandleFunc("POST /announcements/next", requireAuth(cfg.Announcement.AnnounceNext))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.LoggingMiddleware(cfg.Logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))
}
