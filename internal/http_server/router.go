package httpserver

import (
	"log/slog"
	"net/http"

	_ "driver_service/docs"
	"driver_service/internal/applications"
	"driver_service/internal/auth"
	"driver_service/internal/config"
	"driver_service/internal/http_server/handlers/applications/create"
	"driver_service/internal/http_server/handlers/applications/list"
	"driver_service/internal/http_server/handlers/applications/togglearchive"
	"driver_service/internal/http_server/handlers/login"
	"driver_service/internal/http_server/handlers/logout"
	"driver_service/internal/http_server/handlers/refresh"
	"driver_service/internal/http_server/handlers/register"
	"driver_service/internal/http_server/middleware/authn"
	"driver_service/internal/lib/jwt"
	rateLimit "driver_service/internal/middleware/ratelimit"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter wires the full HTTP surface: auth flows, the gated
// applications API, swagger UI and the JSON fallbacks.
func NewRouter(
	log *slog.Logger,
	cfg *config.Config,
	validate *validator.Validate,
	tokens *jwt.Manager,
	authService *auth.Auth,
	appService *applications.Applications,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/api", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"message": "Welcome to the SpaceX backend API"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.With(rateLimit.Register()).Post("/register",
			register.New(log, validate, authService, cfg.Tokens.RefreshTokenTTL),
		)
		r.With(rateLimit.Login()).Post("/login",
			login.New(log, validate, authService, cfg.Tokens.RefreshTokenTTL),
		)
		r.With(rateLimit.Refresh()).Post("/refresh-token",
			refresh.New(log, authService, cfg.Tokens.RefreshTokenTTL),
		)
		r.With(rateLimit.Logout()).Post("/logout",
			logout.New(log),
		)
	})

	r.Route("/applications", func(r chi.Router) {
		r.Use(authn.New(log, tokens))
		r.Use(rateLimit.Applications())

		r.Post("/", create.New(log, validate, appService))
		r.Get("/", list.New(log, appService))
		r.Patch("/{id}/toggle-archive", togglearchive.New(log, appService))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, map[string]string{"error": "Not Found"})
	})

	return r
}
