package authn

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"driver_service/internal/lib/api/response"
	"driver_service/internal/lib/jwt"
	sl "driver_service/internal/lib/logger"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

type contextKey string

const userIDKey contextKey = "userID"

// New gates a route group behind access-token verification. The resolved
// user id is placed into the request context for handlers.
func New(log *slog.Logger, tokens *jwt.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middleware.authn.New"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("missing authorization header")

				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Access token is missing"))

				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("malformed authorization header")

				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Access token is missing"))

				return
			}

			userID, err := tokens.ParseAccessToken(parts[1])
			if err != nil {
				log.Warn("access token rejected", sl.Err(err))

				render.Status(r, http.StatusUnauthorized)

				if errors.Is(err, jwt.ErrTokenExpired) {
					render.JSON(w, r, response.Error("Access token expired"))
				} else {
					render.JSON(w, r, response.Error("Invalid access token"))
				}

				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user id stored by the middleware.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
