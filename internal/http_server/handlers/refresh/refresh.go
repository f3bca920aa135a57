package refresh

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"driver_service/internal/auth"
	"driver_service/internal/lib/api/cookie"
	resp "driver_service/internal/lib/api/response"
	sl "driver_service/internal/lib/logger"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

type Response struct {
	AccessToken string `json:"accessToken"`
}

// New godoc
// @Summary      Exchange the refresh cookie for a new access token
// @Description  Rotates the full pair: the response carries a new access
// @Description  token and the cookie is replaced with a new refresh token.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  refresh.Response
// @Failure      401  {object}  response.ErrResponse  "Missing or invalid refresh token"
// @Router       /auth/refresh-token [post]
func New(
	log *slog.Logger,
	authService *auth.Auth,
	refreshTTL time.Duration,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.refresh.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		c, err := r.Cookie(cookie.RefreshToken)
		if err != nil || c.Value == "" {
			log.Warn("refresh cookie missing")

			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, resp.Error("Refresh token is missing."))

			return
		}

		pair, err := authService.Refresh(c.Value)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidRefreshToken) {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, resp.Error("Invalid refresh token."))

				return
			}

			log.Error("failed to refresh tokens", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Internal Server Error"))

			return
		}

		log.Info("tokens refreshed")

		cookie.SetRefreshToken(w, pair.Refresh, refreshTTL)

		render.JSON(w, r, Response{AccessToken: pair.Access})
	}
}
