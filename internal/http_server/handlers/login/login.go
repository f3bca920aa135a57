package login

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"driver_service/internal/auth"
	"driver_service/internal/lib/api/cookie"
	resp "driver_service/internal/lib/api/response"
	sl "driver_service/internal/lib/logger"
	"driver_service/internal/lib/validation"
	"driver_service/internal/models"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Response struct {
	AccessToken string      `json:"accessToken"`
	User        models.User `json:"user"`
}

// New godoc
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  login.Request  true  "Login payload"
// @Success      200  {object}  login.Response
// @Failure      401  {object}  response.ErrResponse  "Invalid credentials"
// @Router       /auth/login [post]
func New(
	log *slog.Logger,
	validate *validator.Validate,
	authService *auth.Auth,
	refreshTTL time.Duration,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.login.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Failed to decode request"))

			return
		}

		if err := validate.Struct(req); err != nil {
			log.Warn("invalid request", sl.Err(err))

			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, resp.ValidationError(validation.Normalize(err)))

			return
		}

		user, pair, err := authService.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			// one message for both unknown email and wrong password
			if errors.Is(err, auth.ErrInvalidCredentials) {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, resp.Error("Invalid email or password."))

				return
			}

			log.Error("failed to login user", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Internal Server Error"))

			return
		}

		log.Info("user logged in", slog.String("uid", user.ID.Hex()))

		cookie.SetRefreshToken(w, pair.Refresh, refreshTTL)

		render.JSON(w, r, Response{
			AccessToken: pair.Access,
			User:        user,
		})
	}
}
