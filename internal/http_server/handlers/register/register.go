package register

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
	Password string `json:"password" validate:"required,min=5"`
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

type Response struct {
	AccessToken string      `json:"accessToken"`
	User        models.User `json:"user"`
}

// New godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  register.Request  true  "Registration payload"
// @Success      201  {object}  register.Response
// @Failure      400  {object}  response.ErrResponse       "Email already taken"
// @Failure      422  {object}  response.FieldErrResponse  "Field validation errors"
// @Router       /auth/register [post]
func New(
	log *slog.Logger,
	validate *validator.Validate,
	authService *auth.Auth,
	refreshTTL time.Duration,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.register.New"

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

		user, pair, err := authService.Register(r.Context(), req.Email, req.Password, req.FullName, req.Phone)
		if err != nil {
			if errors.Is(err, auth.ErrEmailTaken) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, resp.Error("This email is already taken."))

				return
			}

			log.Error("failed to register user", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Internal Server Error"))

			return
		}

		log.Info("user registered", slog.String("uid", user.ID.Hex()))

		cookie.SetRefreshToken(w, pair.Refresh, refreshTTL)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			AccessToken: pair.Access,
			User:        user,
		})
	}
}
