package create

import (
	"log/slog"
	"net/http"

	"driver_service/internal/applications"
	resp "driver_service/internal/lib/api/response"
	sl "driver_service/internal/lib/logger"
	"driver_service/internal/lib/validation"
	"driver_service/internal/models"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	FullName          string   `json:"fullName" validate:"required"`
	PhoneNumber       string   `json:"phoneNumber" validate:"required"`
	Email             string   `json:"email" validate:"required,email"`
	CdlLicense        string   `json:"cdlLicense" validate:"required"`
	State             string   `json:"state" validate:"required"`
	DrivingExperience string   `json:"drivingExperience" validate:"required"`
	TruckTypes        []string `json:"truckTypes" validate:"required,min=1"`
	LongHaulTrips     string   `json:"longHaulTrips" validate:"required,oneof=yes no"`
	Comments          string   `json:"comments"`
}

// New godoc
// @Summary      Submit a new driver application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  create.Request  true  "Application payload"
// @Success      201  {object}  models.Application
// @Failure      401  {object}  response.ErrResponse
// @Failure      422  {object}  response.FieldErrResponse  "Field validation errors"
// @Router       /applications [post]
func New(
	log *slog.Logger,
	validate *validator.Validate,
	appService *applications.Applications,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.applications.create.New"

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

		app, err := appService.Create(r.Context(), models.Application{
			FullName:          req.FullName,
			PhoneNumber:       req.PhoneNumber,
			Email:             req.Email,
			CdlLicense:        req.CdlLicense,
			State:             req.State,
			DrivingExperience: req.DrivingExperience,
			TruckTypes:        req.TruckTypes,
			LongHaulTrips:     req.LongHaulTrips,
			Comments:          req.Comments,
		})
		if err != nil {
			log.Error("failed to create application", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Internal Server Error"))

			return
		}

		log.Info("application created", slog.String("id", app.ID.Hex()))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, app)
	}
}
