package togglearchive

import (
	"errors"
	"log/slog"
	"net/http"

	"driver_service/internal/applications"
	resp "driver_service/internal/lib/api/response"
	sl "driver_service/internal/lib/logger"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

// New godoc
// @Summary      Toggle the archived flag of an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Application ID"
// @Success      200  {object}  models.Application
// @Failure      401  {object}  response.ErrResponse
// @Failure      404  {object}  response.ErrResponse  "Application not found"
// @Router       /applications/{id}/toggle-archive [patch]
func New(
	log *slog.Logger,
	appService *applications.Applications,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.applications.togglearchive.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		app, err := appService.ToggleArchive(r.Context(), id)
		if err != nil {
			if errors.Is(err, applications.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, resp.Error("Application not found"))

				return
			}

			log.Error("failed to toggle archive", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Internal Server Error"))

			return
		}

		render.JSON(w, r, app)
	}
}
