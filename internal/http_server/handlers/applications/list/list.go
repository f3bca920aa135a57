package list

import (
	"log/slog"
	"net/http"
	"strconv"

	"driver_service/internal/applications"
	resp "driver_service/internal/lib/api/response"
	sl "driver_service/internal/lib/logger"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// New godoc
// @Summary      List driver applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Page number (1-indexed)"
// @Param        limit  query  int  false  "Records per page"
// @Success      200  {object}  applications.Page
// @Failure      401  {object}  response.ErrResponse
// @Router       /applications [get]
func New(
	log *slog.Logger,
	appService *applications.Applications,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.applications.list.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		page := positiveQueryParam(r, "page", defaultPage)
		limit := positiveQueryParam(r, "limit", defaultLimit)

		result, err := appService.List(r.Context(), page, limit)
		if err != nil {
			log.Error("failed to list applications", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Internal Server Error"))

			return
		}

		render.JSON(w, r, result)
	}
}

// positiveQueryParam parses a query value, falling back to def on
// non-numeric or non-positive input.
func positiveQueryParam(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 1 {
		return def
	}

	return v
}
