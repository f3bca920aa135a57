package logout

import (
	"log/slog"
	"net/http"

	"driver_service/internal/lib/api/cookie"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

type Response struct {
	Message string `json:"message"`
}

// New godoc
// @Summary      Logout user
// @Description  Clears the refresh cookie. Tokens are stateless bearer
// @Description  values, so no revocation signal exists: an already issued
// @Description  access token stays valid until its TTL runs out.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  logout.Response
// @Router       /auth/logout [post]
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.logout.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		cookie.ClearRefreshToken(w)

		log.Info("user logged out")

		render.JSON(w, r, Response{Message: "Logged out successfully"})
	}
}
