package cookie

import (
	"net/http"
	"time"
)

// RefreshToken is the name of the HTTP-only cookie carrying the refresh
// token.
const RefreshToken = "refreshToken"

// SetRefreshToken installs the refresh-token cookie. HttpOnly keeps the
// long-lived token out of reach of page scripts.
func SetRefreshToken(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshToken,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
	})
}

// ClearRefreshToken expires the refresh-token cookie immediately.
func ClearRefreshToken(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshToken,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
