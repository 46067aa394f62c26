package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-health-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-health-tracker/internal/logger"
	"github.com/sbilibin2017/gw-health-tracker/internal/middlewares"
)

//go:generate mockgen -source=logout.go -destination=mock_logout.go -package=handlers

// Logouter ends sessions.
type Logouter interface {
	Logout(ctx context.Context, sessionID string) error
}

// NewLogoutHandler ends the current session.
// @Summary Log out
// @Description Deletes the session and clears the session cookie.
// @Tags auth
// @Success 303 {string} string "Redirect to /login"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.SessionFromContext(r.Context())
		if session != nil {
			if err := svc.Logout(r.Context(), session.ID); err != nil {
				logger.Log.Errorw("internal server error", "err", err)
				writeInternalError(w)
				return
			}
			logger.Log.Infow("user logged out", "userID", session.UserID)
		}

		http.SetCookie(w, jwt.ExpiredCookie())
		http.Redirect(w, r, middlewares.LoginPath, http.StatusSeeOther)
	}
}
