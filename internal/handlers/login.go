package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-health-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-health-tracker/internal/logger"
	"github.com/sbilibin2017/gw-health-tracker/internal/services"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

const errInvalidCredentials = "Invalid username or password"

type loginPage struct {
	Username string
	Error    string
}

// NewLoginPageHandler renders the login form.
// @Summary Login page
// @Tags auth
// @Produce html
// @Success 200 {string} string "HTML form"
// @Success 303 {string} string "Already logged in, redirect to /"
// @Router /login [get]
func NewLoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, http.StatusOK, pageLogin, loginPage{})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Verifies the credentials, opens a session and sets the session cookie.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 303 {string} string "Session cookie set, redirect to /"
// @Failure 401 {string} string "Login page with an error message"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			renderPage(w, http.StatusBadRequest, pageLogin, loginPage{Error: errInvalidCredentials})
			return
		}
		username := r.PostFormValue("username")

		token, err := svc.Login(r.Context(), username, r.PostFormValue("password"))
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				renderPage(w, http.StatusUnauthorized, pageLogin, loginPage{Username: username, Error: errInvalidCredentials})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}

		http.SetCookie(w, jwt.NewCookie(token))
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
