package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-health-tracker/internal/logger"
	"github.com/sbilibin2017/gw-health-tracker/internal/models"
	"github.com/sbilibin2017/gw-health-tracker/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) (*models.UserDB, error)
}

const (
	errMissingCredentials = "missing username or password"
	errUsernameTaken      = "username already exists"
)

// createUser registers the user from the submitted form. It writes the error
// response itself and reports whether the caller may continue.
func createUser(w http.ResponseWriter, r *http.Request, svc Registerer) bool {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: errMissingCredentials})
		return false
	}

	user, err := svc.Register(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: errMissingCredentials})
		case errors.Is(err, services.ErrUserAlreadyExists):
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: errUsernameTaken})
		default:
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
		}
		return false
	}

	logger.Log.Infow("user registered", "userID", user.ID, "username", user.Username)
	return true
}

// NewRegisterPageHandler renders the registration form.
// @Summary Registration page
// @Tags auth
// @Produce html
// @Success 200 {string} string "HTML form"
// @Router /register [get]
func NewRegisterPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, http.StatusOK, pageRegister, nil)
	}
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique username. The password is hashed before storing.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 303 {string} string "Redirect to /login"
// @Failure 400 {object} handlers.ErrorResponse "Missing username or password / username already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !createUser(w, r, svc) {
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
