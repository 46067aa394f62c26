package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-health-tracker/internal/logger"
	"github.com/sbilibin2017/gw-health-tracker/internal/models"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

// UserLister lists registered users.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

type usersPage struct {
	Users []models.UserDB
}

// NewUsersPageHandler renders every registered user.
// @Summary List users
// @Tags users
// @Produce html
// @Success 200 {string} string "HTML page"
// @Success 303 {string} string "Not logged in, redirect to /login"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user [get]
func NewUsersPageHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}
		renderPage(w, http.StatusOK, pageUsers, usersPage{Users: users})
	}
}

// NewCreateUserHandler creates a user from the listing page.
// @Summary Create a user
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 303 {string} string "Redirect to /user"
// @Failure 400 {object} handlers.ErrorResponse "Missing username or password / username already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user [post]
func NewCreateUserHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !createUser(w, r, svc) {
			return
		}
		http.Redirect(w, r, "/user", http.StatusSeeOther)
	}
}
