package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-health-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-health-tracker/internal/models"
)

type newHealthCheckPage struct {
	Username string
}

// NewNewHealthCheckPageHandler renders the measurement form for the current user.
// @Summary New health check form
// @Tags health-checks
// @Produce html
// @Success 200 {string} string "HTML form"
// @Success 303 {string} string "Not logged in, redirect to /login"
// @Router /new_healthcheck [get]
func NewNewHealthCheckPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.SessionFromContext(r.Context())
		if session == nil {
			http.Redirect(w, r, middlewares.LoginPath, http.StatusSeeOther)
			return
		}
		renderPage(w, http.StatusOK, pageNewHealthCheck, newHealthCheckPage{Username: session.Username})
	}
}

// NewNewHealthCheckHandler records a health check for the current user.
// @Summary Record my health check
// @Tags health-checks
// @Accept x-www-form-urlencoded
// @Produce json
// @Param height formData number true "Height, cm"
// @Param weight formData number true "Weight, kg"
// @Param blood_pressure_high formData integer true "Systolic blood pressure"
// @Param blood_pressure_low formData integer true "Diastolic blood pressure"
// @Param blood_sugar formData number true "Blood sugar, mg/dL"
// @Success 303 {string} string "Redirect to /user/healthcheck"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or missing field"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /new_healthcheck [post]
func NewNewHealthCheckHandler(svc HealthCheckAppender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.SessionFromContext(r.Context())
		if session == nil {
			http.Redirect(w, r, middlewares.LoginPath, http.StatusSeeOther)
			return
		}

		if err := r.ParseForm(); err != nil {
			writeError(w, models.NewValidationError(models.FieldHeight, "malformed form"))
			return
		}

		if !appendHealthCheck(w, r, svc, session.UserID) {
			return
		}
		http.Redirect(w, r, "/user/healthcheck", http.StatusSeeOther)
	}
}
