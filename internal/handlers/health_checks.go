package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-health-tracker/internal/logger"
	"github.com/sbilibin2017/gw-health-tracker/internal/models"
)

//go:generate mockgen -source=health_checks.go -destination=mock_health_checks.go -package=handlers

// HealthCheckAppender stores new health checks.
type HealthCheckAppender interface {
	Append(ctx context.Context, userID int64, m models.Measurements) (int64, error)
}

// HealthCheckLister lists the health checks of every user.
type HealthCheckLister interface {
	ListAll(ctx context.Context) ([]models.HealthCheckDB, error)
}

type healthChecksPage struct {
	HealthChecks []models.HealthCheckDB
}

// appendHealthCheck parses the measurements and stores them for userID.
// It writes the error response itself and reports whether the caller may continue.
func appendHealthCheck(w http.ResponseWriter, r *http.Request, svc HealthCheckAppender, userID int64) bool {
	m, err := parseMeasurements(r)
	if err != nil {
		writeError(w, err)
		return false
	}

	id, err := svc.Append(r.Context(), userID, m)
	if err != nil {
		writeError(w, err)
		return false
	}

	logger.Log.Infow("health check recorded", "healthCheckID", id, "userID", userID)
	return true
}

// NewHealthChecksPageHandler renders the records of every user.
// @Summary List all health checks
// @Tags health-checks
// @Produce html
// @Success 200 {string} string "HTML page"
// @Success 303 {string} string "Not logged in, redirect to /login"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /healthcheck [get]
func NewHealthChecksPageHandler(svc HealthCheckLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}
		renderPage(w, http.StatusOK, pageHealthChecks, healthChecksPage{HealthChecks: records})
	}
}

// NewCreateHealthCheckHandler records a health check for any existing user.
// @Summary Record a health check for a user
// @Tags health-checks
// @Accept x-www-form-urlencoded
// @Produce json
// @Param user_id formData integer true "User ID"
// @Param height formData number true "Height, cm"
// @Param weight formData number true "Weight, kg"
// @Param blood_pressure_high formData integer true "Systolic blood pressure"
// @Param blood_pressure_low formData integer true "Diastolic blood pressure"
// @Param blood_sugar formData number true "Blood sugar, mg/dL"
// @Success 303 {string} string "Redirect to /healthcheck"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or missing field"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /healthcheck [post]
func NewCreateHealthCheckHandler(svc HealthCheckAppender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeError(w, models.NewValidationError(models.FieldUserID, "malformed form"))
			return
		}

		userID, err := parseUserID(r)
		if err != nil {
			writeError(w, err)
			return
		}

		if !appendHealthCheck(w, r, svc, userID) {
			return
		}
		http.Redirect(w, r, "/healthcheck", http.StatusSeeOther)
	}
}
