package handlers

import (
	"context"
	"html/template"
	"net/http"

	"github.com/sbilibin2017/gw-health-tracker/internal/logger"
	"github.com/sbilibin2017/gw-health-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-health-tracker/internal/models"
)

//go:generate mockgen -source=user_health_check.go -destination=mock_user_health_check.go -package=handlers

// HealthCheckGetter reads the records of one user.
type HealthCheckGetter interface {
	Latest(ctx context.Context, userID int64) (*models.HealthCheckDB, error)
	History(ctx context.Context, userID int64) ([]models.HealthCheckDB, error)
}

// MealSuggester produces meal suggestions from a record.
type MealSuggester interface {
	Suggest(ctx context.Context, record *models.HealthCheckDB) (string, error)
}

const noHealthCheckNotice = "Record a health check first to get a menu suggestion."

type userHealthCheckPage struct {
	Username    string
	HealthCheck *models.HealthCheckDB
	History     []models.HealthCheckDB
	// Menu is built from HTML-escaped lines joined with <br>.
	Menu   template.HTML
	Notice string
}

// UserHealthCheckHandlers serves the personal health check page.
type UserHealthCheckHandlers struct {
	reader   HealthCheckGetter
	appender HealthCheckAppender
	meals    MealSuggester
}

// NewUserHealthCheckHandlers creates the personal page handlers.
func NewUserHealthCheckHandlers(reader HealthCheckGetter, appender HealthCheckAppender, meals MealSuggester) *UserHealthCheckHandlers {
	return &UserHealthCheckHandlers{reader: reader, appender: appender, meals: meals}
}

// render fills the page with the latest record and the history of the user.
func (h *UserHealthCheckHandlers) render(w http.ResponseWriter, r *http.Request, session *models.Session, page userHealthCheckPage) {
	ctx := r.Context()

	if page.HealthCheck == nil {
		latest, err := h.reader.Latest(ctx, session.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}
		page.HealthCheck = latest
	}

	history, err := h.reader.History(ctx, session.UserID)
	if err != nil {
		logger.Log.Errorw("internal server error", "err", err)
		writeInternalError(w)
		return
	}

	page.Username = session.Username
	page.History = history
	renderPage(w, http.StatusOK, pageUserHealthCheck, page)
}

// Get renders the latest record and the history of the current user.
// @Summary My health checks
// @Tags health-checks
// @Produce html
// @Success 200 {string} string "HTML page"
// @Success 303 {string} string "Not logged in, redirect to /login"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/healthcheck [get]
func (h *UserHealthCheckHandlers) Get(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())
	if session == nil {
		http.Redirect(w, r, middlewares.LoginPath, http.StatusSeeOther)
		return
	}
	h.render(w, r, session, userHealthCheckPage{})
}

// Post either suggests meals for the latest record (menu field) or records
// a new health check (healthcheck field).
// @Summary Suggest meals or record a health check
// @Description With the menu field the latest record is sent to the completion service and the suggestion is rendered. With the healthcheck field the measurements are stored.
// @Tags health-checks
// @Accept x-www-form-urlencoded
// @Produce html
// @Param menu formData string false "Request a meal suggestion"
// @Param healthcheck formData string false "Record the submitted measurements"
// @Param height formData number false "Height, cm"
// @Param weight formData number false "Weight, kg"
// @Param blood_pressure_high formData integer false "Systolic blood pressure"
// @Param blood_pressure_low formData integer false "Diastolic blood pressure"
// @Param blood_sugar formData number false "Blood sugar, mg/dL"
// @Success 200 {string} string "HTML page with the suggestion"
// @Success 303 {string} string "Record stored, redirect to /user/healthcheck"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or missing field"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/healthcheck [post]
func (h *UserHealthCheckHandlers) Post(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())
	if session == nil {
		http.Redirect(w, r, middlewares.LoginPath, http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, models.NewValidationError(models.FieldHeight, "malformed form"))
		return
	}

	switch {
	case r.PostForm.Has("menu"):
		h.suggest(w, r, session)
	case r.PostForm.Has("healthcheck"), r.PostForm.Has(models.FieldHeight):
		if !appendHealthCheck(w, r, h.appender, session.UserID) {
			return
		}
		http.Redirect(w, r, "/user/healthcheck", http.StatusSeeOther)
	default:
		h.render(w, r, session, userHealthCheckPage{})
	}
}

func (h *UserHealthCheckHandlers) suggest(w http.ResponseWriter, r *http.Request, session *models.Session) {
	latest, err := h.reader.Latest(r.Context(), session.UserID)
	if err != nil {
		logger.Log.Errorw("internal server error", "err", err)
		writeInternalError(w)
		return
	}
	if latest == nil {
		h.renderWithoutRecord(w, r, session)
		return
	}

	menu, err := h.meals.Suggest(r.Context(), latest)
	if err != nil {
		logger.Log.Errorw("internal server error", "err", err)
		writeInternalError(w)
		return
	}

	h.render(w, r, session, userHealthCheckPage{HealthCheck: latest, Menu: template.HTML(menu)})
}

func (h *UserHealthCheckHandlers) renderWithoutRecord(w http.ResponseWriter, r *http.Request, session *models.Session) {
	history, err := h.reader.History(r.Context(), session.UserID)
	if err != nil {
		logger.Log.Errorw("internal server error", "err", err)
		writeInternalError(w)
		return
	}
	renderPage(w, http.StatusOK, pageUserHealthCheck, userHealthCheckPage{
		Username: session.Username,
		History:  history,
		Notice:   noHealthCheckNotice,
	})
}
