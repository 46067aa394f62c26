package handlers

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-health-tracker/internal/logger"
	"github.com/sbilibin2017/gw-health-tracker/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names.
const (
	pageLogin           = "login.html"
	pageRegister        = "register.html"
	pageUsers           = "users.html"
	pageHealthChecks    = "healthchecks.html"
	pageNewHealthCheck  = "new_healthcheck.html"
	pageUserHealthCheck = "user_healthcheck.html"
)

var pages = parsePages(
	pageLogin,
	pageRegister,
	pageUsers,
	pageHealthChecks,
	pageNewHealthCheck,
	pageUserHealthCheck,
)

var templateFuncs = template.FuncMap{
	"date": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
}

func parsePages(names ...string) map[string]*template.Template {
	set := make(map[string]*template.Template, len(names))
	for _, name := range names {
		set[name] = template.Must(
			template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name),
		)
	}
	return set
}

// renderPage executes the page into a buffer so a template error never leaves a half-written response.
func renderPage(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := pages[page]
	if !ok {
		logger.Log.Errorw("unknown page", "page", page)
		writeInternalError(w)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.Log.Errorw("failed to render page", "page", page, "error", err)
		writeInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Log.Errorw("failed to write page", "page", page, "error", err)
	}
}

// ErrorResponse represents a JSON error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`

	// Offending form field, set for validation errors
	// default: height
	Field string `json:"field,omitempty"`
}

const internalErrorMessage = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: internalErrorMessage})
}

// writeError maps validation errors to 400 and everything else to 500.
func writeError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: verr.Error(), Field: verr.Field})
		return
	}
	logger.Log.Errorw("internal server error", "err", err)
	writeInternalError(w)
}
