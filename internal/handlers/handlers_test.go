package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sbilibin2017/gw-health-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-health-tracker/internal/models"
	"github.com/stretchr/testify/require"
)

var testSession = &models.Session{ID: "sid-1", UserID: 1, Username: "alice"}

func newFormRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withSession(req *http.Request, session *models.Session) *http.Request {
	return req.WithContext(middlewares.WithSession(req.Context(), session))
}

func measurementForm() url.Values {
	return url.Values{
		"height":              {"170"},
		"weight":              {"65"},
		"blood_pressure_high": {"120"},
		"blood_pressure_low":  {"80"},
		"blood_sugar":         {"95"},
	}
}

var formMeasurements = models.Measurements{
	Height:            170,
	Weight:            65,
	BloodPressureHigh: 120,
	BloodPressureLow:  80,
	BloodSugar:        95,
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}
