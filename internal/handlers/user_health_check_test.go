package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-health-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

type userHealthCheckMocks struct {
	reader   *MockHealthCheckGetter
	appender *MockHealthCheckAppender
	meals    *MockMealSuggester
}

func newUserHealthCheckHandlers(ctrl *gomock.Controller) (*UserHealthCheckHandlers, userHealthCheckMocks) {
	m := userHealthCheckMocks{
		reader:   NewMockHealthCheckGetter(ctrl),
		appender: NewMockHealthCheckAppender(ctrl),
		meals:    NewMockMealSuggester(ctrl),
	}
	return NewUserHealthCheckHandlers(m.reader, m.appender, m.meals), m
}

var latestRecord = &models.HealthCheckDB{
	ID:                3,
	UserID:            1,
	Height:            170,
	Weight:            65,
	BloodPressureHigh: 120,
	BloodPressureLow:  80,
	BloodSugar:        95,
}

func TestUserHealthCheckHandlers_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("latest and history", func(t *testing.T) {
		h, m := newUserHealthCheckHandlers(ctrl)
		m.reader.EXPECT().Latest(gomock.Any(), int64(1)).Return(latestRecord, nil)
		m.reader.EXPECT().History(gomock.Any(), int64(1)).Return([]models.HealthCheckDB{*latestRecord, {ID: 1, UserID: 1, Height: 168.5}}, nil)

		rr := httptest.NewRecorder()
		h.Get(rr, withSession(httptest.NewRequest(http.MethodGet, "/user/healthcheck", nil), testSession))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Hello, alice")
		assert.Contains(t, body, "Blood pressure: 120/80")
		assert.Contains(t, body, "168.5")
		assert.Contains(t, body, `name="menu"`)
	})

	t.Run("no record yet", func(t *testing.T) {
		h, m := newUserHealthCheckHandlers(ctrl)
		m.reader.EXPECT().Latest(gomock.Any(), int64(1)).Return(nil, nil)
		m.reader.EXPECT().History(gomock.Any(), int64(1)).Return(nil, nil)

		rr := httptest.NewRecorder()
		h.Get(rr, withSession(httptest.NewRequest(http.MethodGet, "/user/healthcheck", nil), testSession))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "No health check recorded yet.")
	})

	t.Run("storage error", func(t *testing.T) {
		h, m := newUserHealthCheckHandlers(ctrl)
		m.reader.EXPECT().Latest(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))

		rr := httptest.NewRecorder()
		h.Get(rr, withSession(httptest.NewRequest(http.MethodGet, "/user/healthcheck", nil), testSession))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestUserHealthCheckHandlers_PostMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("suggestion rendered", func(t *testing.T) {
		h, m := newUserHealthCheckHandlers(ctrl)
		m.reader.EXPECT().Latest(gomock.Any(), int64(1)).Return(latestRecord, nil)
		m.meals.EXPECT().Suggest(gomock.Any(), latestRecord).Return("Breakfast: oats<br>Lunch: fish &amp; rice", nil)
		m.reader.EXPECT().History(gomock.Any(), int64(1)).Return([]models.HealthCheckDB{*latestRecord}, nil)

		rr := httptest.NewRecorder()
		h.Post(rr, withSession(newFormRequest(http.MethodPost, "/user/healthcheck", url.Values{"menu": {"1"}}), testSession))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Breakfast: oats<br>Lunch: fish &amp; rice")
	})

	t.Run("fallback rendered", func(t *testing.T) {
		h, m := newUserHealthCheckHandlers(ctrl)
		m.reader.EXPECT().Latest(gomock.Any(), int64(1)).Return(latestRecord, nil)
		m.meals.EXPECT().Suggest(gomock.Any(), latestRecord).Return("Could not generate a menu recommendation.", nil)
		m.reader.EXPECT().History(gomock.Any(), int64(1)).Return(nil, nil)

		rr := httptest.NewRecorder()
		h.Post(rr, withSession(newFormRequest(http.MethodPost, "/user/healthcheck", url.Values{"menu": {"1"}}), testSession))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Could not generate a menu recommendation.")
	})

	t.Run("no record renders notice without calling the service", func(t *testing.T) {
		h, m := newUserHealthCheckHandlers(ctrl)
		m.reader.EXPECT().Latest(gomock.Any(), int64(1)).Return(nil, nil)
		m.reader.EXPECT().History(gomock.Any(), int64(1)).Return(nil, nil)

		rr := httptest.NewRecorder()
		h.Post(rr, withSession(newFormRequest(http.MethodPost, "/user/healthcheck", url.Values{"menu": {"1"}}), testSession))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), noHealthCheckNotice)
	})
}

func TestUserHealthCheckHandlers_PostHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("stored", func(t *testing.T) {
		h, m := newUserHealthCheckHandlers(ctrl)
		m.appender.EXPECT().Append(gomock.Any(), int64(1), formMeasurements).Return(int64(4), nil)

		form := measurementForm()
		form.Set("healthcheck", "1")
		rr := httptest.NewRecorder()
		h.Post(rr, withSession(newFormRequest(http.MethodPost, "/user/healthcheck", form), testSession))

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/user/healthcheck", rr.Header().Get("Location"))
	})

	t.Run("stored without the healthcheck flag", func(t *testing.T) {
		h, m := newUserHealthCheckHandlers(ctrl)
		m.appender.EXPECT().Append(gomock.Any(), int64(1), formMeasurements).Return(int64(5), nil)

		rr := httptest.NewRecorder()
		h.Post(rr, withSession(newFormRequest(http.MethodPost, "/user/healthcheck", measurementForm()), testSession))

		assert.Equal(t, http.StatusSeeOther, rr.Code)
	})

	t.Run("invalid value", func(t *testing.T) {
		h, _ := newUserHealthCheckHandlers(ctrl)

		form := measurementForm()
		form.Set("healthcheck", "1")
		form.Set("height", "tall")
		rr := httptest.NewRecorder()
		h.Post(rr, withSession(newFormRequest(http.MethodPost, "/user/healthcheck", form), testSession))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, ErrorResponse{Error: "height: must be a number", Field: models.FieldHeight}, decodeError(t, rr))
	})

	t.Run("neither flag renders the page", func(t *testing.T) {
		h, m := newUserHealthCheckHandlers(ctrl)
		m.reader.EXPECT().Latest(gomock.Any(), int64(1)).Return(nil, nil)
		m.reader.EXPECT().History(gomock.Any(), int64(1)).Return(nil, nil)

		rr := httptest.NewRecorder()
		h.Post(rr, withSession(newFormRequest(http.MethodPost, "/user/healthcheck", url.Values{}), testSession))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
