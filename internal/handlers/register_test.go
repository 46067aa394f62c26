package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-health-tracker/internal/models"
	"github.com/sbilibin2017/gw-health-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		form             url.Values
		mockSetup        func(m *MockRegisterer)
		expectedCode     int
		expectedLocation string
		expectedBody     ErrorResponse
	}{
		{
			name: "success",
			form: url.Values{"username": {"john"}, "password": {"secret"}},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "john", "secret").
					Return(&models.UserDB{ID: 1, Username: "john"}, nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/login",
		},
		{
			name: "missing password",
			form: url.Values{"username": {"john"}},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "john", "").Return(nil, services.ErrMissingCredentials)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: ErrorResponse{Error: "missing username or password"},
		},
		{
			name: "user already exists",
			form: url.Values{"username": {"alice"}, "password": {"pass"}},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "alice", "pass").Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: ErrorResponse{Error: "username already exists"},
		},
		{
			name: "internal server error",
			form: url.Values{"username": {"bob"}, "password": {"pass"}},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "bob", "pass").Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockRegisterer(ctrl)
			tt.mockSetup(svc)

			rr := httptest.NewRecorder()
			NewRegisterHandler(svc).ServeHTTP(rr, newFormRequest(http.MethodPost, "/register", tt.form))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
				return
			}
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, decodeError(t, rr))
		})
	}
}

func TestRegisterPageHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewRegisterPageHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/register", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), `action="/register"`)
}

func TestUsersPageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("lists users", func(t *testing.T) {
		svc := NewMockUserLister(ctrl)
		svc.EXPECT().ListUsers(gomock.Any()).Return([]models.UserDB{
			{ID: 1, Username: "alice"},
			{ID: 2, Username: "<bob>"},
		}, nil)

		rr := httptest.NewRecorder()
		NewUsersPageHandler(svc).ServeHTTP(rr, withSession(httptest.NewRequest(http.MethodGet, "/user", nil), testSession))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "alice")
		assert.Contains(t, rr.Body.String(), "&lt;bob&gt;")
		assert.NotContains(t, rr.Body.String(), "<bob>")
	})

	t.Run("service error", func(t *testing.T) {
		svc := NewMockUserLister(ctrl)
		svc.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("db error"))

		rr := httptest.NewRecorder()
		NewUsersPageHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/user", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, ErrorResponse{Error: "Internal server error"}, decodeError(t, rr))
	})
}

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("created", func(t *testing.T) {
		svc := NewMockRegisterer(ctrl)
		svc.EXPECT().Register(gomock.Any(), "carol", "pw").Return(&models.UserDB{ID: 3, Username: "carol"}, nil)

		rr := httptest.NewRecorder()
		NewCreateUserHandler(svc).ServeHTTP(rr, newFormRequest(http.MethodPost, "/user", url.Values{"username": {"carol"}, "password": {"pw"}}))

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/user", rr.Header().Get("Location"))
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := NewMockRegisterer(ctrl)
		svc.EXPECT().Register(gomock.Any(), "carol", "pw").Return(nil, services.ErrUserAlreadyExists)

		rr := httptest.NewRecorder()
		NewCreateUserHandler(svc).ServeHTTP(rr, newFormRequest(http.MethodPost, "/user", url.Values{"username": {"carol"}, "password": {"pw"}}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, ErrorResponse{Error: "username already exists"}, decodeError(t, rr))
	})
}
