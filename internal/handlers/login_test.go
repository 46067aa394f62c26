package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-health-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-health-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		form         url.Values
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectCookie bool
		expectedText string
	}{
		{
			name: "success",
			form: url.Values{"username": {"john"}, "password": {"secret"}},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "secret").Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusSeeOther,
			expectCookie: true,
		},
		{
			name: "invalid credentials",
			form: url.Values{"username": {"john"}, "password": {"wrong"}},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "wrong").Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedText: "Invalid username or password",
		},
		{
			name: "internal server error",
			form: url.Values{"username": {"john"}, "password": {"secret"}},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "secret").Return("", errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedText: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockLoginer(ctrl)
			tt.mockSetup(svc)

			rr := httptest.NewRecorder()
			NewLoginHandler(svc).ServeHTTP(rr, newFormRequest(http.MethodPost, "/login", tt.form))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedText)

			cookies := rr.Result().Cookies()
			if !tt.expectCookie {
				assert.Empty(t, cookies)
				return
			}
			assert.Equal(t, "/", rr.Header().Get("Location"))
			require.Len(t, cookies, 1)
			assert.Equal(t, jwt.CookieName, cookies[0].Name)
			assert.Equal(t, "JWT_TOKEN", cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
		})
	}
}

func TestLoginHandler_SameMessageForUnknownUserAndWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockLoginer(ctrl)
	svc.EXPECT().Login(gomock.Any(), "ghost", "x").Return("", services.ErrInvalidCredentials)
	svc.EXPECT().Login(gomock.Any(), "john", "x").Return("", services.ErrInvalidCredentials)

	unknown := httptest.NewRecorder()
	NewLoginHandler(svc).ServeHTTP(unknown, newFormRequest(http.MethodPost, "/login", url.Values{"username": {"ghost"}, "password": {"x"}}))
	wrong := httptest.NewRecorder()
	NewLoginHandler(svc).ServeHTTP(wrong, newFormRequest(http.MethodPost, "/login", url.Values{"username": {"john"}, "password": {"x"}}))

	assert.Equal(t, unknown.Code, wrong.Code)
	assert.Contains(t, unknown.Body.String(), errInvalidCredentials)
	assert.Contains(t, wrong.Body.String(), errInvalidCredentials)
}

func TestLoginPageHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewLoginPageHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `action="/login"`)
	assert.NotContains(t, rr.Body.String(), errInvalidCredentials)
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("ends session", func(t *testing.T) {
		svc := NewMockLogouter(ctrl)
		svc.EXPECT().Logout(gomock.Any(), "sid-1").Return(nil)

		rr := httptest.NewRecorder()
		NewLogoutHandler(svc).ServeHTTP(rr, withSession(httptest.NewRequest(http.MethodPost, "/logout", nil), testSession))

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/login", rr.Header().Get("Location"))
		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, jwt.CookieName, cookies[0].Name)
		assert.Less(t, cookies[0].MaxAge, 0)
	})

	t.Run("session store error", func(t *testing.T) {
		svc := NewMockLogouter(ctrl)
		svc.EXPECT().Logout(gomock.Any(), "sid-1").Return(errors.New("redis down"))

		rr := httptest.NewRecorder()
		NewLogoutHandler(svc).ServeHTTP(rr, withSession(httptest.NewRequest(http.MethodPost, "/logout", nil), testSession))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestIndexHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewIndexHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/user/healthcheck", rr.Header().Get("Location"))
}
