package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-health-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-health-tracker/internal/logger"
	"github.com/sbilibin2017/gw-health-tracker/internal/models"
	"github.com/sbilibin2017/gw-health-tracker/internal/services"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// LoginPath is where anonymous clients are sent.
const LoginPath = "/login"

// Tokener extracts the session token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Authenticator resolves a session token to an active session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Session, error)
}

type sessionKey struct{}

// WithSession stores the session in the context.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session of the request, or nil for anonymous requests.
func SessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(sessionKey{}).(*models.Session)
	return session
}

// resolveSession returns the session of the request. A nil session with a nil
// error means the client is anonymous.
func resolveSession(ctx context.Context, tokener Tokener, auth Authenticator, r *http.Request) (*models.Session, bool, error) {
	token, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, false, nil
	}

	session, err := auth.Authenticate(ctx, token)
	if err != nil {
		if errors.Is(err, services.ErrUnauthenticated) {
			return nil, true, nil
		}
		return nil, true, err
	}
	return session, true, nil
}

// AuthMiddleware lets only authenticated requests through and redirects
// anonymous clients to the login page.
func AuthMiddleware(tokener Tokener, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			session, hadToken, err := resolveSession(ctx, tokener, auth, r)
			if err != nil {
				logger.Log.Errorw("session lookup failed", "error", err)
				writeInternalError(w)
				return
			}

			if session == nil {
				logger.Log.Debugw("unauthenticated request", "uri", r.RequestURI)
				if hadToken {
					http.SetCookie(w, jwt.ExpiredCookie())
				}
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, session)))
		})
	}
}

// GuestOnlyMiddleware redirects authenticated clients to redirectTo.
func GuestOnlyMiddleware(tokener Tokener, auth Authenticator, redirectTo string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, _, err := resolveSession(r.Context(), tokener, auth, r)
			if err != nil {
				logger.Log.Errorw("session lookup failed", "error", err)
			}

			if session != nil {
				http.Redirect(w, r, redirectTo, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
