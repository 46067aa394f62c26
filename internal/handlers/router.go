package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sbilibin2017/gw-health-tracker/internal/middlewares"
	"go.uber.org/zap"
)

// AuthService is what the router needs from the authentication service.
type AuthService interface {
	Registerer
	Loginer
	Logouter
	UserLister
	middlewares.Authenticator
}

// HealthCheckStore is what the router needs from the health check service.
type HealthCheckStore interface {
	HealthCheckAppender
	HealthCheckLister
	HealthCheckGetter
}

// RouterConfig holds the dependencies of every route.
type RouterConfig struct {
	Log          *zap.SugaredLogger
	Tokener      middlewares.Tokener
	Auth         AuthService
	HealthChecks HealthCheckStore
	Meals        MealSuggester
	// Tx wraps write routes in a request transaction. Nil disables it.
	Tx func(http.Handler) http.Handler
}

// NewRouter builds the chi router with every page and form route.
func NewRouter(cfg RouterConfig) chi.Router {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	tx := cfg.Tx
	if tx == nil {
		tx = func(next http.Handler) http.Handler { return next }
	}

	userHealthCheck := NewUserHealthCheckHandlers(cfg.HealthChecks, cfg.HealthChecks, cfg.Meals)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	// Public routes
	r.Get("/register", NewRegisterPageHandler())
	r.With(tx).Post("/register", NewRegisterHandler(cfg.Auth))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.GuestOnlyMiddleware(cfg.Tokener, cfg.Auth, "/"))
		r.Get("/login", NewLoginPageHandler())
		r.Post("/login", NewLoginHandler(cfg.Auth))
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(cfg.Tokener, cfg.Auth))

		r.Get("/", NewIndexHandler())
		r.Post("/logout", NewLogoutHandler(cfg.Auth))

		r.Get("/user", NewUsersPageHandler(cfg.Auth))
		r.With(tx).Post("/user", NewCreateUserHandler(cfg.Auth))

		r.Get("/healthcheck", NewHealthChecksPageHandler(cfg.HealthChecks))
		r.With(tx).Post("/healthcheck", NewCreateHealthCheckHandler(cfg.HealthChecks))

		r.Get("/new_healthcheck", NewNewHealthCheckPageHandler())
		r.With(tx).Post("/new_healthcheck", NewNewHealthCheckHandler(cfg.HealthChecks))

		r.Get("/user/healthcheck", userHealthCheck.Get)
		r.Post("/user/healthcheck", userHealthCheck.Post)
	})

	return r
}
