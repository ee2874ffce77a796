package router

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/dtroode/staffhub-server/internal/api/http/handler"
	"github.com/dtroode/staffhub-server/internal/api/http/middleware"
	"github.com/dtroode/staffhub-server/internal/api/http/response"
	"github.com/dtroode/staffhub-server/internal/logger"
	"github.com/dtroode/staffhub-server/internal/model"
	"github.com/dtroode/staffhub-server/internal/service"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services groups the application services exposed over HTTP.
type Services struct {
	Auth    *service.Auth
	Account *service.Account
	Users   *service.Users
	Posts   *service.Posts
	Tokens  *service.TokenService
}

// Options tune the HTTP surface.
type Options struct {
	CORSAllowedOrigins []string
	MaxUploadBytes     int64
	// ProtectAdminRoutes requires an admin bearer token on /addnew and /users.
	ProtectAdminRoutes bool
}

// Router builds the HTTP handler of the server.
type Router struct {
	services       Services
	checks         map[string]Pinger
	contextManager model.ContextManager
	registry       *prometheus.Registry
	options        Options
	logger         *logger.Logger
}

// New creates new Router instance. checks are the dependencies probed by /healthz.
func New(
	services Services,
	checks map[string]Pinger,
	contextManager model.ContextManager,
	registry *prometheus.Registry,
	options Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		checks:         checks,
		contextManager: contextManager,
		registry:       registry,
		options:        options,
		logger:         logger,
	}
}

// Register registers all routes and wraps them with CORS, metrics and request logging.
func (rt *Router) Register() http.Handler {
	mux := http.NewServeMux()

	authenticate := middleware.NewAuthenticate(rt.services.Tokens, rt.contextManager, rt.logger)
	admin := func(h http.HandlerFunc) http.Handler { return h }
	if rt.options.ProtectAdminRoutes {
		requireAdmin := middleware.NewRequireAdmin(rt.services.Users, rt.contextManager, rt.logger)
		admin = func(h http.HandlerFunc) http.Handler {
			return authenticate.Handle(requireAdmin.Handle(h))
		}
	}
	bearer := func(h http.HandlerFunc) http.Handler { return authenticate.Handle(h) }

	rt.registerAuthRoutes(mux, admin)
	rt.registerUserRoutes(mux, admin)
	rt.registerAccountRoutes(mux, bearer)
	rt.registerPostRoutes(mux, bearer)
	rt.registerOpsRoutes(mux)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: rt.options.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(mux)

	metrics := middleware.NewMetrics(rt.registry)
	logging := middleware.NewLogging(rt.logger)

	return logging.Handle(metrics.Handle(corsHandler))
}

func (rt *Router) registerAuthRoutes(mux *http.ServeMux, admin func(http.HandlerFunc) http.Handler) {
	h := handler.NewAuth(rt.services.Auth, rt.logger)
	mux.HandleFunc("POST /register", h.Register)
	mux.HandleFunc("POST /login", h.Login)
	mux.Handle("POST /addnew", admin(h.Provision))
}

func (rt *Router) registerUserRoutes(mux *http.ServeMux, admin func(http.HandlerFunc) http.Handler) {
	h := handler.NewUsers(rt.services.Users, rt.logger)
	mux.Handle("GET /users", admin(h.List))
	mux.Handle("GET /users/{id}", admin(h.Get))
	mux.Handle("PUT /users/{id}", admin(h.Update))
	mux.Handle("DELETE /users/{id}", admin(h.Delete))
}

func (rt *Router) registerAccountRoutes(mux *http.ServeMux, bearer func(http.HandlerFunc) http.Handler) {
	h := handler.NewAccount(rt.services.Account, rt.contextManager, rt.options.MaxUploadBytes, rt.logger)
	mux.Handle("GET /account", bearer(h.GetAccount))
	mux.Handle("POST /account/update", bearer(h.UpdateAccount))
	mux.HandleFunc("GET /uploads/{key...}", h.Picture)
}

func (rt *Router) registerPostRoutes(mux *http.ServeMux, bearer func(http.HandlerFunc) http.Handler) {
	h := handler.NewPosts(rt.services.Posts, rt.contextManager, rt.logger)
	mux.Handle("POST /create-post", bearer(h.Create))
	mux.Handle("GET /read-post", bearer(h.ListOwn))
	mux.Handle("GET /read-post/{$}", bearer(h.ListOwn))
	mux.HandleFunc("GET /post/{id}", h.Get)
	mux.Handle("PUT /post/{id}", bearer(h.Update))
	mux.Handle("DELETE /post/{id}", bearer(h.Delete))
}

func (rt *Router) registerOpsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", rt.health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(rt.registry, promhttp.HandlerOpts{Registry: rt.registry}))
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func (rt *Router) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(rt.checks))}
	status := http.StatusOK

	for name, p := range rt.checks {
		if err := p.Ping(r.Context()); err != nil {
			rt.logger.Error("Router: health check failed", "check", name, "error", err.Error())
			resp.Checks[name] = "unavailable"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	response.JSON(w, status, resp)
}
