package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hyeonju-dev/auth-server/internal/api/http/handler"
	"github.com/hyeonju-dev/auth-server/internal/api/http/middleware"
	"github.com/hyeonju-dev/auth-server/internal/logger"
	"github.com/hyeonju-dev/auth-server/internal/model"
	"github.com/hyeonju-dev/auth-server/internal/service"
)

// Router wires handlers and middleware into the HTTP mux.
type Router struct {
	authService    *service.Auth
	signupService  *service.Signup
	codec          model.TokenCodec
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	signupService *service.Signup,
	codec model.TokenCodec,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		signupService:  signupService,
		codec:          codec,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the mux with request logging on every route and token
// authentication on everything outside /api/auth.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.codec, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.signupService, r.logger)
	userHandler := handler.NewUser(r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(logging.Handle)

	mux.Route("/api/auth", func(mux chi.Router) {
		mux.Post("/signup", authHandler.Signup)
		mux.Post("/login", authHandler.Login)
		mux.Post("/reissue", authHandler.Reissue)
	})

	mux.Route("/api/users", func(mux chi.Router) {
		mux.Use(authenticate.Handle)
		mux.Get("/me", userHandler.Me)
	})

	return mux
}
