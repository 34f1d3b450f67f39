package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	activityHTTP "github.com/collabhub/collabhub/internal/activitylog/http"
	apikeyHTTP "github.com/collabhub/collabhub/internal/apikey/http"
	apikeyUseCase "github.com/collabhub/collabhub/internal/apikey/usecase"
	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
	authHTTP "github.com/collabhub/collabhub/internal/auth/http"
	authService "github.com/collabhub/collabhub/internal/auth/service"
	authUseCase "github.com/collabhub/collabhub/internal/auth/usecase"
	"github.com/collabhub/collabhub/internal/config"
	contributorHTTP "github.com/collabhub/collabhub/internal/contributor/http"
	groupHTTP "github.com/collabhub/collabhub/internal/group/http"
	"github.com/collabhub/collabhub/internal/metrics"
	projectHTTP "github.com/collabhub/collabhub/internal/project/http"
	projectGroupHTTP "github.com/collabhub/collabhub/internal/projectgroup/http"
	userHTTP "github.com/collabhub/collabhub/internal/user/http"
)

// Handlers bundles the route handlers the server exposes.
type Handlers struct {
	Auth         *authHTTP.AuthHandler
	User         *userHTTP.UserHandler
	Group        *groupHTTP.GroupHandler
	Project      *projectHTTP.ProjectHandler
	ProjectGroup *projectGroupHTTP.ProjectGroupHandler
	Contributor  *contributorHTTP.ContributorHandler
	APIKey       *apikeyHTTP.APIKeyHandler
	ActivityLog  *activityHTTP.ActivityLogHandler
}

// Dependencies carries everything the server needs to build its router.
type Dependencies struct {
	Config          *config.Config
	Logger          *slog.Logger
	TokenService    authService.TokenService
	GrantRepository authUseCase.GrantRepository
	APIKeyUseCase   apikeyUseCase.APIKeyUseCase
	MetricsProvider *metrics.Provider // nil when metrics are disabled
	Handlers        Handlers
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new API server with the full route table registered.
func NewServer(deps Dependencies) *Server {
	router := buildRouter(deps)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", deps.Config.ServerHost, deps.Config.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: deps.Logger,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the API HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// buildRouter assembles the middleware chain and the route table.
//
// Middleware order matters: request ID first so every log line carries it,
// CORS before authentication so preflights never need credentials, then
// logging, recovery and metrics, and finally the authentication gate on the
// /api group. Authorization is declared per route.
func buildRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	logger := deps.Logger
	h := deps.Handlers

	router := gin.New()
	router.Use(requestid.New())

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.Use(CustomLoggerMiddleware(logger))
	router.Use(gin.Recovery())

	if deps.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(
			deps.MetricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", healthHandler)
	router.GET("/ready", readinessHandler)

	// Ingestion surface: authenticated by project API key, not by bearer token.
	ingest := router.Group("/ingest")
	ingest.Use(apikeyHTTP.APIKeyAuthenticationMiddleware(deps.APIKeyUseCase, logger))
	ingest.POST("/v1/activity-logs", h.ActivityLog.IngestHandler)

	// User surface: every route below passes the bearer-token gate; the
	// sign-up/sign-in whitelist is enforced inside the middleware.
	api := router.Group("/api")
	api.Use(authHTTP.AuthenticationMiddleware(deps.TokenService, logger))
	if cfg.RateLimitEnabled {
		api.Use(authHTTP.RateLimitMiddleware(
			cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, logger))
	}

	requireGlobal := func(keys ...authDomain.PermissionKey) gin.HandlerFunc {
		return authHTTP.RequirePermissions(deps.GrantRepository,
			authHTTP.Requirement{Global: keys}, logger)
	}
	require := func(requirement authHTTP.Requirement) gin.HandlerFunc {
		return authHTTP.RequirePermissions(deps.GrantRepository, requirement, logger)
	}

	v1 := api.Group("/v1")

	// Authentication
	auth := v1.Group("/auth")
	if cfg.RateLimitSignInEnabled {
		signInLimiter := authHTTP.SignInRateLimitMiddleware(
			cfg.RateLimitSignInRequestsPerSec, cfg.RateLimitSignInBurst, logger)
		auth.POST("/sign-up", signInLimiter, h.Auth.SignUpHandler)
		auth.POST("/sign-in", signInLimiter, h.Auth.SignInHandler)
	} else {
		auth.POST("/sign-up", h.Auth.SignUpHandler)
		auth.POST("/sign-in", h.Auth.SignInHandler)
	}
	auth.GET("/me", h.Auth.MeHandler)

	// User administration
	v1.GET("/users",
		requireGlobal(authDomain.ManageUserAccess),
		h.User.ListHandler)
	v1.GET("/users/:id",
		requireGlobal(authDomain.ManageUserAccess),
		h.User.GetHandler)

	// Global permission groups
	v1.POST("/groups",
		requireGlobal(authDomain.ManageUserAccess),
		h.Group.CreateHandler)
	v1.GET("/groups",
		requireGlobal(authDomain.ManageUserAccess),
		h.Group.ListHandler)
	v1.GET("/groups/:id",
		requireGlobal(authDomain.ManageUserAccess),
		h.Group.GetHandler)
	v1.PUT("/groups/:id/members",
		requireGlobal(authDomain.ManageUserAccess),
		h.Group.UpdateMembersHandler)

	// Projects
	v1.POST("/projects",
		requireGlobal(authDomain.ManageAllProjects),
		h.Project.CreateHandler)
	v1.GET("/projects",
		requireGlobal(authDomain.ViewAllProjects, authDomain.ManageAllProjects),
		h.Project.ListHandler)
	v1.GET("/projects/:projectId",
		require(authHTTP.Requirement{
			Global: []authDomain.PermissionKey{
				authDomain.ViewAllProjects, authDomain.ManageAllProjects},
			Scoped: &authHTTP.ScopedRequirement{
				Keys: []authDomain.ProjectPermissionKey{
					authDomain.ViewProject, authDomain.EditProject, authDomain.ManageProject},
				ExtractID: authHTTP.ProjectIDFromParam("projectId"),
			},
		}),
		h.Project.GetHandler)
	v1.PUT("/projects/:projectId",
		require(authHTTP.Requirement{
			Global: []authDomain.PermissionKey{authDomain.ManageAllProjects},
			Scoped: &authHTTP.ScopedRequirement{
				Keys: []authDomain.ProjectPermissionKey{
					authDomain.EditProject, authDomain.ManageProject},
				ExtractID: authHTTP.ProjectIDFromParam("projectId"),
			},
		}),
		h.Project.UpdateHandler)
	v1.DELETE("/projects/:projectId",
		requireGlobal(authDomain.ManageAllProjects),
		h.Project.DeleteHandler)

	// Project-scoped permission groups
	v1.POST("/project-groups",
		require(authHTTP.Requirement{
			Global: []authDomain.PermissionKey{authDomain.ManageAllProjects},
			Scoped: &authHTTP.ScopedRequirement{
				Keys:      []authDomain.ProjectPermissionKey{authDomain.ManageProject},
				ExtractID: authHTTP.ProjectIDFromBody("project_id"),
			},
		}),
		h.ProjectGroup.CreateHandler)
	v1.GET("/project-groups",
		require(authHTTP.Requirement{
			Global: []authDomain.PermissionKey{
				authDomain.ViewAllProjects, authDomain.ManageAllProjects},
			Scoped: &authHTTP.ScopedRequirement{
				Keys: []authDomain.ProjectPermissionKey{
					authDomain.ViewProject, authDomain.EditProject, authDomain.ManageProject},
				ExtractID: authHTTP.ProjectIDFromQuery("project_id"),
			},
		}),
		h.ProjectGroup.ListHandler)
	v1.DELETE("/project-groups/:id",
		require(authHTTP.Requirement{
			Global: []authDomain.PermissionKey{authDomain.ManageAllProjects},
			Scoped: &authHTTP.ScopedRequirement{
				Keys:      []authDomain.ProjectPermissionKey{authDomain.ManageProject},
				ExtractID: authHTTP.ProjectIDFromQuery("project_id"),
			},
		}),
		h.ProjectGroup.DeleteHandler)

	// Contributors
	v1.GET("/contributors",
		require(authHTTP.Requirement{
			Global: []authDomain.PermissionKey{
				authDomain.ViewAllProjects, authDomain.ManageAllProjects},
			Scoped: &authHTTP.ScopedRequirement{
				Keys: []authDomain.ProjectPermissionKey{
					authDomain.ViewProject, authDomain.EditProject, authDomain.ManageProject},
				ExtractID: authHTTP.ProjectIDFromQuery("project_id"),
			},
		}),
		h.Contributor.ListHandler)
	v1.PUT("/contributors/:id",
		requireGlobal(authDomain.ManageAllProjects),
		h.Contributor.RenameHandler)

	// Project API keys
	v1.POST("/api-keys",
		require(authHTTP.Requirement{
			Global: []authDomain.PermissionKey{authDomain.ManageAllProjects},
			Scoped: &authHTTP.ScopedRequirement{
				Keys:      []authDomain.ProjectPermissionKey{authDomain.ManageProject},
				ExtractID: authHTTP.ProjectIDFromBody("project_id"),
			},
		}),
		h.APIKey.IssueHandler)
	v1.GET("/api-keys",
		require(authHTTP.Requirement{
			Global: []authDomain.PermissionKey{authDomain.ManageAllProjects},
			Scoped: &authHTTP.ScopedRequirement{
				Keys:      []authDomain.ProjectPermissionKey{authDomain.ManageProject},
				ExtractID: authHTTP.ProjectIDFromQuery("project_id"),
			},
		}),
		h.APIKey.ListHandler)
	v1.DELETE("/api-keys/:id",
		require(authHTTP.Requirement{
			Global: []authDomain.PermissionKey{authDomain.ManageAllProjects},
			Scoped: &authHTTP.ScopedRequirement{
				Keys:      []authDomain.ProjectPermissionKey{authDomain.ManageProject},
				ExtractID: authHTTP.ProjectIDFromQuery("project_id"),
			},
		}),
		h.APIKey.RevokeHandler)

	// Activity logs (query surface; ingestion lives under /ingest)
	v1.GET("/activity-logs",
		require(authHTTP.Requirement{
			Global: []authDomain.PermissionKey{
				authDomain.ViewAllProjects, authDomain.ManageAllProjects},
			Scoped: &authHTTP.ScopedRequirement{
				Keys: []authDomain.ProjectPermissionKey{
					authDomain.ViewProject, authDomain.EditProject, authDomain.ManageProject},
				ExtractID: authHTTP.ProjectIDFromQuery("project_id"),
			},
		}),
		h.ActivityLog.ListHandler)

	return router
}
