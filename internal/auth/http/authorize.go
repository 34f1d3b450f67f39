package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
	authUseCase "github.com/collabhub/collabhub/internal/auth/usecase"
	apperrors "github.com/collabhub/collabhub/internal/errors"
	"github.com/collabhub/collabhub/internal/httputil"
)

// ResourceIDExtractor recovers the project ID a request targets. Returns
// (id, true) on success, or (uuid.Nil, false) when the request carries no
// usable project reference. Each route that declares a scoped requirement
// supplies its own extractor, since routes reference projects differently
// (path parameter, query parameter, request body field).
type ResourceIDExtractor func(c *gin.Context) (uuid.UUID, bool)

// ScopedRequirement pairs acceptable project-scoped permissions with the
// extractor that identifies which project the request targets.
type ScopedRequirement struct {
	Keys      []authDomain.ProjectPermissionKey
	ExtractID ResourceIDExtractor
}

// Requirement declares what a route demands from the caller. Global and
// Scoped are alternatives: satisfying either one grants access. A zero
// Requirement demands nothing satisfiable and denies every caller.
type Requirement struct {
	Global []authDomain.PermissionKey
	Scoped *ScopedRequirement
}

// RequirePermissions builds the authorization middleware for one route.
//
// Resolution order:
// 1. No verified identity in context → 401, no grant lookup is performed
// 2. Caller holds any permission in requirement.Global → allow
// 3. Otherwise, if a scoped requirement is declared, run its extractor;
//    on success, look up the caller's permissions for that project and
//    allow when any required key is held
// 4. Everything else → 403
//
// The scoped branch is lazy: the extractor and the project grant lookup run
// only after the global branch failed. A grant store failure surfaces as 500,
// never as a denial, since the caller's rights are unknown at that point.
//
// Usage:
//
//	router.PUT("/api/v1/projects/:id",
//	    RequirePermissions(grantRepo, Requirement{
//	        Global: []authDomain.PermissionKey{authDomain.ManageAllProjects},
//	        Scoped: &ScopedRequirement{
//	            Keys:      []authDomain.ProjectPermissionKey{authDomain.EditProject},
//	            ExtractID: ProjectIDFromParam("id"),
//	        },
//	    }, logger),
//	    handler)
func RequirePermissions(
	grantRepo authUseCase.GrantRepository,
	requirement Requirement,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c.Request.Context())
		if !ok || identity == nil {
			logger.Debug("authorization failed: no verified identity in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if len(requirement.Global) > 0 {
			held, err := grantRepo.GlobalPermissions(c.Request.Context(), identity.UserID)
			if err != nil {
				logger.Error("authorization failed: global grant lookup",
					slog.String("user_id", identity.UserID.String()),
					slog.String("error", err.Error()))
				httputil.HandleErrorGin(c, err, logger)
				c.Abort()
				return
			}
			if authDomain.HasAnyPermission(held, requirement.Global) {
				c.Next()
				return
			}
		}

		if requirement.Scoped != nil && len(requirement.Scoped.Keys) > 0 {
			projectID, found := requirement.Scoped.ExtractID(c)
			if found {
				held, err := grantRepo.ProjectPermissions(
					c.Request.Context(), identity.UserID, projectID)
				if err != nil {
					logger.Error("authorization failed: project grant lookup",
						slog.String("user_id", identity.UserID.String()),
						slog.String("project_id", projectID.String()),
						slog.String("error", err.Error()))
					httputil.HandleErrorGin(c, err, logger)
					c.Abort()
					return
				}
				if authDomain.HasAnyProjectPermission(held, requirement.Scoped.Keys) {
					c.Next()
					return
				}
			} else {
				logger.Debug("authorization: no project reference in request",
					slog.String("user_id", identity.UserID.String()),
					slog.String("path", c.Request.URL.Path))
			}
		}

		logger.Debug("authorization failed: insufficient permissions",
			slog.String("user_id", identity.UserID.String()),
			slog.String("path", c.Request.URL.Path))
		httputil.HandleErrorGin(c, authDomain.ErrNoPermission, logger)
		c.Abort()
	}
}
