package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
	authService "github.com/collabhub/collabhub/internal/auth/service"
	apperrors "github.com/collabhub/collabhub/internal/errors"
	"github.com/collabhub/collabhub/internal/httputil"
)

// AuthenticationMiddleware gates every route behind bearer-token verification.
//
// The middleware:
// 1. Lets whitelisted sign-up/sign-in routes through without touching credentials
// 2. Extracts the Bearer token from the Authorization header (case-insensitive)
// 3. Verifies the token signature, issuer and expiration via tokenService.Verify()
// 4. Stores the verified identity in the request context
// 5. Allows downstream middleware and handlers to access it via GetIdentity()
//
// Authorization header format: "Bearer <token>" (case-insensitive "bearer")
//
// Error handling:
//   - Missing Authorization header → 401 Unauthorized
//   - Malformed Authorization header → 401 Unauthorized
//   - Invalid/expired/forged token → 401 Unauthorized
//
// On a public route the request proceeds with no identity attached, even when
// the Authorization header is present but garbage.
func AuthenticationMiddleware(
	tokenService authService.TokenService,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isPublicRoute(c.Request.URL.Path) {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		// Parse Bearer token (case-insensitive)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		token := authHeader[len(bearerPrefix):]
		if token == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		userID, err := tokenService.Verify(token)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithIdentity(c.Request.Context(), &authDomain.Identity{UserID: userID})
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("user_id", userID.String()))

		c.Next()
	}
}
