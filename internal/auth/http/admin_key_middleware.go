// Package http provides HTTP middleware for the admin API surface and for
// rate limiting the public link endpoints.
package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authService "github.com/estudiomov/linkgate/internal/auth/service"
	apperrors "github.com/estudiomov/linkgate/internal/errors"
	"github.com/estudiomov/linkgate/internal/httputil"
)

// AdminKeyMiddleware protects admin routes with a single operator API key.
//
// The middleware extracts a Bearer key from the Authorization header
// (case-insensitive) and verifies it against the configured Argon2id hash.
// An empty configured hash disables the admin surface entirely, so every
// request is rejected with 401.
//
// Authorization header format: "Bearer <key>" (case-insensitive "bearer")
func AdminKeyMiddleware(
	apiKeyService authService.APIKeyService,
	adminKeyHash string,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKeyHash == "" {
			logger.Debug("admin request rejected: no admin key configured")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("admin request rejected: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("admin request rejected: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		plainKey := authHeader[len(bearerPrefix):]
		if plainKey == "" || !apiKeyService.VerifyKey(plainKey, adminKeyHash) {
			logger.Debug("admin request rejected: invalid key")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
