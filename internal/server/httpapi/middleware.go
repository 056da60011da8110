package httpapi

import (
	"github.com/alexsk87/notehub/internal/server/auth"
	"github.com/gin-gonic/gin"
)

// identityMiddleware runs the request authenticator once per request. An
// absent Authorization header leaves the request anonymous; a malformed
// header or a bad token rejects the request before any handler executes.
func (s *Server) identityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := auth.AuthenticateHeader(c.GetHeader("Authorization"), s.jwtSecret)
		if err != nil {
			s.abortWithError(c, err)
			return
		}

		ctx := auth.WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
