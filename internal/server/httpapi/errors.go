package httpapi

import (
	"errors"
	"net/http"

	"github.com/alexsk87/notehub/internal/common"
	"github.com/gin-gonic/gin"
)

// abortWithError maps a service error to an HTTP response. Taxonomy errors
// cross the boundary with their code and a fixed message; anything else is
// logged with full detail and surfaced as a generic 500.
func (s *Server) abortWithError(c *gin.Context, err error) {
	status, message := clientError(err)
	if status == http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "internal error",
			"method", c.Request.Method, "path", c.FullPath(), "error", err.Error())
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func clientError(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, "validation error"
	case errors.Is(err, common.ErrorMalformedAuthHeader):
		return http.StatusBadRequest, "invalid auth header format"
	case errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, "token expired"
	case errors.Is(err, common.ErrTokenMalformed), errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, common.ErrorUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, common.ErrorInvalidCredentials):
		return http.StatusUnauthorized, "invalid login/password"
	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict, "account already exists"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
