package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devconnect-io/devconnect-api/pkg/apperror"
	"github.com/devconnect-io/devconnect-api/pkg/auth"
	"github.com/devconnect-io/devconnect-api/pkg/logger"
)

const (
	// HeaderAuthToken carries the raw token, no scheme prefix.
	HeaderAuthToken = "x-auth-token"

	GinContextKeyUserID = "userID"
)

// AuthMiddleware verifies the token header and binds the resolved user id
// into the gin context. It performs no store lookups.
func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {

		tokenString := c.GetHeader(HeaderAuthToken)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
			return
		}

		userID, err := jwtSvc.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
			return
		}

		c.Set(GinContextKeyUserID, userID)

		c.Next()
	}
}

func UserIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(GinContextKeyUserID)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return userID, true
}

// ErrorMiddleware renders the first collected error after the handler ran.
// Validation-shaped errors become an itemized list, anything unanticipated
// becomes a generic 500 whose detail only reaches the log.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unhandled error", err)
		}

		status := appErr.HTTPStatus()
		if status >= http.StatusInternalServerError {
			log.Error("request failed", err,
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			c.JSON(status, gin.H{"msg": "Server Error"})
			return
		}

		if len(appErr.Messages) > 0 {
			c.JSON(status, gin.H{"errors": appErr.Messages})
			return
		}
		c.JSON(status, gin.H{"msg": appErr.Message})
	}
}
