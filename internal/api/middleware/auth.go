package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/legally-ai/legally/internal/domain"
	"github.com/legally-ai/legally/internal/service"
	"go.uber.org/zap"
)

// userKey is the gin context key holding the authenticated user
const userKey = "user"

// Auth returns a bearer-token authentication middleware. All failure
// modes map to a uniform 401; the specific cause only reaches the log.
func Auth(authService *service.AuthService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			unauthorized(c)
			return
		}

		user, err := authService.Authenticate(token)
		if err != nil {
			logger.Warn("authentication rejected",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			unauthorized(c)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Auth
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": domain.ErrUnauthorized.Error()})
}
