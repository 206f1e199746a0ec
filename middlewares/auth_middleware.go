// middlewares/auth_middleware.go
package middlewares

import (
	"strings"

	"nutriscan/models"
	"nutriscan/services"
	"nutriscan/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const userKey = "user"

// Protect requires a valid bearer token and loads its user onto the context.
// Websocket upgrades may pass the token as ?token= since browsers cannot set headers there.
func Protect(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		} else if websocket.IsWebSocketUpgrade(c.Request) {
			token = c.Query("token")
		}
		if token == "" {
			_ = c.Error(utils.Unauthorized("Not authorized to access this route"))
			c.Abort()
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// RestrictTo allows only the listed roles past this point.
func RestrictTo(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		for _, r := range roles {
			if user != nil && user.Role == r {
				c.Next()
				return
			}
		}
		_ = c.Error(utils.Forbidden("You do not have permission to perform this action"))
		c.Abort()
	}
}

// CurrentUser returns the user set by Protect, or nil on unprotected routes.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}
