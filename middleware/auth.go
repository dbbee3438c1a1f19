package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bookie/models"
	"bookie/services/auth"
	"bookie/utils"
)

// AuthUserKey is the gin context key holding the authenticated user.
const AuthUserKey = "authUser"

// AuthMiddleware extracts the bearer token and resolves it to a user via the
// auth service. Protected handlers read the user with AuthUser.
func AuthMiddleware(authService auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.RenderError(c, utils.NewAuthError(utils.MsgInvalidAuthMethod, ""))
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		user, err := authService.Authenticate(token)
		if err != nil {
			utils.RenderError(c, err)
			return
		}

		c.Set(AuthUserKey, user)
		c.Next()
	}
}

// AuthUser returns the authenticated user set by AuthMiddleware.
func AuthUser(c *gin.Context) (*models.User, bool) {
	val, ok := c.Get(AuthUserKey)
	if !ok {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
