package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookie/middleware"
	"bookie/models"
	"bookie/services/auth"
	"bookie/utils"
)

// LoginHandler exposes the session lifecycle: POST /login and DELETE /login.
type LoginHandler struct {
	Auth auth.AuthService
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(authService auth.AuthService) *LoginHandler {
	return &LoginHandler{Auth: authService}
}

// Login handles POST /login. On success the fresh token travels back in the
// Authorization response header; the body stays empty.
func (h *LoginHandler) Login(c *gin.Context) {
	var creds models.UserAuth
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.RenderError(c, utils.NewValidationError(utils.MsgValidationError,
			map[string]interface{}{"errors": []string{err.Error()}}))
		return
	}

	token, err := h.Auth.Login(creds.Username, creds.Password)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.Status(http.StatusNoContent)
}

// Logout handles DELETE /login for the authenticated user.
func (h *LoginHandler) Logout(c *gin.Context) {
	user, ok := middleware.AuthUser(c)
	if !ok {
		utils.RenderError(c, utils.NewAuthError(utils.MsgNotAuthenticated, ""))
		return
	}

	if err := h.Auth.Logout(user); err != nil {
		utils.RenderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
