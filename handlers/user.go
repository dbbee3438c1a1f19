package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userRepo "bookie/database/repository/user"
	"bookie/utils"
)

// UserHandler serves the read-only user surface. Password digests and salts
// never serialise (json:"-" on the model).
type UserHandler struct {
	Repo userRepo.UserRepository
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(repo userRepo.UserRepository) *UserHandler {
	return &UserHandler{Repo: repo}
}

// GetUsers handles GET /users.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.Repo.GetAll()
	if err != nil {
		utils.RenderError(c, utils.NewInternalError(map[string]interface{}{"error": err.Error()}))
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")
	user, err := h.Repo.GetByID(id)
	if err != nil {
		utils.RenderError(c, utils.NewInternalError(map[string]interface{}{"error": err.Error()}))
		return
	}
	if user == nil {
		utils.RenderError(c, utils.NewNotFoundError(utils.MsgUserNotFound,
			map[string]interface{}{"user": map[string]interface{}{"id": id}}))
		return
	}
	c.JSON(http.StatusOK, user)
}
