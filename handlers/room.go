package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	roomRepo "bookie/database/repository/room"
	"bookie/utils"
)

// RoomHandler serves the read-only room surface. Rooms carry no invariants
// beyond existence, so the handler talks to the repository directly.
type RoomHandler struct {
	Repo roomRepo.RoomRepository
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(repo roomRepo.RoomRepository) *RoomHandler {
	return &RoomHandler{Repo: repo}
}

// GetRooms handles GET /rooms.
func (h *RoomHandler) GetRooms(c *gin.Context) {
	rooms, err := h.Repo.GetAll()
	if err != nil {
		utils.RenderError(c, utils.NewInternalError(map[string]interface{}{"error": err.Error()}))
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom handles GET /rooms/:id.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id := c.Param("id")
	room, err := h.Repo.GetByID(id)
	if err != nil {
		utils.RenderError(c, utils.NewInternalError(map[string]interface{}{"error": err.Error()}))
		return
	}
	if room == nil {
		utils.RenderError(c, utils.NewNotFoundError(utils.MsgRoomNotFound,
			map[string]interface{}{"room": map[string]interface{}{"id": id}}))
		return
	}
	c.JSON(http.StatusOK, room)
}
