package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookie/middleware"
	"bookie/models"
	"bookie/services/booking"
	"bookie/utils"
)

// BookingHandler exposes the booking domain core over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	user, ok := middleware.AuthUser(c)
	if !ok {
		utils.RenderError(c, utils.NewAuthError(utils.MsgNotAuthenticated, ""))
		return
	}

	var details models.BookingCreate
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.RenderError(c, utils.NewValidationError(utils.MsgValidationError,
			map[string]interface{}{"errors": []string{err.Error()}}))
		return
	}

	id, err := h.Service.Create(details, *user)
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetBookings handles GET /bookings, optionally filtered by the `user`
// query parameter.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	bookings, err := h.Service.GetAll(c.Query("user"))
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.Get(c.Param("id"))
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBooking handles PUT /bookings/:id with partial-update semantics.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var details models.BookingUpdate
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.RenderError(c, utils.NewValidationError(utils.MsgValidationError,
			map[string]interface{}{"errors": []string{err.Error()}}))
		return
	}

	if err := h.Service.Update(c.Param("id"), details); err != nil {
		utils.RenderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteBooking handles DELETE /bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		utils.RenderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteBookings handles DELETE /bookings with repeated `booking` query
// parameters. Idempotent over the list: absent ids are ignored.
func (h *BookingHandler) DeleteBookings(c *gin.Context) {
	ids := c.QueryArray("booking")
	if err := h.Service.DeleteMany(ids); err != nil {
		utils.RenderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
