package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookie/services/auth"
)

// HandlerBundle groups every route handler plus the auth service the
// protected-route middleware needs.
type HandlerBundle struct {
	AuthService auth.AuthService

	// Booking endpoints.
	CreateBooking  gin.HandlerFunc
	GetBookings    gin.HandlerFunc
	GetBooking     gin.HandlerFunc
	UpdateBooking  gin.HandlerFunc
	DeleteBooking  gin.HandlerFunc
	DeleteBookings gin.HandlerFunc

	// Room endpoints.
	GetRooms gin.HandlerFunc
	GetRoom  gin.HandlerFunc

	// User endpoints.
	GetUsers gin.HandlerFunc
	GetUser  gin.HandlerFunc

	// Session endpoints.
	Login  gin.HandlerFunc
	Logout gin.HandlerFunc
}

// HealthHandler is a liveness probe.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
