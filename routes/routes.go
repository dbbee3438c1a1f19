package routes

import (
	"github.com/gin-gonic/gin"

	"bookie/handlers"
	"bookie/metrics"
	"bookie/middleware"
)

// RegisterRoutes wires the full HTTP surface onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	authRequired := middleware.AuthMiddleware(hb.AuthService)

	bookings := r.Group("/bookings")
	{
		bookings.GET("", hb.GetBookings)
		bookings.GET("/:id", hb.GetBooking)
		bookings.POST("", authRequired, hb.CreateBooking)
		bookings.PUT("/:id", authRequired, hb.UpdateBooking)
		bookings.DELETE("", authRequired, hb.DeleteBookings)
		bookings.DELETE("/:id", authRequired, hb.DeleteBooking)
	}

	rooms := r.Group("/rooms")
	{
		rooms.GET("", hb.GetRooms)
		rooms.GET("/:id", hb.GetRoom)
	}

	users := r.Group("/users")
	{
		users.GET("", hb.GetUsers)
		users.GET("/:id", hb.GetUser)
	}

	login := r.Group("/login")
	{
		login.POST("", hb.Login)
		login.DELETE("", authRequired, hb.Logout)
	}

	r.GET("/health", handlers.HealthHandler)
	r.GET("/metrics", metrics.Handler())
}
