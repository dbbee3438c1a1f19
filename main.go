// File: bookie/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bookie/config"
	"bookie/database"
	bookingRepoPkg "bookie/database/repository/booking"
	roomRepoPkg "bookie/database/repository/room"
	sessionRepoPkg "bookie/database/repository/session"
	userRepoPkg "bookie/database/repository/user"
	"bookie/handlers"
	"bookie/metrics"
	"bookie/middleware"
	"bookie/routes"
	"bookie/services/auth"
	"bookie/services/booking"
	"bookie/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	metrics.Register()

	// Create the Gin router.
	router := gin.New()
	router.Use(middleware.CaptureBody())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(metrics.Middleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		RoomRepo: roomRepo,
	}
	authService := &auth.DefaultAuthService{
		Sessions: sessionRepo,
		Users:    userRepo,
		Cache:    utils.GetAuthCacheClient(),
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	roomHandler := handlers.NewRoomHandler(roomRepo)
	userHandler := handlers.NewUserHandler(userRepo)
	loginHandler := handlers.NewLoginHandler(authService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthService: authService,

		CreateBooking:  bookingHandler.CreateBooking,
		GetBookings:    bookingHandler.GetBookings,
		GetBooking:     bookingHandler.GetBooking,
		UpdateBooking:  bookingHandler.UpdateBooking,
		DeleteBooking:  bookingHandler.DeleteBooking,
		DeleteBookings: bookingHandler.DeleteBookings,

		GetRooms: roomHandler.GetRooms,
		GetRoom:  roomHandler.GetRoom,

		GetUsers: userHandler.GetUsers,
		GetUser:  userHandler.GetUser,

		Login:  loginHandler.Login,
		Logout: loginHandler.Logout,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    config.AppConfig.AppHost + ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	utils.CloseAuthCache()
	database.CloseDB()
	logger.Sugar().Info("main: server stopped gracefully")
	utils.SyncLogger()
}
