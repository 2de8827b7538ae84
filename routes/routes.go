package routes

import (
	"riyadh-travel-backend/config"
	"riyadh-travel-backend/controllers"
	"riyadh-travel-backend/realtime"
	"riyadh-travel-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *realtime.Hub) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return true
		},
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	r.GET("/ws", hub.ServeWS)

	api := r.Group("/api")
	{
		api.GET("/health", controllers.Health)

		// Service catalog: reads are public, mutations are admin-only
		services := api.Group("/services")
		{
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)

			services.POST("", utils.AuthMiddleware(), controllers.CreateService)
			services.PUT("/:id", utils.AuthMiddleware(), controllers.UpdateService)
			services.DELETE("/:id", utils.AuthMiddleware(), controllers.DeleteService)
		}

		// Booking lifecycle: customers create, admins manage
		booking := api.Group("/booking")
		{
			booking.POST("", controllers.CreateBooking)
			booking.GET("/:bookingId", controllers.GetBooking)

			booking.GET("", utils.AuthMiddleware(), controllers.GetBookings)
			booking.PATCH("/:bookingId/status", utils.AuthMiddleware(), controllers.UpdateBookingStatus)
			booking.PATCH("/:bookingId/notes", utils.AuthMiddleware(), controllers.AddBookingNote)
		}

		contact := api.Group("/contact")
		{
			contact.POST("/message", controllers.SendContactMessage)
			contact.GET("/info", controllers.GetContactInfo)
			contact.POST("/newsletter", controllers.SubscribeNewsletter)
		}

		whatsapp := api.Group("/whatsapp")
		{
			whatsapp.GET("/status", controllers.GetWhatsAppStatus)

			whatsapp.GET("/qr-code", utils.AuthMiddleware(), controllers.GetWhatsAppPairingCode)
			whatsapp.POST("/send-message", utils.AuthMiddleware(), controllers.SendWhatsAppMessage)
			whatsapp.POST("/test-booking", utils.AuthMiddleware(), controllers.SendTestBooking)
		}
	}

	return r
}
