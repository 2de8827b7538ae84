package main

import (
	"fmt"
	"log"
	"os"

	"riyadh-travel-backend/config"
	"riyadh-travel-backend/controllers"
	"riyadh-travel-backend/models"
	"riyadh-travel-backend/realtime"
	"riyadh-travel-backend/routes"
	"riyadh-travel-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.NewsletterSubscriber{},
	)
}

func main() {
	hub := realtime.NewHub()

	whatsapp := services.NewTwilioWhatsApp()
	whatsapp.OnStatusChange(func(st services.ChannelStatus) {
		statusLabel := "disconnected"
		if st.Ready {
			statusLabel = "ready"
		}
		hub.Broadcast(realtime.EventWhatsAppStatus, map[string]interface{}{
			"connected": st.Connected,
			"status":    statusLabel,
		})
		if !st.Connected && st.HasPairingCode() {
			hub.Broadcast(realtime.EventWhatsAppQR, map[string]interface{}{
				"qr": st.PairingCode,
			})
		}
	})
	whatsapp.Start()

	business := services.LoadBusinessInfo()
	notifier := services.NewNotificationService(whatsapp, services.NewSMTPMailerFromEnv(), business)

	bookingSvc := services.NewBookingService(
		services.NewBookingStore(config.DB),
		services.NewServiceStore(config.DB),
		notifier,
		hub,
	)
	contactSvc := services.NewContactService(notifier, services.NewSubscriberStore(config.DB), business)

	followup := services.NewFollowUpService(services.NewBookingStore(config.DB), notifier)
	followup.Start()

	controllers.Setup(bookingSvc, contactSvc, notifier)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(hub)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
