// controllers/whatsapp.go
package controllers

import (
	"net/http"

	"riyadh-travel-backend/models"
	"riyadh-travel-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetWhatsAppStatus handles GET /api/whatsapp/status
func GetWhatsAppStatus(c *gin.Context) {
	status := whatsappSvc.Status()

	statusLabel := "disconnected"
	message := "WhatsApp service is offline"
	if status.Connected {
		statusLabel = "connected"
		message = "WhatsApp service is running"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"whatsapp": gin.H{
			"connected":      status.Connected,
			"ready":          status.Ready,
			"hasPairingCode": status.HasPairingCode(),
			"status":         statusLabel,
			"message":        message,
		},
	})
}

// GetWhatsAppPairingCode handles GET /api/whatsapp/qr-code (admin)
func GetWhatsAppPairingCode(c *gin.Context) {
	status := whatsappSvc.Status()

	if !status.HasPairingCode() {
		utils.RespondWithError(c, http.StatusNotFound, "Pairing code not available. Service may need to be restarted.")
		return
	}

	// The pairing code itself is pushed over the websocket channel
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Pairing code will be sent via WebSocket",
		"note":    "Please connect to WebSocket to receive the pairing code",
	})
}

type SendMessageInput struct {
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

// SendWhatsAppMessage handles POST /api/whatsapp/send-message (admin)
func SendWhatsAppMessage(c *gin.Context) {
	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil || input.PhoneNumber == "" || input.Message == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Phone number and message are required")
		return
	}

	if !whatsappSvc.Status().Connected {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "WhatsApp service is not connected")
		return
	}

	sent := whatsappSvc.SendServiceUpdate(input.PhoneNumber, input.Message)

	message := "Failed to send message"
	if sent {
		message = "Message sent successfully"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": sent,
		"message": message,
		"details": gin.H{
			"phoneNumber":   input.PhoneNumber,
			"messageLength": len(input.Message),
		},
	})
}

type TestBookingInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// SendTestBooking handles POST /api/whatsapp/test-booking (admin)
func SendTestBooking(c *gin.Context) {
	var input TestBookingInput
	_ = c.ShouldBindJSON(&input)

	if input.Name == "" {
		input.Name = "عميل تجريبي"
	}
	if input.Phone == "" {
		input.Phone = whatsappSvc.Business().Phone
	}

	testBooking := &models.Booking{
		BookingID: models.NewBookingID(),
		CustomerInfo: models.CustomerInfo{
			FullName:    input.Name,
			PhoneNumber: input.Phone,
		},
		ServiceDetails: models.ServiceDetails{
			ServiceTitle:   "Test Service",
			ServiceTitleAr: "خدمة تجريبية",
		},
		PaymentInfo: models.PaymentInfo{
			TotalAmount: 100,
			Currency:    "SAR",
		},
	}

	_, sent := whatsappSvc.SendBookingNotification(testBooking)

	message := "Failed to send test notification"
	if sent {
		message = "Test booking notification sent"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     sent,
		"message":     message,
		"testBooking": testBooking,
	})
}
