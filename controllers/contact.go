// controllers/contact.go
package controllers

import (
	"net/http"

	"riyadh-travel-backend/services"
	"riyadh-travel-backend/utils"

	"github.com/gin-gonic/gin"
)

// SendContactMessage handles POST /api/contact/message
func SendContactMessage(c *gin.Context) {
	var req services.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	outcome, fieldErrs := contactSvc.SendMessage(req)
	if len(fieldErrs) > 0 {
		utils.RespondWithValidationErrors(c, fieldErrs)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message sent successfully",
		"details": outcome,
	})
}

// GetContactInfo handles GET /api/contact/info
func GetContactInfo(c *gin.Context) {
	biz := whatsappSvc.Business()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"contact": gin.H{
			"phone":    biz.Phone,
			"email":    biz.Email,
			"whatsapp": biz.WhatsApp,
			"address":  biz.Address,
			"workingHours": gin.H{
				"sunday":    "8:00 AM - 6:00 PM",
				"monday":    "8:00 AM - 6:00 PM",
				"tuesday":   "8:00 AM - 6:00 PM",
				"wednesday": "8:00 AM - 6:00 PM",
				"thursday":  "8:00 AM - 6:00 PM",
				"friday":    "Closed",
				"saturday":  "8:00 AM - 6:00 PM",
			},
			"socialMedia": gin.H{
				"twitter":   "https://twitter.com/riyadh_travel",
				"instagram": "https://instagram.com/riyadh_travel",
				"facebook":  "https://facebook.com/riyadh.travel",
			},
		},
	})
}

type NewsletterInput struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}

// SubscribeNewsletter handles POST /api/contact/newsletter
func SubscribeNewsletter(c *gin.Context) {
	var input NewsletterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationErrors(c, []utils.FieldError{
			{Field: "email", Message: "Email is required"},
		})
		return
	}

	fieldErrs, err := contactSvc.Subscribe(input.Email, input.Name)
	if len(fieldErrs) > 0 {
		utils.RespondWithValidationErrors(c, fieldErrs)
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to process newsletter subscription")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successfully subscribed to newsletter",
	})
}
