// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"riyadh-travel-backend/models"
	"riyadh-travel-backend/services"
	"riyadh-travel-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateBooking handles POST /api/booking
func CreateBooking(c *gin.Context) {
	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, whatsappSent, fieldErrs, err := bookingSvc.Create(req)
	if len(fieldErrs) > 0 {
		utils.RespondWithValidationErrors(c, fieldErrs)
		return
	}
	if err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"booking":      booking,
		"whatsappSent": whatsappSent,
		"message":      "Booking created successfully",
	})
}

// GetBookings handles GET /api/booking (admin)
func GetBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := services.BookingFilter{
		Status: c.Query("status"),
		Phone:  c.Query("phone"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	bookings, pagination, err := bookingSvc.List(filter)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"bookings":   bookings,
		"pagination": pagination,
	})
}

// GetBooking handles GET /api/booking/:bookingId
func GetBooking(c *gin.Context) {
	booking, err := bookingSvc.GetByBookingID(c.Param("bookingId"))
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": booking,
	})
}

type UpdateStatusInput struct {
	Status         string `json:"status" binding:"required"`
	NotifyCustomer *bool  `json:"notifyCustomer"`
}

// UpdateBookingStatus handles PATCH /api/booking/:bookingId/status (admin)
func UpdateBookingStatus(c *gin.Context) {
	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationErrors(c, []utils.FieldError{
			{Field: "status", Message: "Status is required"},
		})
		return
	}

	// Notify by default; callers opt out explicitly
	notify := input.NotifyCustomer == nil || *input.NotifyCustomer

	booking, err := bookingSvc.UpdateStatus(c.Param("bookingId"), models.BookingStatus(input.Status), notify)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			utils.RespondWithValidationErrors(c, []utils.FieldError{
				{Field: "status", Message: "Status must be one of: pending, confirmed, processing, completed, cancelled"},
			})
		case errors.Is(err, services.ErrBookingNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking status")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": booking,
		"message": "Booking status updated successfully",
	})
}

type AddNoteInput struct {
	AdminNote    *string `json:"adminNote"`
	CustomerNote *string `json:"customerNote"`
}

// AddBookingNote handles PATCH /api/booking/:bookingId/notes (admin)
func AddBookingNote(c *gin.Context) {
	var input AddNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := bookingSvc.AddNotes(c.Param("bookingId"), input.AdminNote, input.CustomerNote)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoNoteProvided):
			utils.RespondWithValidationErrors(c, []utils.FieldError{
				{Field: "adminNote", Message: "At least one of adminNote or customerNote is required"},
			})
		case errors.Is(err, services.ErrBookingNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add note")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": booking,
		"message": "Note added successfully",
	})
}
