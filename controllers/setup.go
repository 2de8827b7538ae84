// controllers/setup.go
package controllers

import (
	"riyadh-travel-backend/models"
	"riyadh-travel-backend/services"
	"riyadh-travel-backend/utils"
)

// BookingAPI is what the booking handlers need from the booking
// lifecycle service.
type BookingAPI interface {
	Create(req services.CreateBookingRequest) (*models.Booking, bool, []utils.FieldError, error)
	List(f services.BookingFilter) ([]models.Booking, services.Pagination, error)
	GetByBookingID(bookingID string) (*models.Booking, error)
	UpdateStatus(bookingID string, status models.BookingStatus, notifyCustomer bool) (*models.Booking, error)
	AddNotes(bookingID string, adminNote, customerNote *string) (*models.Booking, error)
}

// ContactAPI is what the contact handlers need from the intake service.
type ContactAPI interface {
	SendMessage(req services.ContactMessageRequest) (services.ContactOutcome, []utils.FieldError)
	Subscribe(email, name string) ([]utils.FieldError, error)
}

// WhatsAppAPI is what the channel admin handlers need from the
// notification gateway.
type WhatsAppAPI interface {
	Status() services.ChannelStatus
	SendServiceUpdate(phoneNumber, message string) bool
	SendBookingNotification(b *models.Booking) (string, bool)
	Business() services.BusinessInfo
}

var (
	bookingSvc  BookingAPI
	contactSvc  ContactAPI
	whatsappSvc WhatsAppAPI
)

// Setup wires the handler package to its collaborators. Called once
// from main before the router starts.
func Setup(booking BookingAPI, contact ContactAPI, whatsapp WhatsAppAPI) {
	bookingSvc = booking
	contactSvc = contact
	whatsappSvc = whatsapp
}
