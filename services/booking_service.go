// services/booking_service.go
package services

import (
	"errors"
	"log"
	"time"

	"riyadh-travel-backend/models"
	"riyadh-travel-backend/realtime"
	"riyadh-travel-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrNoNoteProvided  = errors.New("no note provided")
)

// Notifier is the slice of the notification gateway the booking
// lifecycle needs.
type Notifier interface {
	SendBookingNotification(b *models.Booking) (string, bool)
	SendServiceUpdate(phoneNumber, message string) bool
}

// EventPublisher is the slice of the realtime hub the booking lifecycle
// needs.
type EventPublisher interface {
	Broadcast(event string, data interface{})
}

type CustomerInfoRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	NationalID  string `json:"nationalId"`
	Nationality string `json:"nationality"`
}

type ServiceDetailsRequest struct {
	ServiceID          string     `json:"serviceId"`
	CustomRequirements string     `json:"customRequirements"`
	PreferredDate      *time.Time `json:"preferredDate"`
	Urgent             bool       `json:"urgent"`
}

type PaymentInfoRequest struct {
	TotalAmount   float64 `json:"totalAmount"`
	PaymentMethod string  `json:"paymentMethod"`
}

type BookingNotesRequest struct {
	Customer string `json:"customer"`
}

type CreateBookingRequest struct {
	CustomerInfo   CustomerInfoRequest   `json:"customerInfo"`
	ServiceDetails ServiceDetailsRequest `json:"serviceDetails"`
	PaymentInfo    PaymentInfoRequest    `json:"paymentInfo"`
	Notes          BookingNotesRequest   `json:"notes"`
}

// BookingService orchestrates the booking lifecycle: validation,
// persistence, customer notification and the realtime broadcast.
type BookingService struct {
	bookings BookingStore
	catalog  ServiceStore
	notifier Notifier
	events   EventPublisher
}

func NewBookingService(bookings BookingStore, catalog ServiceStore, notifier Notifier, events EventPublisher) *BookingService {
	return &BookingService{
		bookings: bookings,
		catalog:  catalog,
		notifier: notifier,
		events:   events,
	}
}

func (s *BookingService) validateCreate(req CreateBookingRequest) ([]utils.FieldError, uuid.UUID) {
	var errs []utils.FieldError

	if req.CustomerInfo.FullName == "" {
		errs = append(errs, utils.FieldError{Field: "customerInfo.fullName", Message: "Full name is required"})
	}
	if !utils.ValidatePhone(req.CustomerInfo.PhoneNumber) {
		errs = append(errs, utils.FieldError{Field: "customerInfo.phoneNumber", Message: "A valid mobile number is required"})
	}
	if req.PaymentInfo.TotalAmount <= 0 {
		errs = append(errs, utils.FieldError{Field: "paymentInfo.totalAmount", Message: "Total amount must be greater than zero"})
	}

	serviceID, err := uuid.Parse(req.ServiceDetails.ServiceID)
	if err != nil {
		errs = append(errs, utils.FieldError{Field: "serviceDetails.serviceId", Message: "A valid service id is required"})
	}

	return errs, serviceID
}

// Create validates and persists a new booking, then attempts the
// customer notification and broadcasts the new_booking event. New
// bookings start as pending: confirmation is an explicit admin step.
// Persistence, notification and broadcast are deliberately not
// transactional with each other; the booking stands even when every
// notification fails.
func (s *BookingService) Create(req CreateBookingRequest) (*models.Booking, bool, []utils.FieldError, error) {
	errs, serviceID := s.validateCreate(req)
	if len(errs) > 0 {
		return nil, false, errs, nil
	}

	service, err := s.catalog.FindByID(serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil, ErrServiceNotFound
		}
		return nil, false, nil, err
	}

	paymentMethod := req.PaymentInfo.PaymentMethod
	if !models.IsValidPaymentMethod(paymentMethod) {
		paymentMethod = models.PaymentPending
	}
	nationality := req.CustomerInfo.Nationality
	if nationality == "" {
		nationality = "Saudi Arabia"
	}

	booking := &models.Booking{
		CustomerInfo: models.CustomerInfo{
			FullName:    req.CustomerInfo.FullName,
			PhoneNumber: req.CustomerInfo.PhoneNumber,
			Email:       req.CustomerInfo.Email,
			NationalID:  req.CustomerInfo.NationalID,
			Nationality: nationality,
		},
		ServiceDetails: models.ServiceDetails{
			ServiceID:          service.ID,
			ServiceTitle:       service.Title,
			ServiceTitleAr:     service.TitleAr,
			CustomRequirements: req.ServiceDetails.CustomRequirements,
			PreferredDate:      req.ServiceDetails.PreferredDate,
			Urgent:             req.ServiceDetails.Urgent,
		},
		BookingStatus: models.StatusPending,
		PaymentInfo: models.PaymentInfo{
			TotalAmount:   req.PaymentInfo.TotalAmount,
			Currency:      "SAR",
			PaymentMethod: paymentMethod,
		},
		Notes: models.BookingNotes{
			Customer: req.Notes.Customer,
		},
	}

	if err := s.bookings.Create(booking); err != nil {
		return nil, false, nil, err
	}

	// Persistence is done before the notification attempt begins, and
	// the attempt completes before the communications record update.
	msgID, sent := s.notifier.SendBookingNotification(booking)
	now := time.Now()
	booking.Communications.WhatsappSent = sent
	booking.Communications.WhatsappMessageID = msgID
	booking.Communications.LastContact = &now
	if err := s.bookings.Save(booking); err != nil {
		log.Printf("[BOOKING] failed to record communications for %s: %v", booking.BookingID, err)
	}

	s.events.Broadcast(realtime.EventNewBooking, map[string]interface{}{
		"bookingId":    booking.BookingID,
		"customerName": booking.CustomerInfo.FullName,
		"serviceTitle": booking.ServiceDetails.ServiceTitleAr,
		"timestamp":    booking.CreatedAt,
	})

	return booking, sent, nil, nil
}

// List returns a page of bookings, newest first.
func (s *BookingService) List(f BookingFilter) ([]models.Booking, Pagination, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		f.Limit = 100
	}

	bookings, total, err := s.bookings.List(f)
	if err != nil {
		return nil, Pagination{}, err
	}

	pages := int((total + int64(f.Limit) - 1) / int64(f.Limit))
	return bookings, Pagination{Current: f.Page, Pages: pages, Total: total}, nil
}

func (s *BookingService) GetByBookingID(bookingID string) (*models.Booking, error) {
	booking, err := s.bookings.FindByBookingID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

// UpdateStatus moves a booking to a new status. Any status is reachable
// from any other. When notifyCustomer is set, the fixed per-status
// message goes out best-effort; a failed send never fails the update.
func (s *BookingService) UpdateStatus(bookingID string, status models.BookingStatus, notifyCustomer bool) (*models.Booking, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	booking, err := s.GetByBookingID(bookingID)
	if err != nil {
		return nil, err
	}

	booking.BookingStatus = status
	booking.UpdatedAt = time.Now()
	if err := s.bookings.Save(booking); err != nil {
		return nil, err
	}

	if notifyCustomer {
		if message, ok := StatusUpdateMessage(booking, status); ok {
			if !s.notifier.SendServiceUpdate(booking.CustomerInfo.PhoneNumber, message) {
				log.Printf("[BOOKING] status notification for %s not delivered", booking.BookingID)
			}
		}
	}

	s.events.Broadcast(realtime.EventBookingStatusUpdate, map[string]interface{}{
		"bookingId": booking.BookingID,
		"status":    booking.BookingStatus,
		"timestamp": booking.UpdatedAt,
	})

	return booking, nil
}

// AddNotes overwrites the admin and/or customer note fields. At least
// one must be provided.
func (s *BookingService) AddNotes(bookingID string, adminNote, customerNote *string) (*models.Booking, error) {
	if adminNote == nil && customerNote == nil {
		return nil, ErrNoNoteProvided
	}

	booking, err := s.GetByBookingID(bookingID)
	if err != nil {
		return nil, err
	}

	if adminNote != nil {
		booking.Notes.Admin = *adminNote
	}
	if customerNote != nil {
		booking.Notes.Customer = *customerNote
	}
	booking.UpdatedAt = time.Now()

	if err := s.bookings.Save(booking); err != nil {
		return nil, err
	}
	return booking, nil
}
