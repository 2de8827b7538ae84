// services/contact_service.go
package services

import (
	"log"
	"time"

	"riyadh-travel-backend/models"
	"riyadh-travel-backend/utils"
)

// ContactNotifier is the slice of the notification gateway the contact
// flow needs.
type ContactNotifier interface {
	SendServiceUpdate(phoneNumber, message string) bool
	SendEmail(to, subject, body string) bool
}

type ContactMessageRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactOutcome reports, per channel, which best-effort side effects
// actually dispatched.
type ContactOutcome struct {
	EmailSent     bool      `json:"emailSent"`
	WhatsappSent  bool      `json:"whatsappSent"`
	AutoReplySent bool      `json:"autoReplySent"`
	Timestamp     time.Time `json:"timestamp"`
}

// ContactService relays inbound contact messages and newsletter
// signups. Each side effect fails independently; the inquiry itself
// always succeeds once validation passes.
type ContactService struct {
	notifier    ContactNotifier
	subscribers SubscriberStore
	business    BusinessInfo
}

func NewContactService(notifier ContactNotifier, subscribers SubscriberStore, business BusinessInfo) *ContactService {
	return &ContactService{
		notifier:    notifier,
		subscribers: subscribers,
		business:    business,
	}
}

func validateContactMessage(req ContactMessageRequest) []utils.FieldError {
	var errs []utils.FieldError

	if !utils.LengthBetween(req.Name, 2, 100) {
		errs = append(errs, utils.FieldError{Field: "name", Message: "Name must be between 2 and 100 characters"})
	}
	if !utils.ValidatePhone(req.Phone) {
		errs = append(errs, utils.FieldError{Field: "phone", Message: "A valid mobile number is required"})
	}
	if req.Email != "" && !utils.ValidateEmail(req.Email) {
		errs = append(errs, utils.FieldError{Field: "email", Message: "Email address is not valid"})
	}
	if req.Subject != "" && !utils.LengthBetween(req.Subject, 0, 200) {
		errs = append(errs, utils.FieldError{Field: "subject", Message: "Subject must be at most 200 characters"})
	}
	if !utils.LengthBetween(req.Message, 10, 1000) {
		errs = append(errs, utils.FieldError{Field: "message", Message: "Message must be between 10 and 1000 characters"})
	}

	return errs
}

// SendMessage relays an inquiry to the office inbox and notification
// number, and acknowledges the submitter. The three sends are
// independent; each failure is logged and reported in the outcome.
func (s *ContactService) SendMessage(req ContactMessageRequest) (ContactOutcome, []utils.FieldError) {
	if errs := validateContactMessage(req); len(errs) > 0 {
		return ContactOutcome{}, errs
	}

	outcome := ContactOutcome{Timestamp: time.Now()}

	subject, body := ContactInquiryEmail(req.Name, req.Phone, req.Email, req.Subject, req.Message, s.business)
	outcome.EmailSent = s.notifier.SendEmail(s.business.Email, subject, body)

	inquiry := ContactInquiryWhatsApp(req.Name, req.Phone, req.Email, req.Subject, req.Message, s.business)
	outcome.WhatsappSent = s.notifier.SendServiceUpdate(s.business.WhatsApp, inquiry)

	outcome.AutoReplySent = s.notifier.SendServiceUpdate(req.Phone, ContactAutoReply(req.Name, s.business))

	if !outcome.EmailSent || !outcome.WhatsappSent || !outcome.AutoReplySent {
		log.Printf("[CONTACT] partial delivery for %s: email=%t whatsapp=%t autoReply=%t",
			req.Phone, outcome.EmailSent, outcome.WhatsappSent, outcome.AutoReplySent)
	}

	return outcome, nil
}

// Subscribe records a newsletter signup and sends a best-effort
// confirmation email. The caller sees success whether or not the email
// went out.
func (s *ContactService) Subscribe(email, name string) ([]utils.FieldError, error) {
	if !utils.ValidateEmail(email) {
		return []utils.FieldError{{Field: "email", Message: "A valid email address is required"}}, nil
	}
	if name != "" && !utils.LengthBetween(name, 0, 100) {
		return []utils.FieldError{{Field: "name", Message: "Name must be at most 100 characters"}}, nil
	}

	if err := s.subscribers.Upsert(&models.NewsletterSubscriber{Email: email, Name: name}); err != nil {
		return nil, err
	}

	subject, body := NewsletterWelcomeEmail(name, s.business)
	if !s.notifier.SendEmail(email, subject, body) {
		log.Printf("[CONTACT] newsletter confirmation to %s not delivered", email)
	}

	return nil, nil
}
