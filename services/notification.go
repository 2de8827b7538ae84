// services/notification.go
package services

import (
	"log"
	"strings"

	"riyadh-travel-backend/models"
)

// NotificationService is the outbound gateway: it formats message
// bodies and dispatches them over the messaging and email channels.
// Every send is best-effort and degrades to a boolean; a dead channel
// never fails the enclosing business operation.
type NotificationService struct {
	messenger Messenger
	mailer    Mailer
	business  BusinessInfo
}

func NewNotificationService(messenger Messenger, mailer Mailer, business BusinessInfo) *NotificationService {
	return &NotificationService{
		messenger: messenger,
		mailer:    mailer,
		business:  business,
	}
}

func (n *NotificationService) Status() ChannelStatus {
	return n.messenger.Status()
}

func (n *NotificationService) Business() BusinessInfo {
	return n.business
}

// SendBookingNotification sends the Arabic booking confirmation to the
// customer. Returns the provider message id and whether the dispatch
// was confirmed.
func (n *NotificationService) SendBookingNotification(b *models.Booking) (string, bool) {
	st := n.messenger.Status()
	if !st.Connected || !st.Ready {
		log.Printf("[NOTIFY] whatsapp not ready, skipping booking notification for %s", b.BookingID)
		return "", false
	}

	to := NormalizePhone(b.CustomerInfo.PhoneNumber)
	msgID, err := n.messenger.Send(to, BookingConfirmationMessage(b, n.business))
	if err != nil {
		log.Printf("[NOTIFY] booking notification for %s failed: %v", b.BookingID, err)
		return "", false
	}

	log.Printf("[NOTIFY] booking notification sent to %s", to)
	return msgID, true
}

// SendServiceUpdate sends an arbitrary pre-composed message to a phone
// number, same readiness and failure contract as booking notifications.
func (n *NotificationService) SendServiceUpdate(phoneNumber, message string) bool {
	st := n.messenger.Status()
	if !st.Connected || !st.Ready {
		return false
	}

	if _, err := n.messenger.Send(NormalizePhone(phoneNumber), message); err != nil {
		log.Printf("[NOTIFY] service update to %s failed: %v", phoneNumber, err)
		return false
	}
	return true
}

// SendEmail dispatches over the email channel, degrading failures to
// false like the messaging side.
func (n *NotificationService) SendEmail(to, subject, body string) bool {
	if !n.mailer.Configured() {
		log.Println("[NOTIFY] mailer not configured, skipping email")
		return false
	}
	if err := n.mailer.Send(to, subject, body); err != nil {
		log.Printf("[NOTIFY] email to %s failed: %v", to, err)
		return false
	}
	return true
}

// NormalizePhone canonicalizes a Saudi mobile number to E.164: strip
// everything but digits, drop a duplicated 966 country code, drop a
// leading trunk zero, then prefix +966.
func NormalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	cleaned := digits.String()
	cleaned = strings.TrimPrefix(cleaned, "966")
	cleaned = strings.TrimPrefix(cleaned, "0")
	if !strings.HasPrefix(cleaned, "966") {
		cleaned = "966" + cleaned
	}
	return "+" + cleaned
}
