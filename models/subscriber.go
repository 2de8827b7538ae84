package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsletterSubscriber records a newsletter signup. The subscription is
// persisted before the confirmation email is attempted, so a failed
// email never loses the signup.
type NewsletterSubscriber struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Name         string    `json:"name,omitempty"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

func (n *NewsletterSubscriber) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.SubscribedAt.IsZero() {
		n.SubscribedAt = time.Now()
	}
	return
}
