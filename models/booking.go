package models

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusProcessing BookingStatus = "processing"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

var BookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusCompleted,
	StatusCancelled,
}

func (s BookingStatus) Valid() bool {
	for _, v := range BookingStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Payment methods accepted by the office.
const (
	PaymentCash         = "cash"
	PaymentBankTransfer = "bank_transfer"
	PaymentCreditCard   = "credit_card"
	PaymentPending      = "pending"
)

func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentBankTransfer, PaymentCreditCard, PaymentPending:
		return true
	}
	return false
}

type CustomerInfo struct {
	FullName    string `gorm:"not null" json:"fullName"`
	PhoneNumber string `gorm:"not null;index" json:"phoneNumber"`
	Email       string `json:"email,omitempty"`
	NationalID  string `json:"nationalId,omitempty"`
	Nationality string `gorm:"default:'Saudi Arabia'" json:"nationality"`
}

type ServiceDetails struct {
	ServiceID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"serviceId"`
	ServiceTitle       string     `gorm:"not null" json:"serviceTitle"`
	ServiceTitleAr     string     `gorm:"not null" json:"serviceTitleAr"`
	CustomRequirements string     `gorm:"type:text" json:"customRequirements,omitempty"`
	PreferredDate      *time.Time `json:"preferredDate,omitempty"`
	Urgent             bool       `gorm:"default:false" json:"urgent"`
}

type PaymentInfo struct {
	TotalAmount   float64    `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	Currency      string     `gorm:"default:'SAR'" json:"currency"`
	PaymentMethod string     `gorm:"type:varchar(20);default:'pending'" json:"paymentMethod"`
	Paid          bool       `gorm:"default:false" json:"paid"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
}

type Communications struct {
	WhatsappSent      bool       `gorm:"default:false" json:"whatsappSent"`
	WhatsappMessageID string     `json:"whatsappMessageId,omitempty"`
	EmailSent         bool       `gorm:"default:false" json:"emailSent"`
	LastContact       *time.Time `json:"lastContact,omitempty"`
}

type BookingNotes struct {
	Admin    string `gorm:"type:text" json:"admin,omitempty"`
	Customer string `gorm:"type:text" json:"customer,omitempty"`
}

type Booking struct {
	ID             uint           `gorm:"primaryKey" json:"-"`
	BookingID      string         `gorm:"uniqueIndex;not null" json:"bookingId"`
	CustomerInfo   CustomerInfo   `gorm:"embedded;embeddedPrefix:customer_" json:"customerInfo"`
	ServiceDetails ServiceDetails `gorm:"embedded" json:"serviceDetails"`
	BookingStatus  BookingStatus  `gorm:"type:varchar(20);not null;default:'pending';index" json:"bookingStatus"`
	PaymentInfo    PaymentInfo    `gorm:"embedded" json:"paymentInfo"`
	Communications Communications `gorm:"embedded" json:"communications"`
	Notes          BookingNotes   `gorm:"embedded;embeddedPrefix:note_" json:"notes"`
	CreatedAt      time.Time      `gorm:"index:,sort:desc" json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

const bookingIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewBookingID builds a business-level booking reference: a BK prefix,
// the creation time in unix milliseconds and a 6-character random
// suffix. The unique index on bookings.booking_id backstops the
// negligible collision chance.
func NewBookingID() string {
	var suffix strings.Builder
	for i := 0; i < 6; i++ {
		suffix.WriteByte(bookingIDAlphabet[rand.Intn(len(bookingIDAlphabet))])
	}
	return fmt.Sprintf("BK-%d-%s", time.Now().UnixMilli(), suffix.String())
}

// Assign booking ID before creating
func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.BookingID == "" {
		b.BookingID = NewBookingID()
	}
	return
}
