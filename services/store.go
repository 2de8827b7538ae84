// services/store.go
package services

import (
	"time"

	"riyadh-travel-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingFilter struct {
	Status string
	Phone  string
	Search string
	Page   int
	Limit  int
}

type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

type BookingStore interface {
	Create(b *models.Booking) error
	Save(b *models.Booking) error
	FindByBookingID(bookingID string) (*models.Booking, error)
	List(f BookingFilter) ([]models.Booking, int64, error)
	FindPendingBefore(cutoff time.Time) ([]models.Booking, error)
}

type ServiceStore interface {
	FindByID(id uuid.UUID) (*models.Service, error)
}

type SubscriberStore interface {
	Upsert(sub *models.NewsletterSubscriber) error
}

// --- gorm implementations ---

type gormBookingStore struct {
	db *gorm.DB
}

func NewBookingStore(db *gorm.DB) BookingStore {
	return &gormBookingStore{db: db}
}

func (s *gormBookingStore) Create(b *models.Booking) error {
	return s.db.Create(b).Error
}

func (s *gormBookingStore) Save(b *models.Booking) error {
	return s.db.Save(b).Error
}

func (s *gormBookingStore) FindByBookingID(bookingID string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Where("booking_id = ?", bookingID).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *gormBookingStore) List(f BookingFilter) ([]models.Booking, int64, error) {
	q := s.db.Model(&models.Booking{})

	if f.Status != "" && f.Status != "all" {
		q = q.Where("booking_status = ?", f.Status)
	}
	if f.Phone != "" {
		q = q.Where("customer_phone_number ILIKE ?", "%"+f.Phone+"%")
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("booking_id ILIKE ? OR customer_full_name ILIKE ? OR service_title_ar ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	err := q.Order("created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&bookings).Error
	return bookings, total, err
}

func (s *gormBookingStore) FindPendingBefore(cutoff time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("booking_status = ? AND created_at < ?", models.StatusPending, cutoff).
		Find(&bookings).Error
	return bookings, err
}

type gormServiceStore struct {
	db *gorm.DB
}

func NewServiceStore(db *gorm.DB) ServiceStore {
	return &gormServiceStore{db: db}
}

func (s *gormServiceStore) FindByID(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	if err := s.db.First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

type gormSubscriberStore struct {
	db *gorm.DB
}

func NewSubscriberStore(db *gorm.DB) SubscriberStore {
	return &gormSubscriberStore{db: db}
}

// Upsert keeps re-subscribing idempotent: an existing email updates the
// stored name instead of erroring on the unique index.
func (s *gormSubscriberStore) Upsert(sub *models.NewsletterSubscriber) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(sub).Error
}
