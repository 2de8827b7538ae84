// services/followup_service.go
package services

import (
	"log"
	"os"
	"strconv"
	"time"

	"riyadh-travel-backend/utils"

	"github.com/robfig/cron/v3"
)

// FollowUpService reminds customers of bookings sitting in pending past
// the follow-up window. Runs daily at 9 AM.
type FollowUpService struct {
	bookings  BookingStore
	notifier  Notifier
	cron      *cron.Cron
	afterDays int
}

func NewFollowUpService(bookings BookingStore, notifier Notifier) *FollowUpService {
	afterDays := 2
	if env := os.Getenv("PENDING_FOLLOWUP_DAYS"); env != "" {
		if d, err := strconv.Atoi(env); err == nil && d > 0 {
			afterDays = d
		}
	}

	return &FollowUpService{
		bookings:  bookings,
		notifier:  notifier,
		cron:      cron.New(),
		afterDays: afterDays,
	}
}

func (s *FollowUpService) Start() {
	s.cron.AddFunc("0 9 * * *", s.Run)
	s.cron.Start()
	log.Println("Follow-up scheduler started")
}

func (s *FollowUpService) Stop() {
	s.cron.Stop()
}

// Run sends one reminder per overdue pending booking. Each send is
// best-effort; delivered reminders stamp the communications record.
func (s *FollowUpService) Run() {
	cutoff := utils.BeginningOfDay(time.Now()).AddDate(0, 0, -s.afterDays)

	bookings, err := s.bookings.FindPendingBefore(cutoff)
	if err != nil {
		log.Printf("[FOLLOWUP] failed to fetch pending bookings: %v", err)
		return
	}

	for i := range bookings {
		booking := &bookings[i]
		pendingDays := utils.DaysBetween(booking.CreatedAt, time.Now())
		if !s.notifier.SendServiceUpdate(booking.CustomerInfo.PhoneNumber, FollowUpMessage(booking)) {
			log.Printf("[FOLLOWUP] reminder for %s (pending %d days) not delivered", booking.BookingID, pendingDays)
			continue
		}
		log.Printf("[FOLLOWUP] reminded %s (pending %d days)", booking.BookingID, pendingDays)

		now := time.Now()
		booking.Communications.LastContact = &now
		if err := s.bookings.Save(booking); err != nil {
			log.Printf("[FOLLOWUP] failed to record contact for %s: %v", booking.BookingID, err)
		}
	}

	log.Printf("[FOLLOWUP] processed %d pending bookings", len(bookings))
}
