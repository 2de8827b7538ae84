package services

import (
	"testing"
	"time"

	"riyadh-travel-backend/models"
	"riyadh-travel-backend/realtime"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeBookingStore struct {
	bookings map[string]*models.Booking
	saves    int
	createFn func(b *models.Booking) error
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: make(map[string]*models.Booking)}
}

func (s *fakeBookingStore) Create(b *models.Booking) error {
	if s.createFn != nil {
		return s.createFn(b)
	}
	if b.BookingID == "" {
		b.BookingID = models.NewBookingID()
	}
	b.CreatedAt = time.Now()
	copied := *b
	s.bookings[b.BookingID] = &copied
	return nil
}

func (s *fakeBookingStore) Save(b *models.Booking) error {
	s.saves++
	copied := *b
	s.bookings[b.BookingID] = &copied
	return nil
}

func (s *fakeBookingStore) FindByBookingID(bookingID string) (*models.Booking, error) {
	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *fakeBookingStore) List(f BookingFilter) ([]models.Booking, int64, error) {
	var all []models.Booking
	for _, b := range s.bookings {
		all = append(all, *b)
	}
	total := int64(len(all))

	start := (f.Page - 1) * f.Limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + f.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (s *fakeBookingStore) FindPendingBefore(cutoff time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.BookingStatus == models.StatusPending && b.CreatedAt.Before(cutoff) {
			out = append(out, *b)
		}
	}
	return out, nil
}

type fakeServiceStore struct {
	services map[uuid.UUID]*models.Service
}

func (s *fakeServiceStore) FindByID(id uuid.UUID) (*models.Service, error) {
	svc, ok := s.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *svc
	return &copied, nil
}

type fakeNotifier struct {
	bookingSent bool
	updateSent  bool

	bookingCalls []string
	updateCalls  []struct{ phone, message string }
}

func (n *fakeNotifier) SendBookingNotification(b *models.Booking) (string, bool) {
	n.bookingCalls = append(n.bookingCalls, b.BookingID)
	if !n.bookingSent {
		return "", false
	}
	return "MSG999", true
}

func (n *fakeNotifier) SendServiceUpdate(phoneNumber, message string) bool {
	n.updateCalls = append(n.updateCalls, struct{ phone, message string }{phoneNumber, message})
	return n.updateSent
}

type fakeEvents struct {
	events []struct {
		name string
		data map[string]interface{}
	}
}

func (e *fakeEvents) Broadcast(event string, data interface{}) {
	payload, _ := data.(map[string]interface{})
	e.events = append(e.events, struct {
		name string
		data map[string]interface{}
	}{event, payload})
}

func (e *fakeEvents) last() (string, map[string]interface{}) {
	if len(e.events) == 0 {
		return "", nil
	}
	ev := e.events[len(e.events)-1]
	return ev.name, ev.data
}

func newBookingFixture(notifier *fakeNotifier) (*BookingService, *fakeBookingStore, *fakeEvents, uuid.UUID) {
	serviceID := uuid.New()
	catalog := &fakeServiceStore{services: map[uuid.UUID]*models.Service{
		serviceID: {
			ID:      serviceID,
			Title:   "Work Visa Processing",
			TitleAr: "معالجة تأشيرة عمل",
		},
	}}

	store := newFakeBookingStore()
	events := &fakeEvents{}
	return NewBookingService(store, catalog, notifier, events), store, events, serviceID
}

func validCreateRequest(serviceID uuid.UUID) CreateBookingRequest {
	return CreateBookingRequest{
		CustomerInfo: CustomerInfoRequest{
			FullName:    "أحمد محمد",
			PhoneNumber: "0501112222",
			Email:       "ahmed@example.com",
		},
		ServiceDetails: ServiceDetailsRequest{
			ServiceID: serviceID.String(),
		},
		PaymentInfo: PaymentInfoRequest{
			TotalAmount:   750,
			PaymentMethod: models.PaymentCash,
		},
	}
}

func TestCreateBooking_Success(t *testing.T) {
	notifier := &fakeNotifier{bookingSent: true}
	svc, store, events, serviceID := newBookingFixture(notifier)

	booking, sent, fieldErrs, err := svc.Create(validCreateRequest(serviceID))

	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, booking)
	assert.True(t, sent)

	assert.Equal(t, models.StatusPending, booking.BookingStatus)
	assert.NotEmpty(t, booking.BookingID)
	assert.Equal(t, "SAR", booking.PaymentInfo.Currency)
	assert.Equal(t, models.PaymentCash, booking.PaymentInfo.PaymentMethod)

	// Catalog snapshot, not a live reference
	assert.Equal(t, "Work Visa Processing", booking.ServiceDetails.ServiceTitle)
	assert.Equal(t, "معالجة تأشيرة عمل", booking.ServiceDetails.ServiceTitleAr)

	// Communications recorded after the send
	assert.True(t, booking.Communications.WhatsappSent)
	assert.Equal(t, "MSG999", booking.Communications.WhatsappMessageID)
	assert.NotNil(t, booking.Communications.LastContact)

	persisted, err := store.FindByBookingID(booking.BookingID)
	require.NoError(t, err)
	assert.True(t, persisted.Communications.WhatsappSent)

	name, data := events.last()
	assert.Equal(t, realtime.EventNewBooking, name)
	assert.Equal(t, booking.BookingID, data["bookingId"])
	assert.Equal(t, "أحمد محمد", data["customerName"])
	assert.Equal(t, "معالجة تأشيرة عمل", data["serviceTitle"])
}

func TestCreateBooking_SurvivesNotificationFailure(t *testing.T) {
	notifier := &fakeNotifier{bookingSent: false}
	svc, store, events, serviceID := newBookingFixture(notifier)

	booking, sent, fieldErrs, err := svc.Create(validCreateRequest(serviceID))

	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.False(t, sent)

	persisted, err := store.FindByBookingID(booking.BookingID)
	require.NoError(t, err)
	assert.False(t, persisted.Communications.WhatsappSent)
	assert.Empty(t, persisted.Communications.WhatsappMessageID)

	// The broadcast still goes out
	name, _ := events.last()
	assert.Equal(t, realtime.EventNewBooking, name)
}

func TestCreateBooking_ValidationErrors(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, store, _, _ := newBookingFixture(notifier)

	req := CreateBookingRequest{
		CustomerInfo: CustomerInfoRequest{FullName: "", PhoneNumber: "abc"},
		PaymentInfo:  PaymentInfoRequest{TotalAmount: 0},
	}
	booking, _, fieldErrs, err := svc.Create(req)

	require.NoError(t, err)
	assert.Nil(t, booking)
	assert.Len(t, fieldErrs, 4)

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "customerInfo.fullName")
	assert.Contains(t, fields, "customerInfo.phoneNumber")
	assert.Contains(t, fields, "paymentInfo.totalAmount")
	assert.Contains(t, fields, "serviceDetails.serviceId")

	assert.Empty(t, store.bookings, "nothing may be persisted on validation failure")
	assert.Empty(t, notifier.bookingCalls)
}

func TestCreateBooking_ServiceNotFound(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, store, _, _ := newBookingFixture(notifier)

	req := validCreateRequest(uuid.New())
	booking, _, fieldErrs, err := svc.Create(req)

	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Nil(t, booking)
	assert.Empty(t, fieldErrs)
	assert.Empty(t, store.bookings)
}

func TestCreateBooking_DefaultsUnknownPaymentMethod(t *testing.T) {
	notifier := &fakeNotifier{bookingSent: true}
	svc, _, _, serviceID := newBookingFixture(notifier)

	req := validCreateRequest(serviceID)
	req.PaymentInfo.PaymentMethod = "bitcoin"
	req.CustomerInfo.Nationality = ""

	booking, _, _, err := svc.Create(req)

	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, booking.PaymentInfo.PaymentMethod)
	assert.Equal(t, "Saudi Arabia", booking.CustomerInfo.Nationality)
}

func TestUpdateStatus_Success(t *testing.T) {
	notifier := &fakeNotifier{bookingSent: true, updateSent: true}
	svc, _, events, serviceID := newBookingFixture(notifier)

	booking, _, _, err := svc.Create(validCreateRequest(serviceID))
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(booking.BookingID, models.StatusConfirmed, true)

	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.BookingStatus)

	require.Len(t, notifier.updateCalls, 1)
	assert.Equal(t, booking.CustomerInfo.PhoneNumber, notifier.updateCalls[0].phone)
	assert.Contains(t, notifier.updateCalls[0].message, booking.BookingID)

	name, data := events.last()
	assert.Equal(t, realtime.EventBookingStatusUpdate, name)
	assert.Equal(t, booking.BookingID, data["bookingId"])
	assert.Equal(t, models.StatusConfirmed, data["status"])
}

func TestUpdateStatus_NotifyOptOut(t *testing.T) {
	notifier := &fakeNotifier{bookingSent: true, updateSent: true}
	svc, _, _, serviceID := newBookingFixture(notifier)

	booking, _, _, err := svc.Create(validCreateRequest(serviceID))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(booking.BookingID, models.StatusCancelled, false)

	require.NoError(t, err)
	assert.Empty(t, notifier.updateCalls)
}

func TestUpdateStatus_FailedNotificationDoesNotFailUpdate(t *testing.T) {
	notifier := &fakeNotifier{bookingSent: true, updateSent: false}
	svc, store, _, serviceID := newBookingFixture(notifier)

	booking, _, _, err := svc.Create(validCreateRequest(serviceID))
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(booking.BookingID, models.StatusCompleted, true)

	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.BookingStatus)

	persisted, err := store.FindByBookingID(booking.BookingID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, persisted.BookingStatus)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, _, _, serviceID := newBookingFixture(notifier)

	booking, _, _, err := svc.Create(validCreateRequest(serviceID))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(booking.BookingID, models.BookingStatus("shipped"), true)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_BookingNotFound(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, _, _, _ := newBookingFixture(notifier)

	_, err := svc.UpdateStatus("BK-0000000000000-XXXXXX", models.StatusConfirmed, true)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestAddNotes(t *testing.T) {
	notifier := &fakeNotifier{bookingSent: true}
	svc, _, _, serviceID := newBookingFixture(notifier)

	booking, _, _, err := svc.Create(validCreateRequest(serviceID))
	require.NoError(t, err)

	adminNote := "تم التواصل مع العميل"
	updated, err := svc.AddNotes(booking.BookingID, &adminNote, nil)
	require.NoError(t, err)
	assert.Equal(t, adminNote, updated.Notes.Admin)

	// Notes overwrite, not append
	replacement := "ملاحظة جديدة"
	updated, err = svc.AddNotes(booking.BookingID, &replacement, nil)
	require.NoError(t, err)
	assert.Equal(t, replacement, updated.Notes.Admin)
}

func TestAddNotes_RequiresANote(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, _, _, _ := newBookingFixture(notifier)

	_, err := svc.AddNotes("BK-0000000000000-XXXXXX", nil, nil)
	assert.ErrorIs(t, err, ErrNoNoteProvided)
}

func TestList_PaginationDefaultsAndCaps(t *testing.T) {
	notifier := &fakeNotifier{bookingSent: true}
	svc, _, _, serviceID := newBookingFixture(notifier)

	for i := 0; i < 15; i++ {
		_, _, _, err := svc.Create(validCreateRequest(serviceID))
		require.NoError(t, err)
	}

	bookings, pagination, err := svc.List(BookingFilter{})
	require.NoError(t, err)
	assert.Len(t, bookings, 10, "default page size is 10")
	assert.Equal(t, 1, pagination.Current)
	assert.Equal(t, 2, pagination.Pages)
	assert.Equal(t, int64(15), pagination.Total)

	bookings, pagination, err = svc.List(BookingFilter{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, bookings, 5)
	assert.Equal(t, 2, pagination.Current)

	_, pagination, err = svc.List(BookingFilter{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, 1, pagination.Pages, "limit is capped at 100")
}

func TestGetByBookingID_NotFound(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, _, _, _ := newBookingFixture(notifier)

	_, err := svc.GetByBookingID("missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestFollowUpRun_RemindsOverduePendingOnly(t *testing.T) {
	notifier := &fakeNotifier{updateSent: true}
	store := newFakeBookingStore()

	overdue := &models.Booking{
		BookingID:     "BK-1-OLDPND",
		CustomerInfo:  models.CustomerInfo{FullName: "أحمد", PhoneNumber: "0501112222"},
		BookingStatus: models.StatusPending,
	}
	store.bookings[overdue.BookingID] = overdue
	overdue.CreatedAt = time.Now().AddDate(0, 0, -5)

	confirmed := &models.Booking{
		BookingID:     "BK-2-CNFRMD",
		CustomerInfo:  models.CustomerInfo{FullName: "سارة", PhoneNumber: "0503334444"},
		BookingStatus: models.StatusConfirmed,
	}
	store.bookings[confirmed.BookingID] = confirmed
	confirmed.CreatedAt = time.Now().AddDate(0, 0, -5)

	fresh := &models.Booking{
		BookingID:     "BK-3-FRESHP",
		CustomerInfo:  models.CustomerInfo{FullName: "خالد", PhoneNumber: "0505556666"},
		BookingStatus: models.StatusPending,
	}
	store.bookings[fresh.BookingID] = fresh
	fresh.CreatedAt = time.Now()

	followup := NewFollowUpService(store, notifier)
	followup.Run()

	require.Len(t, notifier.updateCalls, 1)
	assert.Equal(t, "0501112222", notifier.updateCalls[0].phone)
	assert.Contains(t, notifier.updateCalls[0].message, "BK-1-OLDPND")

	reminded, err := store.FindByBookingID("BK-1-OLDPND")
	require.NoError(t, err)
	assert.NotNil(t, reminded.Communications.LastContact)
}
