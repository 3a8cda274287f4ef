package booking

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"slotify/models"
	"slotify/services/availability"
	"slotify/utils"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

// testDay is midnight UTC of 2026-03-02, a Monday.
var testDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return testDay.Add(time.Duration(hour*60+min) * time.Minute)
}

// mutableClock lets a test move "now" mid-scenario.
type mutableClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *mutableClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *mutableClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// fakeBookingRepo is an in-memory BookingRepository with honest conditional
// update semantics, safe for the concurrent create test.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
	// beforeConditionalUpdate runs under the repo mutex right before a
	// conditional write evaluates its guard, to simulate a racing writer
	// that slipped in after an expired lock.
	beforeConditionalUpdate func(bookings map[string]models.Booking)
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]models.Booking{}}
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := b
	return &copied, nil
}

func (r *fakeBookingRepo) GetActiveByServiceBetween(ctx context.Context, serviceID string, from, to time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ServiceID != serviceID {
			continue
		}
		if b.Status != models.StatusPending && b.Status != models.StatusConfirmed {
			continue
		}
		if b.Start.Before(from) || !b.Start.Before(to) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) conditionalUpdate(id string, from []models.BookingStatus, mutate func(*models.Booking)) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.beforeConditionalUpdate != nil {
		r.beforeConditionalUpdate(r.bookings)
	}
	b, ok := r.bookings[id]
	if !ok || !statusIn(b.Status, from) {
		return false, nil
	}
	mutate(&b)
	b.UpdatedAt = time.Now().UTC()
	r.bookings[id] = b
	return true, nil
}

func (r *fakeBookingRepo) UpdateStatusFrom(ctx context.Context, id string, from []models.BookingStatus, to models.BookingStatus) (bool, error) {
	return r.conditionalUpdate(id, from, func(b *models.Booking) {
		b.Status = to
	})
}

func (r *fakeBookingRepo) UpdateTimeAndNotesFrom(ctx context.Context, id string, from []models.BookingStatus, start time.Time, notes *string, to models.BookingStatus) (bool, error) {
	return r.conditionalUpdate(id, from, func(b *models.Booking) {
		b.Start = start
		b.Status = to
		if notes != nil {
			b.Notes = *notes
		}
	})
}

func (r *fakeBookingRepo) UpdateNotesFrom(ctx context.Context, id string, from []models.BookingStatus, notes string) (bool, error) {
	return r.conditionalUpdate(id, from, func(b *models.Booking) {
		b.Notes = notes
	})
}

// stored returns a snapshot of one booking for assertions.
func (r *fakeBookingRepo) stored(id string) models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bookings[id]
}

// fakeCatalogRepo is an in-memory service directory.
type fakeCatalogRepo struct {
	mu       sync.Mutex
	services map[string]models.Service
}

func (r *fakeCatalogRepo) Create(ctx context.Context, svc *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[svc.ID] = *svc
	return nil
}

func (r *fakeCatalogRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	svc, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	copied := svc
	return &copied, nil
}

func (r *fakeCatalogRepo) GetByProvider(ctx context.Context, providerID string) ([]models.Service, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) Update(ctx context.Context, svc *models.Service) error { return nil }

func (r *fakeCatalogRepo) SetActive(ctx context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	svc, ok := r.services[id]
	if ok {
		svc.Active = active
		r.services[id] = svc
	}
	return nil
}

// fakeScheduleRepo serves one weekly schedule to the availability engine.
type fakeScheduleRepo struct {
	weekly    map[time.Weekday][]models.TimeSegment
	overrides map[string]*models.ScheduleOverride
}

func (r *fakeScheduleRepo) GetWeeklyHours(ctx context.Context, serviceID string, weekday time.Weekday) (*models.WeeklyHours, error) {
	segments, ok := r.weekly[weekday]
	if !ok {
		return nil, nil
	}
	return &models.WeeklyHours{ServiceID: serviceID, Weekday: weekday, Segments: segments}, nil
}

func (r *fakeScheduleRepo) GetAllWeeklyHours(ctx context.Context, serviceID string) ([]models.WeeklyHours, error) {
	return nil, nil
}

func (r *fakeScheduleRepo) ReplaceWeeklyHours(ctx context.Context, serviceID string, days []models.WeeklyHours) error {
	return nil
}

func (r *fakeScheduleRepo) GetOverride(ctx context.Context, serviceID, date string) (*models.ScheduleOverride, error) {
	return r.overrides[date], nil
}

func (r *fakeScheduleRepo) ListOverrides(ctx context.Context, serviceID string) ([]models.ScheduleOverride, error) {
	return nil, nil
}

func (r *fakeScheduleRepo) UpsertOverride(ctx context.Context, override *models.ScheduleOverride) error {
	return nil
}

func (r *fakeScheduleRepo) DeleteOverride(ctx context.Context, serviceID, date string) (bool, error) {
	return false, nil
}

// recordingNotifier captures dispatched events; the real dispatcher is
// fire-and-forget, so recording is all there is to observe.
type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) record(event string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) recorded() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.events...)
}

func (n *recordingNotifier) NotifyCreated(ctx context.Context, b models.Booking) { n.record("created") }

func (n *recordingNotifier) NotifyConfirmed(ctx context.Context, b models.Booking) {
	n.record("confirmed")
}

func (n *recordingNotifier) NotifyDeclined(ctx context.Context, b models.Booking) {
	n.record("declined")
}

func (n *recordingNotifier) NotifyCancelled(ctx context.Context, b models.Booking, cancelledBy string) {
	n.record("cancelled by " + cancelledBy)
}

func (n *recordingNotifier) NotifyRescheduled(ctx context.Context, b models.Booking) {
	n.record("rescheduled")
}

func (n *recordingNotifier) ScheduleReminder(ctx context.Context, b models.Booking) {
	n.record("reminder")
}

// countingEngine wraps the real availability engine and counts slot checks,
// so tests can assert an operation never consulted availability.
type countingEngine struct {
	availability.AvailabilityEngine
	slotChecks int32
}

func (e *countingEngine) IsSlotAvailable(ctx context.Context, serviceID string, start time.Time) (bool, error) {
	atomic.AddInt32(&e.slotChecks, 1)
	return e.AvailabilityEngine.IsSlotAvailable(ctx, serviceID, start)
}

func (e *countingEngine) IsSlotAvailableExcluding(ctx context.Context, serviceID string, start time.Time, excludeBookingID string) (bool, error) {
	atomic.AddInt32(&e.slotChecks, 1)
	return e.AvailabilityEngine.IsSlotAvailableExcluding(ctx, serviceID, start, excludeBookingID)
}

func (e *countingEngine) checks() int32 {
	return atomic.LoadInt32(&e.slotChecks)
}

// Fixture

const (
	testServiceID  = "svc-1"
	testProviderID = "prov-1"
	testCustomerID = "cust-1"
)

type serviceFixture struct {
	bookings *fakeBookingRepo
	catalog  *fakeCatalogRepo
	schedule *fakeScheduleRepo
	notifier *recordingNotifier
	engine   *countingEngine
	clock    *mutableClock
	svc      *DefaultBookingService
}

// newServiceFixture builds the booking service over in-memory storage and a
// real availability engine: one active 60-minute service, Mondays open
// 09:00-17:00, the clock on the evening before the test date. Advisory locks
// run against a per-test miniredis.
func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	prev := utils.CacheClient
	utils.CacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { utils.CacheClient = prev })

	clock := &mutableClock{now: testDay.Add(-12 * time.Hour)}
	bookings := newFakeBookingRepo()
	catalog := &fakeCatalogRepo{services: map[string]models.Service{
		testServiceID: {
			ID:              testServiceID,
			ProviderID:      testProviderID,
			Name:            "Deep tissue massage",
			DurationMinutes: 60,
			Active:          true,
		},
	}}
	schedule := &fakeScheduleRepo{
		weekly: map[time.Weekday][]models.TimeSegment{
			time.Monday: {{Start: 540, End: 1020}},
		},
		overrides: map[string]*models.ScheduleOverride{},
	}
	notifier := &recordingNotifier{}
	engine := &countingEngine{
		AvailabilityEngine: &availability.DefaultAvailabilityEngine{
			CatalogRepo:  catalog,
			ScheduleRepo: schedule,
			BookingRepo:  bookings,
			Clock:        clock,
		},
	}

	return &serviceFixture{
		bookings: bookings,
		catalog:  catalog,
		schedule: schedule,
		notifier: notifier,
		engine:   engine,
		clock:    clock,
		svc: &DefaultBookingService{
			BookingRepo: bookings,
			CatalogRepo: catalog,
			Engine:      engine,
			Notifier:    notifier,
			Clock:       clock,
		},
	}
}

// seedBooking plants a booking directly in storage, bypassing Create.
func (f *serviceFixture) seedBooking(id string, start time.Time, status models.BookingStatus, notes string) {
	f.bookings.mu.Lock()
	defer f.bookings.mu.Unlock()
	f.bookings.bookings[id] = models.Booking{
		ID:         id,
		ServiceID:  testServiceID,
		ProviderID: testProviderID,
		CustomerID: testCustomerID,
		Start:      start,
		Status:     status,
		Notes:      notes,
	}
}
