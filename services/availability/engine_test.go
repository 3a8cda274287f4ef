package availability

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"slotify/models"
	"slotify/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stub collaborators

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type stubCatalogRepo struct {
	services map[string]*models.Service
	err      error
}

func (s *stubCatalogRepo) Create(ctx context.Context, svc *models.Service) error { return nil }

func (s *stubCatalogRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	svc, ok := s.services[id]
	if !ok {
		return nil, nil
	}
	copied := *svc
	return &copied, nil
}

func (s *stubCatalogRepo) GetByProvider(ctx context.Context, providerID string) ([]models.Service, error) {
	return nil, nil
}

func (s *stubCatalogRepo) Update(ctx context.Context, svc *models.Service) error { return nil }

func (s *stubCatalogRepo) SetActive(ctx context.Context, id string, active bool) error { return nil }

type stubScheduleRepo struct {
	weekly        map[time.Weekday][]models.TimeSegment
	overrides     map[string]*models.ScheduleOverride
	err           error
	weeklyCalls   int
	overrideCalls int
}

func (s *stubScheduleRepo) GetWeeklyHours(ctx context.Context, serviceID string, weekday time.Weekday) (*models.WeeklyHours, error) {
	s.weeklyCalls++
	if s.err != nil {
		return nil, s.err
	}
	segments, ok := s.weekly[weekday]
	if !ok {
		return nil, nil
	}
	return &models.WeeklyHours{ServiceID: serviceID, Weekday: weekday, Segments: segments}, nil
}

func (s *stubScheduleRepo) GetAllWeeklyHours(ctx context.Context, serviceID string) ([]models.WeeklyHours, error) {
	return nil, nil
}

func (s *stubScheduleRepo) ReplaceWeeklyHours(ctx context.Context, serviceID string, days []models.WeeklyHours) error {
	return nil
}

func (s *stubScheduleRepo) GetOverride(ctx context.Context, serviceID, date string) (*models.ScheduleOverride, error) {
	s.overrideCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.overrides[date], nil
}

func (s *stubScheduleRepo) ListOverrides(ctx context.Context, serviceID string) ([]models.ScheduleOverride, error) {
	return nil, nil
}

func (s *stubScheduleRepo) UpsertOverride(ctx context.Context, override *models.ScheduleOverride) error {
	return nil
}

func (s *stubScheduleRepo) DeleteOverride(ctx context.Context, serviceID, date string) (bool, error) {
	return false, nil
}

type stubBookingRepo struct {
	bookings []models.Booking
	err      error
}

func (s *stubBookingRepo) Create(ctx context.Context, b *models.Booking) error { return nil }

func (s *stubBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) GetActiveByServiceBetween(ctx context.Context, serviceID string, from, to time.Time) ([]models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Booking
	for _, b := range s.bookings {
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

func (s *stubBookingRepo) GetByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) GetByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) UpdateStatusFrom(ctx context.Context, id string, from []models.BookingStatus, to models.BookingStatus) (bool, error) {
	return false, nil
}

func (s *stubBookingRepo) UpdateTimeAndNotesFrom(ctx context.Context, id string, from []models.BookingStatus, start time.Time, notes *string, to models.BookingStatus) (bool, error) {
	return false, nil
}

func (s *stubBookingRepo) UpdateNotesFrom(ctx context.Context, id string, from []models.BookingStatus, notes string) (bool, error) {
	return false, nil
}

// Fixture

const (
	testServiceID  = "svc-1"
	testProviderID = "prov-1"
	testDate       = "2026-03-02" // a Monday
)

type engineFixture struct {
	catalog  *stubCatalogRepo
	schedule *stubScheduleRepo
	bookings *stubBookingRepo
	engine   *DefaultAvailabilityEngine
}

// newEngineFixture wires the engine over one active 60-minute service with
// the Monday split shift 09:00-12:00 / 13:00-17:00. The clock sits on the
// day before the test date so the now-cutoff stays out of the way.
func newEngineFixture() *engineFixture {
	catalog := &stubCatalogRepo{services: map[string]*models.Service{
		testServiceID: {
			ID:              testServiceID,
			ProviderID:      testProviderID,
			Name:            "Deep tissue massage",
			DurationMinutes: 60,
			Active:          true,
		},
	}}
	schedule := &stubScheduleRepo{
		weekly: map[time.Weekday][]models.TimeSegment{
			time.Monday: {seg(540, 720), seg(780, 1020)},
		},
		overrides: map[string]*models.ScheduleOverride{},
	}
	bookings := &stubBookingRepo{}

	return &engineFixture{
		catalog:  catalog,
		schedule: schedule,
		bookings: bookings,
		engine: &DefaultAvailabilityEngine{
			CatalogRepo:  catalog,
			ScheduleRepo: schedule,
			BookingRepo:  bookings,
			Clock:        fixedClock{now: testDay.Add(-12 * time.Hour)},
		},
	}
}

func (f *engineFixture) addBooking(id string, start time.Time, status models.BookingStatus) {
	f.bookings.bookings = append(f.bookings.bookings, models.Booking{
		ID:        id,
		ServiceID: testServiceID,
		Start:     start,
		Status:    status,
	})
}

// IsSlotAvailable

func TestIsSlotAvailableUnknownService(t *testing.T) {
	f := newEngineFixture()

	_, err := f.engine.IsSlotAvailable(context.Background(), "no-such-service", at(9, 0))
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestIsSlotAvailablePastStart(t *testing.T) {
	f := newEngineFixture()
	f.engine.Clock = fixedClock{now: at(10, 30)}

	available, err := f.engine.IsSlotAvailable(context.Background(), testServiceID, at(9, 0))
	require.NoError(t, err)
	assert.False(t, available, "a start before now is not an error, just unavailable")
}

func TestIsSlotAvailableClosedDay(t *testing.T) {
	f := newEngineFixture()

	// Tuesday has no weekly hours and no override.
	tuesday := testDay.AddDate(0, 0, 1).Add(10 * time.Hour)
	available, err := f.engine.IsSlotAvailable(context.Background(), testServiceID, tuesday)
	require.NoError(t, err)
	assert.False(t, available)
}

func TestIsSlotAvailableDayOffOverride(t *testing.T) {
	f := newEngineFixture()
	f.schedule.overrides[testDate] = &models.ScheduleOverride{
		ServiceID: testServiceID, Date: testDate, IsDayOff: true,
	}

	available, err := f.engine.IsSlotAvailable(context.Background(), testServiceID, at(10, 0))
	require.NoError(t, err)
	assert.False(t, available, "a day off closes the date regardless of weekly hours")
}

func TestIsSlotAvailableSegmentFit(t *testing.T) {
	f := newEngineFixture()

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"inside first segment", at(9, 0), true},
		{"last full slot of first segment", at(11, 0), true},
		{"in the lunch gap", at(12, 0), false},
		{"inside second segment", at(16, 0), true},
		{"would run past segment end", at(16, 30), false},
		{"before opening", at(8, 0), false},
		{"after closing", at(17, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			available, err := f.engine.IsSlotAvailable(context.Background(), testServiceID, tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, available)
		})
	}
}

func TestIsSlotAvailableBackToBackAdjacency(t *testing.T) {
	f := newEngineFixture()
	f.addBooking("b1", at(10, 0), models.StatusConfirmed)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"same start as booking", at(10, 0), false},
		{"overlapping tail", at(9, 30), false},
		{"overlapping head", at(10, 30), false},
		{"ends exactly at booking start", at(9, 0), true},
		{"starts exactly at booking end", at(11, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			available, err := f.engine.IsSlotAvailable(context.Background(), testServiceID, tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, available)
		})
	}
}

func TestIsSlotAvailableTerminalBookingsNeverBlock(t *testing.T) {
	f := newEngineFixture()
	f.addBooking("b1", at(10, 0), models.StatusCancelled)
	f.addBooking("b2", at(13, 0), models.StatusDeclined)
	f.addBooking("b3", at(14, 0), models.StatusCompleted)

	for _, start := range []time.Time{at(10, 0), at(13, 0), at(14, 0)} {
		available, err := f.engine.IsSlotAvailable(context.Background(), testServiceID, start)
		require.NoError(t, err)
		assert.True(t, available, "only Pending and Confirmed bookings block a slot")
	}
}

func TestIsSlotAvailableExcludingIgnoresOneBooking(t *testing.T) {
	f := newEngineFixture()
	f.addBooking("b1", at(10, 0), models.StatusConfirmed)
	f.addBooking("b2", at(14, 0), models.StatusPending)

	// The excluded booking no longer blocks its own slot.
	available, err := f.engine.IsSlotAvailableExcluding(context.Background(), testServiceID, at(10, 0), "b1")
	require.NoError(t, err)
	assert.True(t, available)

	// Other bookings still do.
	available, err = f.engine.IsSlotAvailableExcluding(context.Background(), testServiceID, at(14, 0), "b1")
	require.NoError(t, err)
	assert.False(t, available)
}

func TestIsSlotAvailableStorageErrorPropagates(t *testing.T) {
	f := newEngineFixture()
	sentinel := errors.New("mongo is down")
	f.schedule.err = sentinel

	_, err := f.engine.IsSlotAvailable(context.Background(), testServiceID, at(10, 0))
	require.ErrorIs(t, err, sentinel, "infrastructure failures pass through untranslated")
}

// GetAvailableSlots

func TestGetAvailableSlotsFloorCountPerSegment(t *testing.T) {
	f := newEngineFixture()

	slots, err := f.engine.GetAvailableSlots(context.Background(), testServiceID, testDate)
	require.NoError(t, err)

	// floor(180/60) + floor(240/60) slots, each exactly one duration apart
	// within its segment, ascending.
	want := []time.Time{at(9, 0), at(10, 0), at(11, 0), at(13, 0), at(14, 0), at(15, 0), at(16, 0)}
	assert.Equal(t, want, slots)
}

func TestGetAvailableSlotsUnknownService(t *testing.T) {
	f := newEngineFixture()

	_, err := f.engine.GetAvailableSlots(context.Background(), "no-such-service", testDate)
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetAvailableSlotsInvalidDate(t *testing.T) {
	f := newEngineFixture()

	_, err := f.engine.GetAvailableSlots(context.Background(), testServiceID, "03/02/2026")
	require.Error(t, err)
}

func TestGetAvailableSlotsDayOffOverride(t *testing.T) {
	f := newEngineFixture()
	f.schedule.overrides[testDate] = &models.ScheduleOverride{
		ServiceID: testServiceID, Date: testDate, IsDayOff: true,
	}

	slots, err := f.engine.GetAvailableSlots(context.Background(), testServiceID, testDate)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGetAvailableSlotsOverrideReplacesWeeklyEntirely(t *testing.T) {
	f := newEngineFixture()
	// The override substitutes an evening window; none of the weekly
	// morning or afternoon slots survive.
	f.schedule.overrides[testDate] = &models.ScheduleOverride{
		ServiceID: testServiceID, Date: testDate,
		Segments: []models.TimeSegment{seg(1080, 1200)}, // 18:00-20:00
	}

	slots, err := f.engine.GetAvailableSlots(context.Background(), testServiceID, testDate)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(18, 0), at(19, 0)}, slots)
}

func TestGetAvailableSlotsDropsBookedSlots(t *testing.T) {
	f := newEngineFixture()
	f.addBooking("b1", at(10, 0), models.StatusPending)
	f.addBooking("b2", at(14, 0), models.StatusConfirmed)
	f.addBooking("b3", at(15, 0), models.StatusCancelled)

	slots, err := f.engine.GetAvailableSlots(context.Background(), testServiceID, testDate)
	require.NoError(t, err)

	want := []time.Time{at(9, 0), at(11, 0), at(13, 0), at(15, 0), at(16, 0)}
	assert.Equal(t, want, slots)
}

func TestGetAvailableSlotsAppliesNowCutoff(t *testing.T) {
	f := newEngineFixture()
	f.engine.Clock = fixedClock{now: at(13, 30)}

	slots, err := f.engine.GetAvailableSlots(context.Background(), testServiceID, testDate)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(14, 0), at(15, 0), at(16, 0)}, slots)
}

func TestGetAvailableSlotsSortsAcrossUnorderedSegments(t *testing.T) {
	f := newEngineFixture()
	// Storage order puts the afternoon first; the result is still sorted.
	f.schedule.weekly[time.Monday] = []models.TimeSegment{seg(780, 1020), seg(540, 720)}

	slots, err := f.engine.GetAvailableSlots(context.Background(), testServiceID, testDate)
	require.NoError(t, err)

	require.Len(t, slots, 7)
	assert.True(t, sort.SliceIsSorted(slots, func(i, j int) bool { return slots[i].Before(slots[j]) }))
	assert.Equal(t, at(9, 0), slots[0])
	assert.Equal(t, at(16, 0), slots[6])
}

func TestGetAvailableSlotsIsIdempotent(t *testing.T) {
	f := newEngineFixture()
	f.addBooking("b1", at(10, 0), models.StatusConfirmed)

	first, err := f.engine.GetAvailableSlots(context.Background(), testServiceID, testDate)
	require.NoError(t, err)
	second, err := f.engine.GetAvailableSlots(context.Background(), testServiceID, testDate)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetAvailableSlotsBookingStorageErrorPropagates(t *testing.T) {
	f := newEngineFixture()
	sentinel := errors.New("mongo is down")
	f.bookings.err = sentinel

	_, err := f.engine.GetAvailableSlots(context.Background(), testServiceID, testDate)
	require.ErrorIs(t, err, sentinel)
}

// Guard against accidental dependence on wall-clock time in the fixture.

func TestFixtureClockIsBeforeTestDate(t *testing.T) {
	f := newEngineFixture()
	day, err := utils.DayStart(testDate)
	require.NoError(t, err)
	assert.True(t, f.engine.Clock.Now().Before(day))
}
