package availability

import (
	"testing"
	"time"

	"slotify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(start, end int) models.TimeSegment {
	return models.TimeSegment{Start: start, End: end}
}

// testDay is midnight UTC of 2026-03-02, a Monday.
var testDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

// distantPast keeps the now-cutoff out of tests that are not about it.
var distantPast = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return testDay.Add(time.Duration(hour*60+min) * time.Minute)
}

func TestGenerateSlotsTilesFixedStride(t *testing.T) {
	// 09:00-12:00, duration 60: exactly floor(180/60) = 3 slots.
	slots := GenerateSlots([]models.TimeSegment{seg(540, 720)}, 60, testDay, distantPast)

	require.Len(t, slots, 3)
	assert.Equal(t, at(9, 0), slots[0])
	assert.Equal(t, at(10, 0), slots[1])
	assert.Equal(t, at(11, 0), slots[2])
}

func TestGenerateSlotsDiscardsPartialTrailingTime(t *testing.T) {
	// 09:00-12:00 with 50-minute appointments: 09:00, 09:50, 10:40 fit;
	// 11:30 would run past noon and is never emitted short.
	slots := GenerateSlots([]models.TimeSegment{seg(540, 720)}, 50, testDay, distantPast)

	require.Len(t, slots, 3)
	assert.Equal(t, at(9, 0), slots[0])
	assert.Equal(t, at(9, 50), slots[1])
	assert.Equal(t, at(10, 40), slots[2])
}

func TestGenerateSlotsSegmentShorterThanDuration(t *testing.T) {
	// A 45-minute window cannot hold a 60-minute appointment.
	slots := GenerateSlots([]models.TimeSegment{seg(540, 585)}, 60, testDay, distantPast)
	assert.Empty(t, slots)
}

func TestGenerateSlotsSplitShift(t *testing.T) {
	// 09:00-12:00 and 13:00-17:00 with 60-minute appointments: the lunch
	// gap yields no 12:00 slot.
	segments := []models.TimeSegment{seg(540, 720), seg(780, 1020)}
	slots := GenerateSlots(segments, 60, testDay, distantPast)

	want := []time.Time{at(9, 0), at(10, 0), at(11, 0), at(13, 0), at(14, 0), at(15, 0), at(16, 0)}
	assert.Equal(t, want, slots)
}

func TestGenerateSlotsOvernightSegmentWraps(t *testing.T) {
	// 22:00-02:00 spans midnight: the tail slots land on the next day.
	slots := GenerateSlots([]models.TimeSegment{seg(1320, 120)}, 60, testDay, distantPast)

	want := []time.Time{
		at(22, 0),
		at(23, 0),
		testDay.AddDate(0, 0, 1),
		testDay.AddDate(0, 0, 1).Add(time.Hour),
	}
	assert.Equal(t, want, slots)
}

func TestGenerateSlotsDropsCandidatesBeforeNow(t *testing.T) {
	now := at(10, 30)
	slots := GenerateSlots([]models.TimeSegment{seg(540, 720)}, 60, testDay, now)

	// 09:00 and 10:00 are gone; 11:00 survives.
	assert.Equal(t, []time.Time{at(11, 0)}, slots)
}

func TestGenerateSlotsKeepsCandidateExactlyAtNow(t *testing.T) {
	// Only candidates strictly before now are dropped.
	now := at(10, 0)
	slots := GenerateSlots([]models.TimeSegment{seg(540, 720)}, 60, testDay, now)

	assert.Equal(t, []time.Time{at(10, 0), at(11, 0)}, slots)
}

func TestGenerateSlotsEmitsInSegmentOrder(t *testing.T) {
	// Segments are processed verbatim; ordering the output is the
	// engine's job, not the generator's.
	segments := []models.TimeSegment{seg(780, 900), seg(540, 660)}
	slots := GenerateSlots(segments, 60, testDay, distantPast)

	want := []time.Time{at(13, 0), at(14, 0), at(9, 0), at(10, 0)}
	assert.Equal(t, want, slots)
}

func TestGenerateSlotsNonPositiveDuration(t *testing.T) {
	assert.Nil(t, GenerateSlots([]models.TimeSegment{seg(540, 720)}, 0, testDay, distantPast))
	assert.Nil(t, GenerateSlots([]models.TimeSegment{seg(540, 720)}, -15, testDay, distantPast))
}

func TestGenerateSlotsIsRestartable(t *testing.T) {
	segments := []models.TimeSegment{seg(540, 720), seg(780, 1020)}

	first := GenerateSlots(segments, 45, testDay, distantPast)
	second := GenerateSlots(segments, 45, testDay, distantPast)
	assert.Equal(t, first, second)
}
