package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aarav/internal/models/trip_models"
)

func TestAddVisitCapsAtTwo(t *testing.T) {
	svc := NewItineraryService()
	state := trip_models.NewTripState()

	assert.Equal(t, VisitAdded, svc.AddVisit(state, "a"))
	assert.Equal(t, AlreadyAdded, svc.AddVisit(state, "a"))
	assert.Equal(t, VisitAdded, svc.AddVisit(state, "b"))
	assert.Equal(t, DayFull, svc.AddVisit(state, "c"))

	day := svc.CurrentDay(state)
	assert.Equal(t, []string{"a", "b"}, day.Visits)
}

func TestCurrentDayAnchorsHotel(t *testing.T) {
	svc := NewItineraryService()
	state := trip_models.NewTripState()
	state.SetHotel("Boudhanath Stupa", trip_models.LatLng{27.7215, 85.3620})
	day := svc.CurrentDay(state)

	assert.Equal(t, 1, day.Index)
	assert.Equal(t, "boudhanath-stupa", day.HotelPlaceID)

	// Without a hotel the day still materializes, just unanchored.
	bare := trip_models.NewTripState()
	assert.Empty(t, svc.CurrentDay(bare).HotelPlaceID)
}

func TestConfirmAdvancesDay(t *testing.T) {
	svc := NewItineraryService()
	state := trip_models.NewTripState()

	svc.AddVisit(state, "a")
	svc.ConfirmCurrentDay(state)

	assert.Equal(t, 2, state.Trip.CurrentDay)
	assert.True(t, state.Trip.Days[0].Confirmed)
	assert.Equal(t, 1, state.ConfirmedDayCount())

	// Day 2 starts empty and accepts its own visits.
	assert.Equal(t, VisitAdded, svc.AddVisit(state, "a"))
	assert.Equal(t, 2, svc.CurrentDay(state).Index)
}

func TestClearCurrentDayLeavesConfirmedDaysAlone(t *testing.T) {
	svc := NewItineraryService()
	state := trip_models.NewTripState()

	svc.AddVisit(state, "a")
	svc.ConfirmCurrentDay(state)
	svc.AddVisit(state, "b")

	svc.ClearCurrentDay(state)
	assert.Empty(t, svc.CurrentDay(state).Visits)
	require.True(t, state.Trip.Days[0].Confirmed)
	assert.Equal(t, []string{"a"}, state.Trip.Days[0].Visits)
}

func TestIsComplete(t *testing.T) {
	svc := NewItineraryService()
	state := trip_models.NewTripState()

	// No declared trip length means never complete.
	svc.AddVisit(state, "a")
	svc.ConfirmCurrentDay(state)
	assert.False(t, svc.IsComplete(state))

	state.Profile.TimeDays = 2
	assert.False(t, svc.IsComplete(state))

	svc.AddVisit(state, "b")
	svc.ConfirmCurrentDay(state)
	assert.True(t, svc.IsComplete(state))
}

func TestDayPreview(t *testing.T) {
	svc := NewItineraryService()
	day := &trip_models.Day{Index: 1}

	assert.Equal(t, "Day 1 is still empty.", svc.DayPreview(day, nil))

	one := []trip_models.Place{{Name: "Garden of Dreams", CostRangeText: "NPR 400 entry"}}
	out := svc.DayPreview(day, one)
	assert.Contains(t, out, "Day 1: Garden of Dreams, taken slowly.")
	assert.Contains(t, out, "Entry costs: NPR 400 entry.")

	two := []trip_models.Place{
		{Name: "Kathmandu Durbar Square", CostRangeText: "NPR 1,000 entry"},
		{Name: "Boudhanath Stupa"},
	}
	out = svc.DayPreview(day, two)
	assert.Contains(t, out, "Kathmandu Durbar Square in the morning, Boudhanath Stupa in the afternoon")
	assert.Contains(t, out, "Entry costs: NPR 1,000 entry.")
}

func TestHasBuildableTrip(t *testing.T) {
	svc := NewItineraryService()
	state := trip_models.NewTripState()

	assert.False(t, svc.HasBuildableTrip(state))

	state.SetHotel("Thamel", trip_models.KathmanduCenter)
	assert.False(t, svc.HasBuildableTrip(state))

	svc.AddVisit(state, "a")
	svc.ConfirmCurrentDay(state)
	assert.True(t, svc.HasBuildableTrip(state))
}
