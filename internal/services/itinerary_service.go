package services

import (
	"fmt"
	"strings"

	"aarav/internal/models/trip_models"
	"aarav/pkg/utils"
)

// MaxVisitsPerDay caps each day so the pace stays realistic.
const MaxVisitsPerDay = 2

// AddVisitResult tells the caller what happened to an add attempt.
type AddVisitResult string

const (
	VisitAdded   AddVisitResult = "visit_added"
	AlreadyAdded AddVisitResult = "already_added"
	DayFull      AddVisitResult = "day_full"
)

// ItineraryServiceInterface mutates the day-by-day plan inside a TripState.
// Days confirm in order; confirmed days are immutable.
type ItineraryServiceInterface interface {
	CurrentDay(t *trip_models.TripState) *trip_models.Day
	AddVisit(t *trip_models.TripState, placeID string) AddVisitResult
	ConfirmCurrentDay(t *trip_models.TripState)
	ClearCurrentDay(t *trip_models.TripState)
	IsComplete(t *trip_models.TripState) bool
	HasBuildableTrip(t *trip_models.TripState) bool
	DayPreview(day *trip_models.Day, visits []trip_models.Place) string
}

type itineraryService struct{}

func NewItineraryService() ItineraryServiceInterface {
	return &itineraryService{}
}

// CurrentDay returns the day under construction, creating it if the plan has
// not caught up with CurrentDay yet.
func (s *itineraryService) CurrentDay(t *trip_models.TripState) *trip_models.Day {
	if t.Trip.CurrentDay < 1 {
		t.Trip.CurrentDay = 1
	}
	for len(t.Trip.Days) < t.Trip.CurrentDay {
		day := trip_models.Day{Index: len(t.Trip.Days) + 1}
		if t.Hotel != nil {
			day.HotelPlaceID = utils.Slug(t.Hotel.Name)
		}
		t.Trip.Days = append(t.Trip.Days, day)
	}
	return &t.Trip.Days[t.Trip.CurrentDay-1]
}

func (s *itineraryService) AddVisit(t *trip_models.TripState, placeID string) AddVisitResult {
	day := s.CurrentDay(t)
	for _, v := range day.Visits {
		if v == placeID {
			return AlreadyAdded
		}
	}
	if len(day.Visits) >= MaxVisitsPerDay {
		return DayFull
	}
	day.Visits = append(day.Visits, placeID)
	return VisitAdded
}

// ConfirmCurrentDay freezes the day and advances the cursor. CurrentDay never
// moves backwards even if days were confirmed out of band.
func (s *itineraryService) ConfirmCurrentDay(t *trip_models.TripState) {
	day := s.CurrentDay(t)
	day.Confirmed = true
	if next := day.Index + 1; next > t.Trip.CurrentDay {
		t.Trip.CurrentDay = next
	}
}

// ClearCurrentDay drops the visits of the day under construction. Confirmed
// days are left alone.
func (s *itineraryService) ClearCurrentDay(t *trip_models.TripState) {
	day := s.CurrentDay(t)
	if day.Confirmed {
		return
	}
	day.Visits = nil
}

func (s *itineraryService) IsComplete(t *trip_models.TripState) bool {
	return t.Profile.TimeDays > 0 && t.ConfirmedDayCount() >= t.Profile.TimeDays
}

// HasBuildableTrip reports whether there is anything worth routing: a hotel
// anchor plus at least one confirmed day.
func (s *itineraryService) HasBuildableTrip(t *trip_models.TripState) bool {
	return t.Hotel != nil && t.ConfirmedDayCount() > 0
}

// DayPreview renders the day as a short morning/afternoon sketch with one
// line of entry costs. visits are the day's resolved places in order.
func (s *itineraryService) DayPreview(day *trip_models.Day, visits []trip_models.Place) string {
	var line string
	switch len(visits) {
	case 0:
		return fmt.Sprintf("Day %d is still empty.", day.Index)
	case 1:
		line = fmt.Sprintf("Day %d: %s, taken slowly.", day.Index, visits[0].Name)
	default:
		line = fmt.Sprintf("Day %d: %s in the morning, %s in the afternoon.",
			day.Index, visits[0].Name, visits[1].Name)
	}

	var costs []string
	for _, v := range visits {
		if v.CostRangeText != "" {
			costs = append(costs, v.CostRangeText)
		}
	}
	if len(costs) > 0 {
		line += "\nEntry costs: " + strings.Join(costs, "; ") + "."
	}
	return line
}
