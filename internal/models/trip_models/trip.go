package trip_models

import (
	"encoding/json"
	"strings"
)

const CityName = "Kathmandu"

// KathmanduCenter is the default map center and the coordinate fallback for
// unresolvable stay areas.
var KathmanduCenter = LatLng{27.7172, 85.3240}

type HotelPin struct {
	Name        string `json:"name"`
	Coordinates LatLng `json:"coordinates"`
}

type PlacePin struct {
	Name        string `json:"name"`
	Coordinates LatLng `json:"coordinates"`
}

// Day is one planned day of the trip. Visits holds at most two place ids; a
// confirmed day is immutable except through the builder.
type Day struct {
	Index        int      `json:"day"`
	HotelPlaceID string   `json:"hotel_place_id,omitempty"`
	Visits       []string `json:"visits"`
	Confirmed    bool     `json:"confirmed"`
}

type TripPlan struct {
	Days       []Day  `json:"days"`
	CurrentDay int    `json:"current_day"`
	Notes      string `json:"notes,omitempty"`
}

type RouteLeg struct {
	Day      int      `json:"day,omitempty"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Polyline []LatLng `json:"polyline"`
}

// TripState is the mutable aggregate owned by one session. Concurrent turns
// on the same session race last-write-wins; at most one in-flight request per
// session is the expected usage.
type TripState struct {
	City               string             `json:"city"`
	Hotel              *HotelPin          `json:"hotel"`
	SelectedPlaces     []PlacePin         `json:"selected_places"`
	Routes             []RouteLeg         `json:"routes"`
	Stage              UIStage            `json:"stage"`
	Permission         PlanningPermission `json:"planning_permission"`
	Profile            TripProfile        `json:"trip_profile"`
	Trip               TripPlan           `json:"trip"`
	AskedProfileFields []string           `json:"asked_profile_fields"`
}

func NewTripState() *TripState {
	return &TripState{
		City:           CityName,
		SelectedPlaces: []PlacePin{},
		Routes:         []RouteLeg{},
		Stage:          StageIntro,
		Permission:     PermissionUnknown,
		Trip:           TripPlan{Days: []Day{}, CurrentDay: 1},
	}
}

// UpsertSelectedPlace keeps the selection unique by case-insensitive name;
// re-adding a place overwrites its coordinates.
func (t *TripState) UpsertSelectedPlace(name string, coordinates LatLng) {
	for i := range t.SelectedPlaces {
		if strings.EqualFold(t.SelectedPlaces[i].Name, name) {
			t.SelectedPlaces[i].Coordinates = coordinates
			return
		}
	}
	t.SelectedPlaces = append(t.SelectedPlaces, PlacePin{Name: name, Coordinates: coordinates})
}

func (t *TripState) SetHotel(name string, coordinates LatLng) {
	t.Hotel = &HotelPin{Name: name, Coordinates: coordinates}
}

func (t *TripState) FieldAsked(field string) bool {
	for _, f := range t.AskedProfileFields {
		if f == field {
			return true
		}
	}
	return false
}

func (t *TripState) MarkFieldAsked(field string) {
	if !t.FieldAsked(field) {
		t.AskedProfileFields = append(t.AskedProfileFields, field)
	}
}

func (t *TripState) ConfirmedDayCount() int {
	n := 0
	for _, d := range t.Trip.Days {
		if d.Confirmed {
			n++
		}
	}
	return n
}

// CompactJSON is the single-line rendition handed to the generation backend.
func (t *TripState) CompactJSON() string {
	b, err := json.Marshal(t)
	if err != nil {
		return "{}"
	}
	return string(b)
}
