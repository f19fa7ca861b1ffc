package response_models

import "aarav/internal/models/trip_models"

// Command is one tagged side-effect the frontend should apply, in order.
type Command struct {
	Type        string              `json:"type"`
	Name        string              `json:"name,omitempty"`
	Coordinates *trip_models.LatLng `json:"coordinates,omitempty"`
	Day         int                 `json:"day,omitempty"`
	Zoom        int                 `json:"zoom,omitempty"`
}

const (
	CommandAddPin            = "add_pin"
	CommandZoomMap           = "zoom_map"
	CommandStoreHotel        = "store_hotel"
	CommandStoreProfile      = "store_profile"
	CommandStoreDay          = "store_day"
	CommandEnableRouteButton = "enable_route_button"
)

type Marker struct {
	Type        string             `json:"type"`
	Name        string             `json:"name"`
	Coordinates trip_models.LatLng `json:"coordinates"`
}

// MapActions tells the frontend how to render the map after this turn.
type MapActions struct {
	Center  trip_models.LatLng     `json:"center"`
	Zoom    int                    `json:"zoom"`
	Markers []Marker               `json:"markers"`
	Routes  []trip_models.RouteLeg `json:"routes"`
}

type ChatResponse struct {
	SessionID   string                 `json:"session_id"`
	Reply       string                 `json:"reply"`
	Commands    []Command              `json:"commands"`
	TripState   *trip_models.TripState `json:"trip_state"`
	MapActions  MapActions             `json:"map_actions"`
	Suggestions []string               `json:"suggestions"`
}
