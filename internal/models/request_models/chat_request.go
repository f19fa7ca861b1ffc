package request_models

import "aarav/internal/models/trip_models"

// MapEvent is the alternate input channel from the map UI. It carries the
// same semantics as typed text: select_place, set_hotel, create_route.
type MapEvent struct {
	Type        string             `json:"type"`
	Name        string             `json:"name,omitempty"`
	Coordinates *trip_models.LatLng `json:"coordinates,omitempty"`
}

const (
	MapEventSelectPlace = "select_place"
	MapEventSetHotel    = "set_hotel"
	MapEventCreateRoute = "create_route"
)

type ChatRequest struct {
	SessionID string    `json:"session_id,omitempty"`
	Message   string    `json:"message,omitempty"`
	MapEvent  *MapEvent `json:"map_event,omitempty"`
}
