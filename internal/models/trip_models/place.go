package trip_models

// LatLng marshals as a two-element [lat, lng] array, the wire format the map
// frontend expects.
type LatLng [2]float64

func (c LatLng) Lat() float64 { return c[0] }
func (c LatLng) Lng() float64 { return c[1] }

// Place is a point of interest derived once at startup from the static POI
// dataset joined with its narrative snippet. Immutable after construction.
type Place struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Coordinates   LatLng   `json:"coordinates"`
	Category      string   `json:"category"`
	ShortStory    string   `json:"short_story,omitempty"`
	CostRangeText string   `json:"cost_range,omitempty"`
	Images        []string `json:"images,omitempty"`
	Review        float64  `json:"review,omitempty"`
}
