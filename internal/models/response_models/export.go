package response_models

// DayLink is an external map-application deep link for one confirmed day.
type DayLink struct {
	Day int    `json:"day"`
	URL string `json:"url"`
}
