package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aarav/internal/models/trip_models"
)

func TestBuildPlacesJoinsStoriesByName(t *testing.T) {
	ds := &Dataset{
		POIs: []PoiRecord{
			{Name: "Boudhanath Stupa", Coordinates: trip_models.LatLng{27.7215, 85.3620}, Category: "religious", CostRange: "NPR 400 entry", Review: 4.8},
			{Name: "Garden of Dreams", Coordinates: trip_models.LatLng{27.7135, 85.3146}, Category: "calm"},
		},
		Stories: []StoryRecord{
			{Title: "A white dome", Place: "boudhanath stupa", Text: "A huge stupa wrapped in prayer wheels."},
		},
	}

	places := ds.BuildPlaces()
	require.Len(t, places, 2)

	assert.Equal(t, "boudhanath-stupa", places[0].ID)
	assert.Equal(t, "A huge stupa wrapped in prayer wheels.", places[0].ShortStory)
	assert.Equal(t, "NPR 400 entry", places[0].CostRangeText)
	assert.Equal(t, 4.8, places[0].Review)

	// No matching story leaves the field empty.
	assert.Empty(t, places[1].ShortStory)
}
