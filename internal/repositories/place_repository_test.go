package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aarav/internal/models/trip_models"
)

func testPlaces() []trip_models.Place {
	return []trip_models.Place{
		{ID: "kathmandu-durbar-square", Name: "Kathmandu Durbar Square", Coordinates: trip_models.LatLng{27.7044, 85.3075}},
		{ID: "swayambhunath-monkey-temple", Name: "Swayambhunath (Monkey Temple)", Coordinates: trip_models.LatLng{27.7149, 85.2904}},
		{ID: "boudhanath-stupa", Name: "Boudhanath Stupa", Coordinates: trip_models.LatLng{27.7215, 85.3620}},
	}
}

func TestGetByNameIsCaseInsensitive(t *testing.T) {
	repo := NewPlaceRepository(testPlaces())

	p, ok := repo.GetByName("boudhanath stupa")
	require.True(t, ok)
	assert.Equal(t, "boudhanath-stupa", p.ID)

	_, ok = repo.GetByName("nowhere")
	assert.False(t, ok)
}

func TestResolveStayAreaAliases(t *testing.T) {
	repo := NewPlaceRepository(testPlaces())

	p, ok := repo.ResolveStayArea("boudha")
	require.True(t, ok)
	assert.Equal(t, "Boudhanath Stupa", p.Name)

	p, ok = repo.ResolveStayArea("monkey temple")
	require.True(t, ok)
	assert.Equal(t, "Swayambhunath (Monkey Temple)", p.Name)

	// Exact names resolve without an alias.
	p, ok = repo.ResolveStayArea("Kathmandu Durbar Square")
	require.True(t, ok)
	assert.Equal(t, "kathmandu-durbar-square", p.ID)

	_, ok = repo.ResolveStayArea("somewhere else")
	assert.False(t, ok)
}

func TestFindAllInTextKeepsCorpusOrder(t *testing.T) {
	repo := NewPlaceRepository(testPlaces())

	found := repo.FindAllInText("First Boudhanath Stupa, then Kathmandu Durbar Square please")
	require.Len(t, found, 2)
	assert.Equal(t, "Kathmandu Durbar Square", found[0].Name)
	assert.Equal(t, "Boudhanath Stupa", found[1].Name)

	// The parenthesised qualifier is optional.
	found = repo.FindAllInText("what about swayambhunath?")
	require.Len(t, found, 1)
	assert.Equal(t, "Swayambhunath (Monkey Temple)", found[0].Name)

	assert.Empty(t, repo.FindAllInText("nothing here"))
}
