package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aarav/internal/models/trip_models"
)

type failingBackend struct{}

func (failingBackend) Leg(_ context.Context, _, _ trip_models.LatLng) ([]trip_models.LatLng, error) {
	return nil, errors.New("backend down")
}

type straightBackend struct{}

func (straightBackend) Leg(_ context.Context, from, to trip_models.LatLng) ([]trip_models.LatLng, error) {
	mid := trip_models.LatLng{(from.Lat() + to.Lat()) / 2, (from.Lng() + to.Lng()) / 2}
	return []trip_models.LatLng{from, mid, to}, nil
}

func plannedState(t *testing.T) *trip_models.TripState {
	t.Helper()
	places := testPlaceRepo()
	it := NewItineraryService()

	state := trip_models.NewTripState()
	hotel, ok := places.GetByName("Boudhanath Stupa")
	require.True(t, ok)
	state.SetHotel(hotel.Name, hotel.Coordinates)

	it.AddVisit(state, "kathmandu-durbar-square")
	it.AddVisit(state, "swayambhunath-monkey-temple")
	it.ConfirmCurrentDay(state)
	it.AddVisit(state, "garden-of-dreams")
	return state
}

func TestBuildDayRoutesFallsBackToStraightLegs(t *testing.T) {
	svc := NewRouteService(failingBackend{}, testPlaceRepo())
	state := plannedState(t)

	legs := svc.BuildDayRoutes(context.Background(), state)

	// Only the confirmed day is routed: hotel -> first -> second.
	require.Len(t, legs, 2)
	for _, leg := range legs {
		assert.Equal(t, 1, leg.Day)
		assert.Len(t, leg.Polyline, 2)
	}
	assert.Equal(t, "Boudhanath Stupa", legs[0].From)
	assert.Equal(t, "Kathmandu Durbar Square", legs[0].To)
	assert.Equal(t, "Kathmandu Durbar Square", legs[1].From)
	assert.Equal(t, "Swayambhunath (Monkey Temple)", legs[1].To)
}

func TestBuildDayRoutesUsesBackendGeometry(t *testing.T) {
	svc := NewRouteService(straightBackend{}, testPlaceRepo())
	state := plannedState(t)

	legs := svc.BuildDayRoutes(context.Background(), state)
	require.Len(t, legs, 2)
	assert.Len(t, legs[0].Polyline, 3)
}

func TestBuildDayRoutesNeedsHotel(t *testing.T) {
	svc := NewRouteService(failingBackend{}, testPlaceRepo())
	state := trip_models.NewTripState()

	assert.Nil(t, svc.BuildDayRoutes(context.Background(), state))
}

func TestBuildSelectionRoute(t *testing.T) {
	svc := NewRouteService(failingBackend{}, testPlaceRepo())
	state := trip_models.NewTripState()
	state.SetHotel("Thamel Stay", trip_models.KathmanduCenter)
	state.UpsertSelectedPlace("Garden of Dreams", trip_models.LatLng{27.7135, 85.3146})
	state.UpsertSelectedPlace("Boudhanath Stupa", trip_models.LatLng{27.7215, 85.3620})

	legs := svc.BuildSelectionRoute(context.Background(), state)
	require.Len(t, legs, 2)
	assert.Equal(t, "Thamel Stay", legs[0].From)
	assert.Equal(t, "Garden of Dreams", legs[0].To)
	assert.Equal(t, "Garden of Dreams", legs[1].From)
}

func TestExportLinks(t *testing.T) {
	svc := NewRouteService(failingBackend{}, testPlaceRepo())
	state := plannedState(t)

	links := svc.ExportLinks(state)
	require.Len(t, links, 1)
	assert.Equal(t, 1, links[0].Day)
	assert.Contains(t, links[0].URL, "https://www.google.com/maps/dir/")
	assert.Contains(t, links[0].URL, "api=1")
	assert.Contains(t, links[0].URL, "origin=")
	assert.Contains(t, links[0].URL, "destination=")
	assert.Contains(t, links[0].URL, "waypoints=")
}

func TestExportLinksWithoutHotel(t *testing.T) {
	svc := NewRouteService(failingBackend{}, testPlaceRepo())
	assert.Nil(t, svc.ExportLinks(trip_models.NewTripState()))
}
