package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/twpayne/go-polyline"

	"aarav/internal/models/response_models"
	"aarav/internal/models/trip_models"
	"aarav/internal/repositories"
	"aarav/pkg/utils"
)

// RoutingBackendInterface computes one road-following leg between two points.
// A failing backend never fails the trip: callers fall back to a straight
// two-point leg.
type RoutingBackendInterface interface {
	Leg(ctx context.Context, from, to trip_models.LatLng) ([]trip_models.LatLng, error)
}

const (
	defaultOSRMURL     = "https://router.project-osrm.org"
	osrmTimeout        = 15 * time.Second
	osrmConnectTimeout = 5 * time.Second
	legCacheTTL        = 7 * 24 * time.Hour
)

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry string `json:"geometry"`
	} `json:"routes"`
}

// OSRMClient calls the public OSRM HTTP API. Legs are cached for a week;
// the road network between two fixed POIs does not change day to day.
type OSRMClient struct {
	baseURL string
	client  *http.Client
	cache   *gocache.Cache
}

func NewOSRMClient() RoutingBackendInterface {
	base := os.Getenv("OSRM_URL")
	if base == "" {
		base = defaultOSRMURL
	}
	return &OSRMClient{
		baseURL: strings.TrimRight(base, "/"),
		client: &http.Client{
			Timeout: osrmTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: osrmConnectTimeout}).DialContext,
			},
		},
		cache: gocache.New(legCacheTTL, time.Hour),
	}
}

func legCacheKey(from, to trip_models.LatLng) string {
	return fmt.Sprintf("%.5f,%.5f|%.5f,%.5f", from.Lat(), from.Lng(), to.Lat(), to.Lng())
}

func (c *OSRMClient) Leg(ctx context.Context, from, to trip_models.LatLng) ([]trip_models.LatLng, error) {
	key := legCacheKey(from, to)
	if v, ok := c.cache.Get(key); ok {
		return v.([]trip_models.LatLng), nil
	}

	// OSRM wants lng,lat order.
	reqURL := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=polyline",
		c.baseURL, from.Lng(), from.Lat(), to.Lng(), to.Lat())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: osrm status %d", utils.ErrNoRoute, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var parsed osrmResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}
	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		return nil, utils.ErrNoRoute
	}

	coords, _, err := polyline.DecodeCoords([]byte(parsed.Routes[0].Geometry))
	if err != nil {
		return nil, err
	}
	if len(coords) < 2 {
		return nil, utils.ErrNoRoute
	}

	points := make([]trip_models.LatLng, len(coords))
	for i, coord := range coords {
		points[i] = trip_models.LatLng{coord[0], coord[1]}
	}
	c.cache.Set(key, points, gocache.DefaultExpiration)
	return points, nil
}

// RouteServiceInterface composes map-drawable routes for the planned trip and
// exports per-day Google Maps links.
type RouteServiceInterface interface {
	BuildDayRoutes(ctx context.Context, t *trip_models.TripState) []trip_models.RouteLeg
	BuildSelectionRoute(ctx context.Context, t *trip_models.TripState) []trip_models.RouteLeg
	ExportLinks(t *trip_models.TripState) []response_models.DayLink
}

type routeService struct {
	backend RoutingBackendInterface
	places  repositories.PlaceRepository
}

func NewRouteService(backend RoutingBackendInterface, places repositories.PlaceRepository) RouteServiceInterface {
	return &routeService{backend: backend, places: places}
}

func (s *routeService) leg(ctx context.Context, day int, fromName, toName string, from, to trip_models.LatLng) trip_models.RouteLeg {
	points, err := s.backend.Leg(ctx, from, to)
	if err != nil {
		log.Printf("Routing leg failed, using straight line: %v", err)
		points = []trip_models.LatLng{from, to}
	}
	return trip_models.RouteLeg{Day: day, From: fromName, To: toName, Polyline: points}
}

// BuildDayRoutes draws, for every confirmed day, hotel -> first visit ->
// second visit as sequential legs tagged with the day index.
func (s *routeService) BuildDayRoutes(ctx context.Context, t *trip_models.TripState) []trip_models.RouteLeg {
	if t.Hotel == nil {
		return nil
	}

	var legs []trip_models.RouteLeg
	for _, day := range t.Trip.Days {
		if !day.Confirmed || len(day.Visits) == 0 {
			continue
		}
		prevName, prev := t.Hotel.Name, t.Hotel.Coordinates
		for _, placeID := range day.Visits {
			p, ok := s.places.GetByID(placeID)
			if !ok {
				continue
			}
			legs = append(legs, s.leg(ctx, day.Index, prevName, p.Name, prev, p.Coordinates))
			prevName, prev = p.Name, p.Coordinates
		}
	}
	return legs
}

// BuildSelectionRoute chains hotel -> selected pins in selection order, for
// the map's explicit create_route action.
func (s *routeService) BuildSelectionRoute(ctx context.Context, t *trip_models.TripState) []trip_models.RouteLeg {
	if t.Hotel == nil || len(t.SelectedPlaces) == 0 {
		return nil
	}

	legs := make([]trip_models.RouteLeg, 0, len(t.SelectedPlaces))
	prevName, prev := t.Hotel.Name, t.Hotel.Coordinates
	for _, pin := range t.SelectedPlaces {
		legs = append(legs, s.leg(ctx, 0, prevName, pin.Name, prev, pin.Coordinates))
		prevName, prev = pin.Name, pin.Coordinates
	}
	return legs
}

// ExportLinks builds one Google Maps directions deep link per confirmed day,
// hotel as origin and destination with the visits as waypoints.
func (s *routeService) ExportLinks(t *trip_models.TripState) []response_models.DayLink {
	if t.Hotel == nil {
		return nil
	}

	var links []response_models.DayLink
	for _, day := range t.Trip.Days {
		if !day.Confirmed || len(day.Visits) == 0 {
			continue
		}

		var waypoints []string
		var last trip_models.LatLng
		ok := false
		for _, placeID := range day.Visits {
			p, found := s.places.GetByID(placeID)
			if !found {
				continue
			}
			waypoints = append(waypoints, coordParam(p.Coordinates))
			last = p.Coordinates
			ok = true
		}
		if !ok {
			continue
		}

		q := url.Values{}
		q.Set("api", "1")
		q.Set("origin", coordParam(t.Hotel.Coordinates))
		q.Set("destination", coordParam(last))
		if len(waypoints) > 1 {
			q.Set("waypoints", strings.Join(waypoints[:len(waypoints)-1], "|"))
		}
		links = append(links, response_models.DayLink{
			Day: day.Index,
			URL: "https://www.google.com/maps/dir/?" + q.Encode(),
		})
	}
	return links
}

func coordParam(p trip_models.LatLng) string {
	return fmt.Sprintf("%f,%f", p.Lat(), p.Lng())
}
