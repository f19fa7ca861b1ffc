package repositories

import (
	"strings"

	"github.com/samber/lo"

	"aarav/internal/models/trip_models"
)

// PlaceRepository serves the immutable Place list derived at startup.
// Lookups are by id or case-insensitive name; ResolveStayArea additionally
// knows the hard-coded aliases travelers use for ambiguous area names.
type PlaceRepository interface {
	List() []trip_models.Place
	GetByID(id string) (trip_models.Place, bool)
	GetByName(name string) (trip_models.Place, bool)
	ResolveStayArea(area string) (trip_models.Place, bool)
	FindAllInText(text string) []trip_models.Place
}

// stayAreaAliases maps colloquial area names to canonical POI names.
var stayAreaAliases = map[string]string{
	"boudha":           "Boudhanath Stupa",
	"bouddha":          "Boudhanath Stupa",
	"boudhanath":       "Boudhanath Stupa",
	"durbar":           "Kathmandu Durbar Square",
	"durbar square":    "Kathmandu Durbar Square",
	"kathmandu durbar": "Kathmandu Durbar Square",
	"monkey temple":    "Swayambhunath (Monkey Temple)",
	"swayambhu":        "Swayambhunath (Monkey Temple)",
}

type inMemoryPlaceRepository struct {
	places []trip_models.Place
	byID   map[string]trip_models.Place
	byName map[string]trip_models.Place
}

func NewPlaceRepository(places []trip_models.Place) PlaceRepository {
	return &inMemoryPlaceRepository{
		places: places,
		byID: lo.SliceToMap(places, func(p trip_models.Place) (string, trip_models.Place) {
			return p.ID, p
		}),
		byName: lo.SliceToMap(places, func(p trip_models.Place) (string, trip_models.Place) {
			return strings.ToLower(p.Name), p
		}),
	}
}

func (r *inMemoryPlaceRepository) List() []trip_models.Place {
	return r.places
}

func (r *inMemoryPlaceRepository) GetByID(id string) (trip_models.Place, bool) {
	p, ok := r.byID[id]
	return p, ok
}

func (r *inMemoryPlaceRepository) GetByName(name string) (trip_models.Place, bool) {
	p, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

func (r *inMemoryPlaceRepository) ResolveStayArea(area string) (trip_models.Place, bool) {
	key := strings.ToLower(strings.TrimSpace(area))
	if canonical, ok := stayAreaAliases[key]; ok {
		return r.GetByName(canonical)
	}
	return r.GetByName(key)
}

// FindAllInText returns every place whose name appears in the message, in
// corpus order, so "Pashupatinath and Boudhanath" resolves both.
func (r *inMemoryPlaceRepository) FindAllInText(text string) []trip_models.Place {
	lower := strings.ToLower(text)
	return lo.Filter(r.places, func(p trip_models.Place, _ int) bool {
		return strings.Contains(lower, strings.ToLower(p.Name)) ||
			strings.Contains(lower, primaryName(p.Name))
	})
}

// primaryName strips a parenthesised qualifier so "Swayambhunath (Monkey
// Temple)" also matches plain "Swayambhunath".
func primaryName(name string) string {
	if i := strings.Index(name, "("); i > 0 {
		return strings.ToLower(strings.TrimSpace(name[:i]))
	}
	return strings.ToLower(name)
}
