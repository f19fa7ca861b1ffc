package infra

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"aarav/internal/models/trip_models"
	"aarav/pkg/utils"
)

// PoiRecord mirrors one entry of data/pois.json.
type PoiRecord struct {
	Name        string             `json:"name"`
	Coordinates trip_models.LatLng `json:"coordinates"`
	Category    string             `json:"category"`
	CostRange   string             `json:"cost_range"`
	Review      float64            `json:"review"`
	Images      []string           `json:"images"`
}

// StoryRecord mirrors one entry of data/stories.json.
type StoryRecord struct {
	Title string `json:"title"`
	Place string `json:"place"`
	Text  string `json:"text"`
}

type Dataset struct {
	POIs    []PoiRecord
	Stories []StoryRecord
}

// LoadDataset reads the static POI and story files once at startup. Both are
// required; a broken dataset is a deployment error, not a runtime condition.
func LoadDataset() *Dataset {
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "data"
	}

	var ds Dataset
	if err := readJSON(filepath.Join(dir, "pois.json"), &ds.POIs); err != nil {
		log.Fatalf("Failed to load POI dataset: %v", err)
	}
	if err := readJSON(filepath.Join(dir, "stories.json"), &ds.Stories); err != nil {
		log.Fatalf("Failed to load story dataset: %v", err)
	}
	if len(ds.POIs) == 0 {
		log.Fatalf("POI dataset is empty: %v", utils.ErrDatasetInvalid)
	}

	log.Printf("Loaded %d POIs and %d stories", len(ds.POIs), len(ds.Stories))
	return &ds
}

func readJSON(path string, out interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// BuildPlaces joins POIs with their narrative snippets by case-insensitive
// place name and derives the immutable Place list.
func (d *Dataset) BuildPlaces() []trip_models.Place {
	storyByPlace := make(map[string]StoryRecord, len(d.Stories))
	for _, s := range d.Stories {
		storyByPlace[strings.ToLower(s.Place)] = s
	}

	places := make([]trip_models.Place, 0, len(d.POIs))
	for _, poi := range d.POIs {
		p := trip_models.Place{
			ID:            utils.Slug(poi.Name),
			Name:          poi.Name,
			Coordinates:   poi.Coordinates,
			Category:      poi.Category,
			CostRangeText: poi.CostRange,
			Images:        poi.Images,
			Review:        poi.Review,
		}
		if s, ok := storyByPlace[strings.ToLower(poi.Name)]; ok {
			p.ShortStory = s.Text
		}
		places = append(places, p)
	}
	return places
}
