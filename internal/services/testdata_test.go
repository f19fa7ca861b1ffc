package services

import (
	"aarav/internal/infra"
	"aarav/internal/models/trip_models"
	"aarav/internal/repositories"
)

func testDataset() *infra.Dataset {
	return &infra.Dataset{
		POIs: []infra.PoiRecord{
			{Name: "Kathmandu Durbar Square", Coordinates: trip_models.LatLng{27.7044, 85.3075}, Category: "heritage", CostRange: "NPR 1,000 entry"},
			{Name: "Swayambhunath (Monkey Temple)", Coordinates: trip_models.LatLng{27.7149, 85.2904}, Category: "religious", CostRange: "NPR 200 entry"},
			{Name: "Boudhanath Stupa", Coordinates: trip_models.LatLng{27.7215, 85.3620}, Category: "religious", CostRange: "NPR 400 entry"},
			{Name: "Garden of Dreams", Coordinates: trip_models.LatLng{27.7135, 85.3146}, Category: "calm", CostRange: "NPR 400 entry"},
			{Name: "Patan Durbar Square", Coordinates: trip_models.LatLng{27.6727, 85.3255}, Category: "heritage", CostRange: "NPR 1,000 entry"},
		},
		Stories: []infra.StoryRecord{
			{Title: "Where kings were crowned", Place: "Kathmandu Durbar Square", Text: "Durbar Square is where the old city still conducts its business around temples that watched coronations."},
			{Title: "The hill of the self-sprung flame", Place: "Swayambhunath (Monkey Temple)", Text: "Swayambhunath sits on a hill full of monkeys, with painted eyes looking over the whole valley."},
			{Title: "A white dome at the center of a world", Place: "Boudhanath Stupa", Text: "Boudhanath is a huge stupa wrapped in a Tibetan neighborhood that moves to the rhythm of prayer wheels."},
			{Title: "A neo-classical pause", Place: "Garden of Dreams", Text: "The Garden of Dreams is a restored garden of pavilions and ponds behind a high wall that keeps traffic out."},
		},
	}
}

func testPlaceRepo() repositories.PlaceRepository {
	return repositories.NewPlaceRepository(testDataset().BuildPlaces())
}
