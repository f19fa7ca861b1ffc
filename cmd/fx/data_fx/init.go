package datafx

import (
	"go.uber.org/fx"

	"aarav/internal/infra"
	"aarav/internal/models/trip_models"
	"aarav/internal/repositories"
)

var Module = fx.Provide(
	provideDataset, providePlaces, providePlaceRepo)

func provideDataset() *infra.Dataset {
	return infra.LoadDataset()
}

func providePlaces(dataset *infra.Dataset) []trip_models.Place {
	return dataset.BuildPlaces()
}

func providePlaceRepo(places []trip_models.Place) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(places)
}
