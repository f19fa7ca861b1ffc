package routingfx

import (
	"go.uber.org/fx"

	"aarav/internal/repositories"
	"aarav/internal/services"
)

var Module = fx.Provide(
	provideRoutingBackend, provideRouteService)

func provideRoutingBackend() services.RoutingBackendInterface {
	return services.NewOSRMClient()
}

func provideRouteService(backend services.RoutingBackendInterface, places repositories.PlaceRepository) services.RouteServiceInterface {
	return services.NewRouteService(backend, places)
}
