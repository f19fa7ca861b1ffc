package chatfx

import (
	"go.uber.org/fx"

	"aarav/internal/infra"
	"aarav/internal/repositories"
	"aarav/internal/services"
	"aarav/pkg/utils"
)

var Module = fx.Provide(
	provideClassifier, provideRetrieval, provideItinerary, provideBudget, provideChatService)

func provideClassifier() services.TextClassifierInterface {
	return services.NewTextClassifier()
}

func provideRetrieval(dataset *infra.Dataset) services.RetrievalServiceInterface {
	return services.NewRetrievalService(dataset)
}

func provideItinerary() services.ItineraryServiceInterface {
	return services.NewItineraryService()
}

func provideBudget() services.BudgetServiceInterface {
	return services.NewBudgetService()
}

func provideChatService(
	sessions repositories.SessionRepository,
	places repositories.PlaceRepository,
	classifier services.TextClassifierInterface,
	retrieval services.RetrievalServiceInterface,
	itinerary services.ItineraryServiceInterface,
	budget services.BudgetServiceInterface,
	routes services.RouteServiceInterface,
	llm utils.ChatClientInterface,
) services.ChatServiceInterface {
	return services.NewChatService(sessions, places, classifier, retrieval, itinerary, budget, routes, llm)
}
