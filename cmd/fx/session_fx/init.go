package sessionfx

import (
	"go.uber.org/fx"

	"aarav/internal/repositories"
)

var Module = fx.Provide(provideSessionRepo)

func provideSessionRepo() repositories.SessionRepository {
	return repositories.NewSessionRepository()
}
