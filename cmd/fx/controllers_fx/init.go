package controllers_fx

import (
	"go.uber.org/fx"

	"aarav/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewExportController))
