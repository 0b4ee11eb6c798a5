package controllers_fx

import (
	"go.uber.org/fx"
	"wanderworld/internal/api/controllers"
	"wanderworld/internal/config"
	"wanderworld/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(provideVisitorTokens),
	fx.Provide(controllers.NewStorefrontController),
	fx.Provide(controllers.NewStorefrontAPIController))

func provideVisitorTokens(cfg config.Config) *utils.VisitorTokens {
	return utils.NewVisitorTokens(cfg.VisitorSecret, cfg.VisitorTTL)
}
