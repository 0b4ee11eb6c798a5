package storefront_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"wanderworld/internal/config"
	"wanderworld/internal/repositories"
	"wanderworld/internal/services"
)

var Module = fx.Provide(
	provideBackendClient, provideStorefrontService)

func provideBackendClient(cfg config.Config) services.BackendClient {
	return services.NewHTTPBackendClient(cfg)
}

func provideStorefrontService(backend services.BackendClient, views repositories.ViewRepository, logger *zap.Logger) services.StorefrontServiceInterface {
	return services.NewStorefrontService(backend, views, logger)
}
