package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"wanderworld/cmd/fx/config_fx"
	"wanderworld/cmd/fx/controllers_fx"
	"wanderworld/cmd/fx/logger_fx"
	"wanderworld/cmd/fx/store_fx"
	"wanderworld/cmd/fx/storefront_fx"
	"wanderworld/internal/api"
	"wanderworld/internal/api/controllers"
	"wanderworld/internal/api/views"
	"wanderworld/internal/config"
	"wanderworld/pkg/middleware"
	"wanderworld/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		store_fx.Module,
		storefront_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting HTTP server",
					zap.String("addr", srv.Addr),
					zap.String("backend_url", cfg.BackendURL))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg config.Config,
	logger *zap.Logger,
	tokens *utils.VisitorTokens,
	pageController *controllers.StorefrontController,
	apiController *controllers.StorefrontAPIController) *gin.Engine {

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.SetHTMLTemplate(views.Templates())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(middleware.VisitorMiddleware(tokens, cfg.IsProduction(), logger.Named("visitor")))

	api.RegisterRoutes(r, pageController, apiController)

	return r
}
