package config_fx

import (
	"go.uber.org/fx"
	"wanderworld/internal/config"
)

var Module = fx.Provide(config.Load)
