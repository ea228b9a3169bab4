package bootstrap

import (
	"library-admin/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)

// ConfigSections exposes each group of Config on its own so constructors
// depend on the group they read. Tests that supply their own Config include
// it directly.
var ConfigSections = fx.Provide(splitConfig)

type sections struct {
	fx.Out

	DB      config.DBConfig
	Log     config.LogConfig
	JWT     config.JWTConfig
	Lock    config.LockConfig
	Library config.LibraryConfig
}

func splitConfig(cfg config.Config) sections {
	return sections{
		DB:      cfg.DB,
		Log:     cfg.Log,
		JWT:     cfg.JWT,
		Lock:    cfg.Lock,
		Library: cfg.Library,
	}
}
