package bootstrap

import (
	"fmt"
	"time"

	"library-admin/internal/pkg/config"
	"library-admin/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.JWTConfig) (*jwt.Service, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_DURATION: %w", err)
	}
	return jwt.NewService(cfg.Secret, duration, cfg.Issuer), nil
}
