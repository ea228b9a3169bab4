package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"library-admin/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware maps CORSConfig onto gin-contrib/cors. A "*" origin
// switches to allow-all, which cannot be combined with credentials.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  cfg.AllowMethods,
		AllowHeaders:  cfg.AllowHeaders,
		ExposeHeaders: withRequestID(cfg.ExposeHeaders),
		MaxAge:        cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
		corsCfg.AllowCredentials = cfg.AllowCredentials
	}

	logger.Info("CORS configured",
		"allow_all", corsCfg.AllowAllOrigins,
		"origins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}

func withRequestID(headers []string) []string {
	if slices.ContainsFunc(headers, func(h string) bool { return strings.EqualFold(h, requestIDHeader) }) {
		return headers
	}
	return append(slices.Clone(headers), requestIDHeader)
}
