package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"library-admin/internal/handler/api"
	"library-admin/internal/handler/middleware"
	"library-admin/internal/pkg/config"
	"library-admin/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *slog.Logger
	Registry       *prometheus.Registry
	HTTPMetrics    *metrics.HTTPMetrics
	AuthMiddleware *middleware.AuthMiddleware

	Loans      *api.LoanHandler
	Books      *api.BookHandler
	Users      *api.UserHandler
	Activities *api.ActivityHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger, p.HTTPMetrics)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.HTTPMetrics) {
	// request ids are assigned before recovery so panics are logged with one
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.HTTPMetrics(m))
	engine.Use(middleware.ErrorHandler(logger))
	engine.NoRoute(middleware.NoRoute())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler(p.Registry)))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := engine.Group("/api/admin")
	admin.Use(p.AuthMiddleware.RequireAuth(), p.AuthMiddleware.RequireAdmin())
	{
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/dashboard", Handler: p.Activities.Dashboard},
			{Method: http.MethodGet, Path: "/activities", Handler: p.Activities.List},
			{Method: http.MethodGet, Path: "/activities/feed", Handler: p.Activities.Feed},
		})

		books := admin.Group("/books")
		addRoutes(books, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Books.Inventory},
			{Method: http.MethodPost, Path: "", Handler: p.Books.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Books.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: p.Books.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Books.Delete},
		})

		users := admin.Group("/users")
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Users.List},
			{Method: http.MethodPost, Path: "", Handler: p.Users.Create},
			{Method: http.MethodGet, Path: "/search", Handler: p.Users.Search},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Users.Profile},
			{Method: http.MethodPatch, Path: "/:id", Handler: p.Users.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Users.Delete},
			{Method: http.MethodPut, Path: "/:id/flag", Handler: p.Users.SetFlag},
			{Method: http.MethodPost, Path: "/:id/flag/toggle", Handler: p.Users.ToggleFlag},
		})

		issues := admin.Group("/issues")
		addRoutes(issues, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Loans.ListOpen},
			{Method: http.MethodPost, Path: "", Handler: p.Loans.Issue},
			{Method: http.MethodPost, Path: "/renew", Handler: p.Loans.Renew},
			{Method: http.MethodPost, Path: "/return", Handler: p.Loans.Return},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
