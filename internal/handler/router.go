package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"retail-ops-core/internal/handler/api"
	"retail-ops-core/internal/handler/middleware"
	"retail-ops-core/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Cases        *api.CaseHandler
	Analytics    *api.AnalyticsHandler
	Webhooks     *api.WebhookHandler
	CustomerForm *api.CustomerFormHandler
	Integrations *api.IntegrationHandler
}

type Middlewares struct {
	fx.In

	Logger      *middleware.Logger
	Auth        *middleware.AuthMiddleware
	Idempotency *middleware.IdempotencyMiddleware
	RateLimit   *middleware.ClientRateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	if mw.Logger != nil {
		engine.Use(mw.Logger.LoggingMiddleware())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		webhooks := apiGroup.Group("/webhooks")
		addRoutes(webhooks, []route{
			{Method: http.MethodPost, Path: "/shopify/returns", Handler: h.Webhooks.ShopifyReturn},
		})

		public := apiGroup.Group("/public")
		addRoutes(public, []route{
			{Method: http.MethodPost, Path: "/rma", Handler: h.CustomerForm.Submit, Mw: []gin.HandlerFunc{mw.RateLimit.Middleware()}},
		})

		rma := apiGroup.Group("/rma")
		rma.Use(mw.Auth.RequireAuth())
		{
			addRoutes(rma, []route{
				{Method: http.MethodGet, Path: "/cases", Handler: h.Cases.List},
				{Method: http.MethodPost, Path: "/cases", Handler: h.Cases.Create},
				{Method: http.MethodGet, Path: "/cases/:id", Handler: h.Cases.Get},
				{Method: http.MethodPost, Path: "/cases/:id/status", Handler: h.Cases.Transition},
				{Method: http.MethodPost, Path: "/cases/:id/tracking", Handler: h.Cases.UpdateTracking},
				{Method: http.MethodPost, Path: "/cases/:id/warranty", Handler: h.Cases.DecideWarranty},
				{Method: http.MethodPost, Path: "/cases/:id/assignment", Handler: h.Cases.Assign},
				{Method: http.MethodPost, Path: "/cases/:id/notes", Handler: h.Cases.AddNote},
				{Method: http.MethodGet, Path: "/analytics", Handler: h.Analytics.Summary},
			})
		}

		// the idempotency middleware buffers the rest of the chain, so it is attached
		// with Use rather than per route
		integrations := apiGroup.Group("/integrations")
		integrations.Use(mw.Auth.RequireAuth(), mw.Idempotency.Handler())
		{
			addRoutes(integrations, []route{
				{Method: http.MethodPost, Path: "/shopify/import", Handler: h.Integrations.ImportShopifyProducts},
				{Method: http.MethodPost, Path: "/shopify/products/:sku/sync", Handler: h.Integrations.SyncShopifyProduct},
				{Method: http.MethodPost, Path: "/klaviyo/campaigns/push", Handler: h.Integrations.PushKlaviyoCampaign},
			})
		}
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
