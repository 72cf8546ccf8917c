package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cast-dispatch/internal/handler/api"
	"cast-dispatch/internal/handler/middleware"
	"cast-dispatch/internal/infra/telemetry"
	"cast-dispatch/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	requestHandler *api.RequestHandler,
	assignmentHandler *api.AssignmentHandler,
	matchHandler *api.MatchHandler,
	linkCodeHandler *api.LinkCodeHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, requestHandler, assignmentHandler, matchHandler, linkCodeHandler, webhookHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	requestHandler *api.RequestHandler,
	assignmentHandler *api.AssignmentHandler,
	matchHandler *api.MatchHandler,
	linkCodeHandler *api.LinkCodeHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(telemetry.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// 署名検証のみ。認証ミドルウェアは通さない
		apiGroup.POST("/line/webhook", webhookHandler.Handle)

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/requests", Handler: requestHandler.List},
				{Method: http.MethodGet, Path: "/requests/:id", Handler: requestHandler.Get},
				{Method: http.MethodPatch, Path: "/requests/:id/status", Handler: requestHandler.UpdateStatus},
				{Method: http.MethodGet, Path: "/requests/:id/candidates", Handler: requestHandler.Candidates},
				{Method: http.MethodGet, Path: "/requests/:id/assignments", Handler: assignmentHandler.ListByRequest},
				{Method: http.MethodPost, Path: "/requests/:id/invite", Handler: assignmentHandler.Invite},
				{Method: http.MethodDelete, Path: "/assignments/:id", Handler: assignmentHandler.Unassign},
				{Method: http.MethodGet, Path: "/candidates", Handler: requestHandler.CandidatesByWindow},
				{Method: http.MethodPost, Path: "/link-codes", Handler: linkCodeHandler.Issue},
			})
		}

		matches := apiGroup.Group("/matches")
		matches.Use(authMiddleware.RequireAuth())
		{
			addRoutes(matches, []route{
				{Method: http.MethodPost, Path: "", Handler: matchHandler.Start},
				{Method: http.MethodGet, Path: "", Handler: matchHandler.List},
				{Method: http.MethodGet, Path: "/active", Handler: matchHandler.ActiveByCast},
				{Method: http.MethodGet, Path: "/:id", Handler: matchHandler.Get},
				{Method: http.MethodPost, Path: "/:id/extend", Handler: matchHandler.Extend},
				{Method: http.MethodPost, Path: "/:id/end", Handler: matchHandler.End},
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
