package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hardware-advisor/internal/feedback"
	"hardware-advisor/internal/knowledge"
	"hardware-advisor/internal/recommend"
	"hardware-advisor/internal/shared/config"
	"hardware-advisor/internal/shared/metrics"
	"hardware-advisor/internal/shared/server/middleware"
	"hardware-advisor/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config           config.Config
	RecommendHandler *recommend.Handler
	FeedbackHandler  *feedback.Handler
	KnowledgeHandler *knowledge.Handler
	// ModelVersion reports the active artifact version for the health
	// endpoint; may be nil.
	ModelVersion func() string
	// ReloadModel forces a reload of the active artifact. Registered as a
	// dev-only route; may be nil.
	ReloadModel func() error
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		payload := gin.H{"ok": true}
		if deps.ModelVersion != nil {
			payload["model_version"] = deps.ModelVersion()
		}
		respond.JSON(c, http.StatusOK, payload)
	})
	deps.RecommendHandler.RegisterRoutes(api)
	deps.FeedbackHandler.RegisterRoutes(api)
	deps.KnowledgeHandler.RegisterRoutes(api)

	if deps.Config.IsDevLike() && deps.ReloadModel != nil {
		dev := api.Group("/dev")
		dev.POST("/reload-model", func(c *gin.Context) {
			if err := deps.ReloadModel(); err != nil {
				respond.Error(c, http.StatusInternalServerError, "reload_failed", err.Error(), nil)
				return
			}
			payload := gin.H{"ok": true}
			if deps.ModelVersion != nil {
				payload["model_version"] = deps.ModelVersion()
			}
			respond.OK(c, payload)
		})
	}

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
