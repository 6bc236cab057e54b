package routes

import (
	"github.com/gin-gonic/gin"

	"jan-server/services/chat-insights/internal/config"
	"jan-server/services/chat-insights/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates API route registration.
type Routes struct {
	handlers      *handlers.Provider
	reloadEnabled bool
}

// NewRoutes builds the route registrar.
func NewRoutes(provider *handlers.Provider, cfg *config.Config) *Routes {
	return &Routes{handlers: provider, reloadEnabled: cfg.ReloadEnabled}
}

// Register attaches the insights routes at the root and, when enabled, the
// admin routes under /admin.
func (r *Routes) Register(router gin.IRouter) {
	insights := r.handlers.Insights
	router.GET("/summary", insights.Summary)
	router.POST("/transform", insights.Transform)
	router.POST("/analyze", insights.Analyze)

	if r.reloadEnabled {
		admin := router.Group("/admin")
		admin.POST("/reload", insights.Reload)
	}
}
