package http

import (
	"github.com/gin-gonic/gin"

	"seo-management-agent/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only the chat endpoint is rate limited; reads are cheap.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("", mw.RateLimit(), h.Chat)
		chat.GET("/sessions/:id", h.History)
		chat.GET("/quick-actions", h.QuickActions)
	}
}
