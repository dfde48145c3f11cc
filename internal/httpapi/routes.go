package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the handler into a gin engine.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog())
	r.NoRoute(func(c *gin.Context) { RespondError(c, http.StatusNotFound, "not found") })

	r.GET("/health", h.Health)
	api := r.Group("/api")
	api.GET("/channels", h.Channels)
	api.GET("/channels/:id", h.Channel)
	api.GET("/categories", h.Categories)
	api.GET("/bundles", h.Bundles)
	api.GET("/metrics", h.Metrics)
	return r
}
