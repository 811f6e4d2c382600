package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the eight public resources onto the handler.
// The verb/path correspondence is fixed API surface: changing it breaks
// every registered form href.
func RegisterRoutes(r gin.IRouter, h *handler) {
	r.GET("/", h.Home)
	r.POST("/", h.Create)
	r.GET("/list/", h.List)
	r.GET("/filter/", h.Filter)
	r.GET("/:id", h.Read)
	r.PUT("/:id", h.Update)
	r.PATCH("/status/:id", h.Status)
	r.DELETE("/:id", h.Remove)
}
