package api

import "github.com/gin-gonic/gin"

// registerRoutes mounts all operations on the engine.
func registerRoutes(engine *gin.Engine, h *Handlers) {
	engine.POST("/scrape-url", h.ScrapeURL)
	engine.POST("/generate-component", h.GenerateComponent)
	engine.POST("/create-component", h.CreateComponent)
	engine.POST("/regenerate-catalog", h.RegenerateCatalog)
	engine.GET("/categories", h.ListCategories)
	engine.GET("/health", h.Health)
}
