package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmplhub/catalogd/internal/catalog"
	"github.com/tmplhub/catalogd/internal/domain"
	"github.com/tmplhub/catalogd/internal/generator"
	"github.com/tmplhub/catalogd/internal/scraper"
	"github.com/tmplhub/catalogd/internal/utils"
	"github.com/tmplhub/catalogd/pkg/version"
)

// Handlers holds the HTTP operation handlers and their collaborators.
type Handlers struct {
	scraper     *scraper.Service
	generator   *generator.Generator
	writer      *catalog.Writer
	regenerator *catalog.Regenerator
	log         *utils.Logger
}

// NewHandlers creates the handler set.
func NewHandlers(scr *scraper.Service, gen *generator.Generator, writer *catalog.Writer, regen *catalog.Regenerator, log *utils.Logger) *Handlers {
	if log == nil {
		log = utils.NopLogger()
	}
	return &Handlers{
		scraper:     scr,
		generator:   gen,
		writer:      writer,
		regenerator: regen,
		log:         log.WithComponent("api"),
	}
}

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, successResponse{Success: true, Data: data})
}

type scrapeRequest struct {
	URL   string `json:"url"`
	UseAI bool   `json:"useAI"`
}

// scrapeData flattens the scraped content and attaches the optional
// analysis alongside it.
type scrapeData struct {
	*domain.ScrapedContent
	AIAnalysis *domain.AIAnalysis `json:"aiAnalysis,omitempty"`
}

// ScrapeURL handles POST /scrape-url.
func (h *Handlers) ScrapeURL(c *gin.Context) {
	var req scrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewMissingFieldsError("url"))
		return
	}
	if req.URL == "" {
		respondError(c, domain.NewMissingFieldsError("url"))
		return
	}

	result, err := h.scraper.Scrape(c.Request.Context(), req.URL, req.UseAI)
	if err != nil {
		h.log.Warn().Err(err).Str("url", req.URL).Msg("scrape failed")
		respondError(c, err)
		return
	}

	respondOK(c, scrapeData{
		ScrapedContent: result.Content,
		AIAnalysis:     result.Analysis,
	})
}

// GenerateComponent handles POST /generate-component.
func (h *Handlers) GenerateComponent(c *gin.Context) {
	var req generator.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewMissingFieldsError("componentType", "description"))
		return
	}

	result, err := h.generator.Generate(c.Request.Context(), req)
	if err != nil {
		h.log.Warn().Err(err).Str("type", req.ComponentType).Msg("generation failed")
		respondError(c, err)
		return
	}

	respondOK(c, result)
}

// CreateComponent handles POST /create-component.
func (h *Handlers) CreateComponent(c *gin.Context) {
	var req catalog.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewMissingFieldsError("type", "category", "name", "description"))
		return
	}

	artifact, err := h.writer.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse{Success: true, Data: artifact})
}

// RegenerateCatalog handles POST /regenerate-catalog.
func (h *Handlers) RegenerateCatalog(c *gin.Context) {
	output, err := h.regenerator.Run(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "output": output})
}

// ListCategories handles GET /categories.
func (h *Handlers) ListCategories(c *gin.Context) {
	componentType := c.Query("type")

	categories, err := h.writer.ListCategories(componentType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "categories": categories})
}

// Health handles GET /health.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "catalogd",
		"version": version.Version,
	})
}
