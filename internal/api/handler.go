package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mr1hm/go-crisis-finder/internal/models"
	"github.com/mr1hm/go-crisis-finder/internal/repository"
	"github.com/mr1hm/go-crisis-finder/internal/response"
)

// Finder is the nearest-center service behind the HTTP handlers.
type Finder interface {
	Find(ctx context.Context, query string) (*response.Response, *response.ErrorResponse)
	Centers() ([]models.CrisisCenter, error)
	ProviderAvailable() bool
}

type Handler struct {
	finder  Finder
	stats   repository.LookupRepository
	version string
}

// NewHandler builds the handler. stats may be nil when lookup logging is off.
func NewHandler(finder Finder, stats repository.LookupRepository, version string) *Handler {
	return &Handler{
		finder:  finder,
		stats:   stats,
		version: version,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.home)
	r.GET("/find-nearest", h.findNearest)
	r.GET("/health", h.health)
	r.GET("/centers", h.centers)
	r.GET("/api/stats", h.lookupStats)
}

func (h *Handler) findNearest(c *gin.Context) {
	resp, errResp := h.finder.Find(c.Request.Context(), c.Query("city"))
	if errResp != nil {
		c.JSON(errResp.Status, errResp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) health(c *gin.Context) {
	centers, err := h.finder.Centers()
	body := gin.H{
		"status":         "healthy",
		"version":        h.version,
		"maps_available": h.finder.ProviderAvailable(),
		"centers":        len(centers),
	}
	if err != nil {
		body["status"] = "unavailable"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	c.JSON(http.StatusOK, body)
}

func (h *Handler) centers(c *gin.Context) {
	centers, err := h.finder.Centers()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Unavailable())
		return
	}

	c.Header("Content-Type", "application/geo+json")
	c.JSON(http.StatusOK, toGeoJSON(centers))
}

func (h *Handler) lookupStats(c *gin.Context) {
	if h.stats == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lookup log is disabled"})
		return
	}

	since := time.Now().AddDate(0, 0, -30)
	if s := c.Query("since"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be YYYY-MM-DD"})
			return
		}
		since = t
	}

	stats, err := h.stats.CenterStats(c.Request.Context(), since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch lookup stats",
		})
		return
	}
	if stats == nil {
		stats = []models.CenterStat{}
	}

	c.JSON(http.StatusOK, gin.H{
		"since":   since.Format("2006-01-02"),
		"centers": stats,
	})
}

func (h *Handler) home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
}
