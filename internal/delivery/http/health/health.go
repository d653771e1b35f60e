package http_health

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports whether a backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Controller struct {
	stores map[string]Pinger
}

func New(stores map[string]Pinger) *Controller {
	return &Controller{stores: stores}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", c.info)
	router.GET("/health", c.health)
	router.GET("/health/stores", c.storesHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (c *Controller) info(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Welcome to CineMate API!",
		"description": "Multi-database movie recommendation system",
		"databases":   []string{"MongoDB", "Redis", "Neo4j"},
		"health":      "/health",
		"endpoints": gin.H{
			"movies":  "/movies/",
			"reviews": "/reviews/",
			"users":   "/users/",
			"graph":   "/graph/",
		},
	})
}

func (c *Controller) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "message": "CineMate API is running"})
}

// storesHealth pings every store. The answer is 503 when any of them fails.
func (c *Controller) storesHealth(ctx *gin.Context) {
	status := http.StatusOK
	report := make(map[string]string, len(c.stores))
	for name, p := range c.stores {
		if err := p.Ping(ctx.Request.Context()); err != nil {
			report[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		report[name] = "ok"
	}
	ctx.JSON(status, gin.H{"stores": report})
}
