package http_init

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/cinemate/internal/config"
)

const shutdownTimeout = 10 * time.Second

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type ControllerPool struct {
	pool   []Controller
	rg     *gin.RouterGroup
	engine *gin.Engine
	server *http.Server
	logger *slog.Logger
}

type Option func(*ControllerPool)

func WithLogger(logger *slog.Logger) Option {
	return func(p *ControllerPool) {
		p.logger = logger
	}
}

// WithMiddleware installs handlers in front of every route.
func WithMiddleware(mw ...gin.HandlerFunc) Option {
	return func(p *ControllerPool) {
		p.engine.Use(mw...)
	}
}

func NewControllerPool(cfg config.HTTPServer, opts ...Option) *ControllerPool {
	engine := gin.New()
	engine.Use(gin.Recovery())

	pool := &ControllerPool{
		pool:   make([]Controller, 0, 10),
		engine: engine,
		logger: slog.Default(),
		server: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(pool)
	}
	pool.rg = engine.Group(cfg.APIPrefix)

	return pool
}

func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.pool {
		c.RegisterRoutes(pool.rg)
	}
}

func (pool *ControllerPool) Handler() http.Handler {
	return pool.engine
}

// RunAll serves until ctx is cancelled, then drains in-flight requests.
func (pool *ControllerPool) RunAll(ctx context.Context) {
	errCh := make(chan error, 1)
	go func() {
		pool.logger.Info("http server listening", slog.String("addr", pool.server.Addr))
		errCh <- pool.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to run HTTP server: %v", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := pool.server.Shutdown(shutdownCtx); err != nil {
			pool.logger.Error("http shutdown", slog.String("error", err.Error()))
		}
		pool.logger.Info("http server stopped")
	}
}
