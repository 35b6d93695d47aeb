package api

import (
	"io"
	"net/http"

	"github.com/apsdehal/go-logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"urlfetcher/echoservice/internal/api/handlers"
	"urlfetcher/echoservice/pkg/middleware"
)

var fixtureMethods = []string{http.MethodGet, http.MethodHead}

// discardLog absorbs access logs when no logger is configured.
var discardLog, _ = logger.New("echoservice", 0, io.Discard, logger.CriticalLevel)

// NewRouter builds and configures the HTTP router.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.BasePath == "" {
		cfg.BasePath = "/"
	}
	if cfg.Log == nil {
		cfg.Log = discardLog
	}

	router := gin.New()
	// Match on the escaped path so %2F stays inside one segment.
	router.UseRawPath = true
	router.UnescapePathValues = true

	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(cfg.Log))
	router.Use(middleware.Metrics())
	router.Use(gin.Recovery())

	registerRoutes(router, cfg)
	return router
}

func registerRoutes(router *gin.Engine, cfg Config) {
	group := router.Group(cfg.BasePath)

	group.GET("/ping", handlers.Ping)
	group.Match(fixtureMethods, "/echo/:message", handlers.Echo)
	group.Match(fixtureMethods, "/error/:status", handlers.Status)

	if cfg.EnableMetrics {
		group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.NoRoute(handlers.NotFound)
}
