package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	analyticsHTTP "retail-insights/internal/analytics/delivery/http"
	chatHTTP "retail-insights/internal/chat/delivery/http"
	"retail-insights/pkg/log"
)

// ReadyFunc reports whether a dependency the service needs is reachable.
type ReadyFunc func(ctx context.Context) error

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	service     string
	ready       ReadyFunc

	// Chat domain
	chatHandler   chatHTTP.Handler
	chatRateLimit int

	// Analytics domain
	analyticsHandler analyticsHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	ServiceName string
	ReadyCheck  ReadyFunc

	// Chat domain; ChatRateLimit is requests per minute per client IP.
	ChatHandler   chatHTTP.Handler
	ChatRateLimit int

	// Analytics domain
	AnalyticsHandler analyticsHTTP.Handler
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		service:          cfg.ServiceName,
		ready:            cfg.ReadyCheck,
		chatHandler:      cfg.ChatHandler,
		chatRateLimit:    cfg.ChatRateLimit,
		analyticsHandler: cfg.AnalyticsHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, e.g. for httptest.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil && srv.analyticsHandler == nil {
		return errors.New("at least one domain handler is required")
	}
	return nil
}
