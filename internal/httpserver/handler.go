package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	analyticsHTTP "retail-insights/internal/analytics/delivery/http"
	chatHTTP "retail-insights/internal/chat/delivery/http"
	"retail-insights/internal/metrics"
	"retail-insights/internal/middleware"
)

const environmentProduction = "production"

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.Metrics())
	srv.gin.Use(mw.AccessLog())

	ctx := context.Background()
	if srv.environment == environmentProduction {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", metrics.Handler())

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	if srv.analyticsHandler != nil {
		analyticsHTTP.RegisterRoutes(srv.gin.Group("/api"), srv.analyticsHandler)
		srv.l.Infof(ctx, "Analytics routes registered under /api")
	}

	if srv.chatHandler != nil {
		chatHTTP.RegisterRoutes(srv.gin, srv.chatHandler, mw.RateLimit(srv.chatRateLimit))
		srv.l.Infof(ctx, "Chat route registered at POST /chat (rate limit %d/min per IP)", srv.chatRateLimit)
	}

	return nil
}
