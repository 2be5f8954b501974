// Package api exposes the upload/review HTTP surface: upload a CSV batch,
// inspect the recoded records and summary, export the current batch as CSV.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/oncotools/tnmrecode/internal/analysis"
	"github.com/oncotools/tnmrecode/internal/conf"
	"github.com/oncotools/tnmrecode/internal/logging"
	"github.com/oncotools/tnmrecode/internal/observability"
)

// Controller manages the API routes and handlers.
type Controller struct {
	Echo     *echo.Echo
	settings *conf.Settings
	metrics  *observability.Metrics
	logger   *slog.Logger

	// batch holds the current batch result. It is replaced wholesale on every
	// successful upload and never mutated in place, so readers always see a
	// complete, consistent result set.
	batch atomic.Pointer[analysis.Batch]
}

// New creates a fully initialized API controller.
func New(settings *conf.Settings, m *observability.Metrics) *Controller {
	c := &Controller{
		Echo:     echo.New(),
		settings: settings,
		metrics:  m,
		logger:   logging.ForService("api"),
	}

	c.Echo.HideBanner = true
	c.Echo.Use(middleware.Recover())
	c.Echo.Use(c.loggingMiddleware())

	c.initRoutes()
	return c
}

func (c *Controller) initRoutes() {
	v1 := c.Echo.Group("/api/v1")
	v1.POST("/batch", c.UploadBatch)
	v1.GET("/batch/records", c.GetRecords)
	v1.GET("/batch/summary", c.GetSummary)
	v1.GET("/batch/export", c.ExportBatch)

	if c.settings.Server.Metrics && c.metrics != nil {
		c.Echo.GET("/metrics", echo.WrapHandler(c.metrics.Handler()))
	}
}

func (c *Controller) loggingMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			if c.logger != nil {
				c.logger.Info("request",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status)
			}
			return nil
		},
	})
}

// Start runs the HTTP server until the context is cancelled.
func (c *Controller) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", c.settings.Server.Host, c.settings.Server.Port)

	errChan := make(chan error, 1)
	go func() {
		if err := c.Echo.Start(addr); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	if c.logger != nil {
		c.logger.Info("server started", "addr", addr)
	}

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return c.Echo.Shutdown(shutdownCtx)
	}
}

// CurrentBatch returns the batch from the most recent successful upload, or
// nil when nothing has been processed yet.
func (c *Controller) CurrentBatch() *analysis.Batch {
	return c.batch.Load()
}
