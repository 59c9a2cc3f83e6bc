package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pizza/internal/adapters/in/http/api"
	"pizza/internal/pkg/logger"
	"pizza/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// BaseURL is where the ordering API is mounted.
const BaseURL = "/api/v1"

// NewRouter builds the echo instance serving the API, health checks,
// Prometheus metrics and the Swagger UI.
func NewRouter(server *Server, m *metrics.Metrics, gatherer prometheus.Gatherer, l *zap.Logger) *echo.Echo {
	l = logger.OrNop(l)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(l)

	e.Use(middleware.Recover())
	e.Use(requestLogger(l))
	e.Use(metricsMiddleware(m))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api.RegisterHandlersWithBaseURL(e, server, BaseURL)
	return e
}

func requestLogger(l *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			l.Debug("request", fields...)
			return nil
		},
	})
}

// metricsMiddleware records request counts and latency per route template.
func metricsMiddleware(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				status = httpErr.Code
			}

			labels := []string{c.Request().Method, c.Path(), strconv.Itoa(status)}
			m.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			m.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			return err
		}
	}
}

// errorHandler renders echo errors, such as unbindable path parameters or
// unknown routes, in the API error format.
func errorHandler(l *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(code)
			}
		} else {
			l.Error("unhandled error", zap.Error(err))
		}

		if writeErr := c.JSON(code, api.Error{Code: code, Message: message}); writeErr != nil {
			l.Warn("failed to write error response", zap.Error(writeErr))
		}
	}
}
