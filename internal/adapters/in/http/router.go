package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"deliveryops/api"
	"deliveryops/internal/generated/servers"
	"deliveryops/internal/pkg/logger"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck interface {
	Ping(ctx context.Context) error
}

// NewRouter builds the echo instance serving the API, request validation
// against doc, health, metrics and the Swagger UI. /health answers 503 while
// any of checks fails.
func NewRouter(server *Server, doc *openapi3.T, log *zap.Logger, checks ...HealthCheck) (*echo.Echo, error) {
	log = logger.Component(log, "http")

	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("openapi validator: %w", err)
	}

	if err = api.RegisterSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(log)

	e.Use(middleware.Recover())
	e.Use(requestLogger(log))

	e.GET("/health", healthHandler(checks, log))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/openapi.yml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.Spec())
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	apiGroup := e.Group("", validator)
	servers.RegisterHandlers(apiGroup, server)

	return e, nil
}

func healthHandler(checks []HealthCheck, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		for _, check := range checks {
			if err := check.Ping(c.Request().Context()); err != nil {
				log.Warn("Health check failed", zap.Error(err))
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	}
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
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
				log.Warn("HTTP Request Failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			log.Debug("HTTP Request Completed", fields...)
			return nil
		},
	})
}

// errorHandler renders errors that escape the handlers, such as unknown
// routes and malformed parameters, in the API's Error shape.
func errorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		} else {
			log.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, servers.Error{Code: code, Message: message})
		}
		if err != nil {
			log.Error("Failed to write error response", zap.Error(err))
		}
	}
}
