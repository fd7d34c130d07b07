package middleware

import (
	"context"
	"log/slog"
	"time"

	"catermatch/config"
	deliverycontext "catermatch/internal/delivery/context"
	"catermatch/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware records request metrics and, in debug mode, logs every request
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var err error
		start := time.Now()
		defer func() {
			metrics.RecordHTTPRequest(c.Request().Method, routeLabel(c), c.Response().Status, time.Since(start))

			if m.debug {
				m.logRequest(c, start, err)
			}
		}()

		// Render errors here so that the recorded status is the final one.
		if err = next(c); err != nil {
			c.Error(err)
		}

		return err
	}
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	// Calculate latency
	latency := time.Since(start)

	// Prepare log fields
	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
		slog.String("time", start.Format(time.RFC3339)),
	}

	// If there are query parameters, log them too
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	// If there's an error, log error details
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	// Choose log level based on status code
	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	// Log the request
	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}

// routeLabel uses the route template to keep metric cardinality bounded.
func routeLabel(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}

	return "unmatched"
}
