// Package logger provides structured logging for the service using the Uber
// zap library, plus an Echo middleware that logs every handled request.
package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Log is the global SugaredLogger used across the application. It must be
// initialized via Init() before use; until then it is a no-op logger so that
// packages can log safely from tests without calling Init.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Init builds the global logger at the given level ("debug", "info", ...).
func Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl.Sugar()
	return nil
}

// RequestLogger returns an Echo middleware that logs the method, path,
// status, response size and duration of each request through the global
// logger.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			Log.Infow("request",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"status", c.Response().Status,
				"size", c.Response().Size,
				"duration", time.Since(start),
			)
			return err
		}
	}
}

// Sync flushes any buffered log entries. Call on shutdown.
func Sync() {
	_ = Log.Sync()
}
