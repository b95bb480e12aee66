package wpstatic

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Preview serves the generated output directory over HTTP so the migrated
// site can be inspected before deploying. It blocks until the server stops.
func (a *App) Preview(addr string) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			a.logger.Printf("%s %s -> %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/images/")
		},
	}))
	e.Use(previewCacheControl)

	e.Static("/", a.Config.OutputDir)

	a.logger.Printf("previewing %s on %s", a.Config.OutputDir, addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// previewCacheControl keeps pages uncached so re-running the migration
// shows up on refresh, while images can be cached for the session.
func previewCacheControl(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if strings.HasPrefix(c.Request().URL.Path, "/images/") {
			c.Response().Header().Set("Cache-Control", "public, max-age=3600")
		} else {
			c.Response().Header().Set("Cache-Control", "no-store")
		}
		return next(c)
	}
}
