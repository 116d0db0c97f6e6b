package handler

import (
	"net/http"

	"activity-signup-service/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// RouterOptions - необязательные части HTTP-сервера.
type RouterOptions struct {
	// StaticDir раздается по /static, пустое значение отключает раздачу
	StaticDir string
	// Metrics раздается по /metrics, nil отключает
	Metrics http.Handler
}

// NewRouter собирает echo со всеми middleware и маршрутами API.
func NewRouter(si api.ServerInterface, logger *logrus.Logger, opts RouterOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = HTTPErrorHandler(logger)

	e.Pre(EscapedPathMiddleware())

	// Логирование снаружи Recover, чтобы panic попадал в лог со статусом 500
	e.Use(RequestIDMiddleware())
	e.Use(LoggingMiddleware(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api.RegisterHandlers(e, si)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	if opts.StaticDir != "" {
		e.Static("/static", opts.StaticDir)
	}
	if opts.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(opts.Metrics))
	}

	return e
}
