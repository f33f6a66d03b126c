package server

import (
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"app/internal/middleware"
)

// New はミドルウェアを組み込んだechoインスタンスを返す。
func New(logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
	}))
	e.Use(middleware.RequestLogger(logger))

	return e
}

// Start はHTTPサーバを起動する。
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
