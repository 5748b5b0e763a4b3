package server

import (
	"net/http"

	"shoppyglobe/internal/config"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はechoを組み立てて返す。ルートはhandler側のRegisterRoutesで登録する。
func New(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	// エラーは全部ここで1か所にまとめてJSONにする
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg)

	// ヘルスチェック
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "ShoppyGlobe API is running"})
	})

	return e
}
