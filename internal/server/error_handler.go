package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"shoppyglobe/internal/config"
	"shoppyglobe/internal/usecase"

	"github.com/labstack/echo/v4"
)

// エラーレスポンスの形。stackはproduction以外でだけ入る。
type ErrorBody struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// NewHTTPErrorHandler はハンドラから返ってきたエラーを統一形式のJSONにする。
func NewHTTPErrorHandler(cfg config.Config) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Server Error"

		var he *usecase.HTTPError
		var ee *echo.HTTPError

		switch {
		case usecaseError(err, &he):
			status = he.Status
			message = he.Message
		case errors.As(err, &ee):
			status = ee.Code
			if status == http.StatusNotFound {
				// 未登録ルート
				message = "Not Found - " + c.Request().RequestURI
			} else {
				message = fmt.Sprintf("%v", ee.Message)
			}
		case err != nil:
			message = err.Error()
		}

		body := ErrorBody{Message: message}
		if cfg.GoEnv != "production" {
			body.Stack = string(debug.Stack())
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}

func usecaseError(err error, target **usecase.HTTPError) bool {
	he, ok := usecase.AsHTTPError(err)
	if ok {
		*target = he
	}
	return ok
}
