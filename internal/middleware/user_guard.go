package middleware

import (
	"net/http"

	"shoppyglobe/internal/repository"

	"github.com/labstack/echo/v4"
)

// トークンが参照するユーザーが今も存在するか確認。
// 退会済みユーザーの古いトークンをここで弾く。
func UserGuard(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//AuthJWTが入れたuser_id を取得する
			rawUserID := c.Get(CtxUserIDKey)
			userID, ok := rawUserID.(int64)
			if !ok || userID <= 0 {
				return c.JSON(http.StatusUnauthorized, errorJSON("Not authorized, invalid token"))
			}

			//DBから最新のuserを取得する
			user, err := userRepo.FindByID(c.Request().Context(), userID)
			if err != nil || user == nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("User not found for this token"))
			}

			return next(c)
		}
	}
}
