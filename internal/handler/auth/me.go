// File: internal/handler/auth/me.go
package auth

import (
	"net/http"

	"dashboard-api/internal/dto"
	"dashboard-api/internal/handler"
	"dashboard-api/internal/middleware"

	"github.com/labstack/echo/v4"
)

// MeHandler 回傳 token 持有者的資料（需經過 RequireAuth）
// @Summary     取得目前使用者
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /api/auth/me [get]
func MeHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := middleware.TokenFrom(c)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "access token required"})
		}
		u, err := svc.GetCurrentUser(c.Request().Context(), token)
		if err != nil {
			return handler.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewUserResponse(*u))
	}
}
