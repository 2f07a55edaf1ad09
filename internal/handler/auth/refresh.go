// File: internal/handler/auth/refresh.go
package auth

import (
	"net/http"

	"dashboard-api/internal/dto"
	"dashboard-api/internal/handler"
	"dashboard-api/internal/middleware"

	"github.com/labstack/echo/v4"
)

// RefreshHandler 以仍有效的 token 換發新 token
// @Summary     更新 JWT
// @Description 過期的 token 不能換發，需重新登入
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.AuthResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /api/auth/refresh [post]
func RefreshHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := middleware.TokenFrom(c)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "access token required"})
		}
		res, err := svc.RefreshToken(c.Request().Context(), token)
		if err != nil {
			return handler.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, toAuthResponse(res))
	}
}
