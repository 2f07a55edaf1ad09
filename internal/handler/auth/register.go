// File: internal/handler/auth/register.go
package auth

import (
	"fmt"
	"net/http"

	"dashboard-api/internal/dto"
	"dashboard-api/internal/handler"
	"dashboard-api/internal/model"
	"dashboard-api/internal/service"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 建立新使用者
// @Summary     註冊使用者
// @Description 建立新帳號，Email 不分大小寫且不可重複
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.RegisterRequest true "註冊資料"
// @Success     201  {object} dto.RegisterResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     409  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /api/auth/register [post]
func RegisterHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("無效的請求資料: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		u, err := svc.Register(c.Request().Context(), service.RegisterInput{
			Email:          req.Email,
			Name:           req.Name,
			Password:       req.Password,
			Role:           model.Role(req.Role),
			OrganizationID: req.OrganizationID,
		})
		if err != nil {
			return handler.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusCreated, dto.RegisterResponse{User: dto.NewUserResponse(*u)})
	}
}
