// File: internal/handler/users/update_user.go
package users

import (
	"fmt"
	"net/http"

	"dashboard-api/internal/dto"
	"dashboard-api/internal/handler"
	"dashboard-api/internal/model"
	"dashboard-api/internal/store"

	"github.com/labstack/echo/v4"
)

// UpdateUserHandler 更新指定使用者資料
// @Summary     Update a user by ID
// @Description 根據使用者 ID 更新名稱、角色或組織（僅限管理員）
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path     string                true "使用者 ID"
// @Param       body body     dto.UpdateUserRequest true "要更新的欄位"
// @Success     200  {object} dto.UserResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /api/users/{id} [put]
func UpdateUserHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if id == "" {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user ID"})
		}

		var req dto.UpdateUserRequest
		// Bind & Validate
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("無效的請求資料: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		in := store.UpdateUserInput{Name: req.Name, OrganizationID: req.OrganizationID}
		if req.Role != nil {
			role := model.Role(*req.Role)
			in.Role = &role
		}

		u, err := svc.UpdateUser(c.Request().Context(), id, in)
		if err != nil {
			return handler.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewUserResponse(*u))
	}
}
