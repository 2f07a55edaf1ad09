// File: internal/handler/users/delete_user.go
package users

import (
	"net/http"

	"dashboard-api/internal/dto"
	"dashboard-api/internal/handler"

	"github.com/labstack/echo/v4"
)

// DeleteUserHandler 刪除指定使用者
// @Summary     Delete a user by ID
// @Tags        users
// @Param       id  path string true "使用者 ID"
// @Success     204 "No Content"
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /api/users/{id} [delete]
func DeleteUserHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if id == "" {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user ID"})
		}
		if err := svc.DeleteUser(c.Request().Context(), id); err != nil {
			return handler.ErrorJSON(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
