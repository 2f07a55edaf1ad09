// File: internal/handler/respond.go
package handler

import (
	"dashboard-api/internal/dto"
	"dashboard-api/internal/service"

	"github.com/labstack/echo/v4"
)

// ErrorJSON 依 service 錯誤分類寫出 dto.HTTPError；未分類錯誤一律 500 且不帶細節
func ErrorJSON(c echo.Context, err error) error {
	return c.JSON(service.StatusOf(err), dto.HTTPError{Message: service.PublicMessage(err)})
}
