// File: internal/handler/health.go
package handler

import (
	"net/http"

	"adboard/internal/api"

	"github.com/labstack/echo/v4"
)

// HealthHandler 存活檢查
// @Summary     Liveness check
// @Description 回傳固定狀態，服務存活即回應
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Router      / [get]
func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.HealthResponse{Status: "OK!"})
	}
}
