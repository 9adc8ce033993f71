// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"adboard/internal/database"
	"adboard/internal/handler"
	"adboard/internal/handler/adverts"
	"adboard/internal/handler/users"
)

// Setup 註冊所有路由並注入 db
func Setup(e *echo.Echo, db database.DB) {
	// 存活檢查
	e.GET("/", handler.HealthHandler())

	// Users（無更新、無刪除端點）
	e.POST("/user", users.CreateUserHandler(db))
	e.GET("/user/:id", users.GetUserHandler(db))
	e.GET("/users", users.ListUsersHandler(db))

	// Adverts
	e.POST("/advert", adverts.CreateAdvertHandler(db))
	e.GET("/advert/:id", adverts.GetAdvertHandler(db))
	e.DELETE("/advert/:id", adverts.DeleteAdvertHandler(db))
	e.GET("/adverts", adverts.ListAdvertsHandler(db))
}
