// File: cmd/service/main.go
// @title        Adboard API
// @version      1.0
// @description  使用者與廣告的 CRUD HTTP API
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"os"

	"adboard/internal/config"
	"adboard/internal/database"
	"adboard/internal/router"

	appmiddleware "adboard/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	_ "adboard/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("載入設定失敗: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("role", "service").Logger()
	zlog.Logger = logger

	// 確保資料表存在
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Recover())
	e.Use(appmiddleware.RequestLogger(logger))

	router.Setup(e, db)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
	return startServer(e, cfg.ListenAddr)
}

func main() {
	if err := run(); err != nil {
		zlog.Error().Err(err).Msg("service exited")
		exitFunc(1)
	}
}
