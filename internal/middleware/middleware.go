package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// RequestLogger 以 zerolog 輸出每個請求一行結構化日誌，等級依狀態碼決定
func RequestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			status := v.Status
			// handler 回傳 error 時最終狀態碼由 echo 的 error handler 決定
			if v.Error != nil {
				var echoErr *echo.HTTPError
				if errors.As(v.Error, &echoErr) {
					status = echoErr.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			var e *zerolog.Event
			switch {
			case status >= http.StatusInternalServerError:
				e = logger.Error()
			case status >= http.StatusBadRequest:
				e = logger.Warn()
			default:
				e = logger.Info()
			}
			e.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", status).
				Dur("latency", v.Latency).
				Err(v.Error).
				Msg("request")
			return nil
		},
	})
}
