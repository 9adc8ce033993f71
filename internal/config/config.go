// File: internal/config/config.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config 保存服務啟動所需的全部設定，僅由環境變數載入
type Config struct {
	// DatabaseURL 為 PostgreSQL 連線字符串
	// Env: DATABASE_URL
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// ListenAddr 為 HTTP 服務監聽位址
	// Env: LISTEN_ADDR
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
}

// Load 從環境變數解析並回傳 Config
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error getting env configs: %w", err)
	}
	return cfg, nil
}
