package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Фиксированные параметры файлового хранилища.
// Это константы контракта API, а не конфигурация: каталог загрузок
// разрешается относительно рабочего каталога процесса.
const (
	// UploadDir — каталог на диске, куда пишутся загруженные изображения.
	UploadDir = "public/uploads/images"

	// PublicUploadPath — URL-префикс, под которым файлы отдаются клиенту.
	PublicUploadPath = "/uploads/images"
)

// Config хранит конфигурационные параметры приложения.
type Config struct {
	ServerPort string `env:"SERVER_PORT"`
	LogLevel   string `env:"LOG_LEVEL"`
	LogFormat  string `env:"LOG_FORMAT"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации из окружения: %w", err)
	}

	// Значения по умолчанию устанавливаем вручную после env.Parse
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 60 * time.Second
	}

	return &cfg, nil
}
