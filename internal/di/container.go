package di

import (
	"log"

	"github.com/GoArmGo/GalleryApp/internal/adapter/storage/disk"
	"github.com/GoArmGo/GalleryApp/internal/app"
	"github.com/GoArmGo/GalleryApp/internal/config"
	"github.com/GoArmGo/GalleryApp/internal/logger"
	"github.com/GoArmGo/GalleryApp/internal/storage/memory"
	"github.com/GoArmGo/GalleryApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogCfg := logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}
	slogger := logger.NewSlog(slogCfg)

	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация in-memory хранилищ
	userStore := memory.NewUserStore(slogger)
	imageStore := memory.NewImageStore(slogger)

	// 3. Инициализация файлового хранилища (локальный диск)
	fileStorage := disk.NewClient(config.UploadDir, config.PublicUploadPath, slogger)

	// 4. Инициализация бизнес-логики (usecases)
	userUseCase := usecase.NewUserUseCase(userStore)
	imageUseCase := usecase.NewImageUseCase(imageStore, fileStorage)

	// 5. Создание лимитера загрузок (ограничиваем 5 параллельных загрузок)
	uploadLimiter := make(chan struct{}, 5)

	// 6. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		userUseCase,
		imageUseCase,
		uploadLimiter,
	)

	log.Println("[container] Все зависимости успешно инициализированы.")
	return application, nil
}
