package app

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/GalleryApp/internal/config"
	"github.com/GoArmGo/GalleryApp/internal/usecase"
)

type App struct {
	Config        *config.Config
	logger        *slog.Logger
	userUseCase   usecase.UserUseCase
	imageUseCase  usecase.ImageUseCase
	uploadLimiter chan struct{}
}

func NewApp(cfg *config.Config,
	logger *slog.Logger,
	userUseCase usecase.UserUseCase,
	imageUseCase usecase.ImageUseCase,
	uploadLimiter chan struct{}) *App {
	return &App{
		Config:        cfg,
		logger:        logger,
		userUseCase:   userUseCase,
		imageUseCase:  imageUseCase,
		uploadLimiter: uploadLimiter,
	}
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает HTTP сервер и блокируется до сигнала завершения.
func (a *App) Run(ctx context.Context) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runServer(ctx, a.Config, a.logger, a.userUseCase, a.imageUseCase, a.uploadLimiter); err != nil {
		return err
	}

	log.Println("[app] Завершено корректно.")
	return nil
}
