package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/GoArmGo/GalleryApp/internal/config"
	"github.com/GoArmGo/GalleryApp/internal/handler"
	"github.com/GoArmGo/GalleryApp/internal/usecase"
)

// runServer запускает HTTP сервер и блокируется до отмены контекста.
func runServer(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	userUseCase usecase.UserUseCase,
	imageUseCase usecase.ImageUseCase,
	uploadLimiter chan struct{},
) error {
	rootHandler := handler.NewRootHandler(logger)
	userHandler := handler.NewUserHandler(userUseCase, logger)
	imageHandler := handler.NewImageHandler(imageUseCase, uploadLimiter, logger)

	r := chi.NewRouter()
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Route("/api", func(api chi.Router) {
		api.Get("/", rootHandler.Index)

		api.Route("/users", func(users chi.Router) {
			users.Get("/", userHandler.ListUsers)
			users.Post("/", userHandler.CreateUser)
			users.Get("/{id}", userHandler.GetUser)
			users.Put("/{id}", userHandler.UpdateUser)
			users.Patch("/{id}", userHandler.UpdateUser)
			users.Delete("/{id}", userHandler.DeleteUser)
		})

		api.Route("/images", func(images chi.Router) {
			images.Get("/", imageHandler.ListImages)
			images.Post("/", imageHandler.UploadImage)
			images.Delete("/{id}", imageHandler.DeleteImage)
		})
	})

	// Загруженные файлы отдаются по детерминированному URL от имени файла
	fileServer := http.FileServer(http.Dir(config.UploadDir))
	r.Handle(config.PublicUploadPath+"/*", http.StripPrefix(config.PublicUploadPath+"/", fileServer))

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Сервер запущен на %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	log.Println("Получен сигнал завершения. Завершаем работу сервера...")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Println("Сервер успешно завершил работу.")
	return nil
}
