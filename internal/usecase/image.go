package usecase

import (
	"context"

	"github.com/GoArmGo/GalleryApp/internal/domain"
)

// Фиксированные ограничения загрузки (не конфигурируются в рантайме).
const (
	// MaxFileSize — потолок размера загружаемого файла, 5 MiB.
	MaxFileSize = 5 * 1024 * 1024
)

// AllowedMimeTypes — допустимые MIME-типы загружаемых изображений.
var AllowedMimeTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
}

// ImagePage — страница списка изображений.
type ImagePage struct {
	Images []domain.Image
	Total  int
	Count  int
}

// UploadImageInput — входные данные загрузки: содержимое файла и то,
// что о нём заявил клиент в multipart-части.
type UploadImageInput struct {
	OriginalFilename string
	ContentType      string
	Size             int64
	Data             []byte
}

// ImageUseCase определяет интерфейс бизнес-логики работы с изображениями.
type ImageUseCase interface {
	// ListImages возвращает срез [offset, offset+limit) упорядоченного списка.
	ListImages(ctx context.Context, limit, offset *int) (*ImagePage, error)

	// UploadImage валидирует файл, пишет его на диск и добавляет метаданные.
	// Запись метаданных появляется только после успешной записи файла.
	UploadImage(ctx context.Context, input UploadImageInput) (*domain.Image, error)

	// DeleteImage удаляет файл с диска (отсутствие файла не ошибка),
	// затем удаляет метаданные и возвращает удалённую запись.
	DeleteImage(ctx context.Context, id string) (*domain.Image, error)
}
