package memory

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/GalleryApp/internal/domain"
)

// ImageStore — in-memory реализация ports.ImageStorage поверх Collection.
// Хранит только метаданные; сами файлы лежат в файловом хранилище.
type ImageStore struct {
	images *Collection[domain.Image]
	logger *slog.Logger
}

// NewImageStore создаёт пустое хранилище метаданных изображений.
func NewImageStore(logger *slog.Logger) *ImageStore {
	return &ImageStore{
		images: NewCollection(func(img domain.Image) string { return img.ID }),
		logger: logger,
	}
}

// ListImages возвращает все изображения в порядке вставки.
func (s *ImageStore) ListImages(_ context.Context) ([]domain.Image, error) {
	return s.images.GetAll(), nil
}

// GetImageByID возвращает изображение по ID; (nil, nil) — если не найдено.
func (s *ImageStore) GetImageByID(_ context.Context, id string) (*domain.Image, error) {
	image, ok := s.images.GetByID(id)
	if !ok {
		s.logger.Warn("image not found by id", "id", id)
		return nil, nil
	}
	return &image, nil
}

// SaveImage добавляет метаданные изображения в хранилище.
func (s *ImageStore) SaveImage(_ context.Context, image *domain.Image) error {
	s.images.Add(*image)
	s.logger.Info("image saved", "id", image.ID, "filename", image.Filename)
	return nil
}

// DeleteImage удаляет запись и возвращает её; nil — если записи не было.
func (s *ImageStore) DeleteImage(_ context.Context, id string) (*domain.Image, error) {
	image, ok := s.images.Remove(id)
	if !ok {
		return nil, nil
	}
	s.logger.Info("image deleted", "id", id)
	return &image, nil
}

// CountImages возвращает текущее количество изображений.
func (s *ImageStore) CountImages(_ context.Context) (int, error) {
	return s.images.Count(), nil
}

// NextImageID выдаёт следующий уникальный идентификатор изображения.
func (s *ImageStore) NextImageID(_ context.Context) (string, error) {
	return s.images.NextID(), nil
}
