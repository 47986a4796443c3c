package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"math/rand"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	// регистрация декодеров для image.DecodeConfig
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/GoArmGo/GalleryApp/internal/core/ports"
	"github.com/GoArmGo/GalleryApp/internal/domain"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// imageUseCase implements ImageUseCase
type imageUseCase struct {
	imageStorage ports.ImageStorage
	fileStorage  ports.FileStorage
}

// NewImageUseCase создает новый экземпляр ImageUseCase
// принимает реализации портов ImageStorage и FileStorage
func NewImageUseCase(imageStorage ports.ImageStorage, fileStorage ports.FileStorage) ImageUseCase {
	return &imageUseCase{
		imageStorage: imageStorage,
		fileStorage:  fileStorage,
	}
}

// sanitizeFilename заменяет все символы вне [A-Za-z0-9.-] на "_",
// защищая от path traversal в имени файла.
func sanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}

// generateFilename строит устойчивое к коллизиям имя файла:
// <миллисекундный timestamp>-<случайный base36-суффикс><расширение оригинала>.
func generateFilename(sanitizedOriginal string) string {
	ext := filepath.Ext(sanitizedOriginal)
	suffix := strconv.FormatUint(rand.Uint64(), 36)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}

// ListImages возвращает срез списка изображений с пагинацией
func (uc *imageUseCase) ListImages(ctx context.Context, limit, offset *int) (*ImagePage, error) {
	images, err := uc.imageStorage.ListImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении списка изображений: %w", err)
	}

	page := paginate(images, limit, offset)
	return &ImagePage{Images: page, Total: len(images), Count: len(page)}, nil
}

// UploadImage валидирует файл, извлекает размеры, пишет байты на диск
// и только после успешной записи добавляет метаданные в хранилище.
func (uc *imageUseCase) UploadImage(ctx context.Context, input UploadImageInput) (*domain.Image, error) {
	if !slices.Contains(AllowedMimeTypes, input.ContentType) {
		return nil, domain.NewValidationError("file",
			fmt.Sprintf("Invalid file type. Allowed types: %s", strings.Join(AllowedMimeTypes, ", ")))
	}

	if input.Size > MaxFileSize {
		return nil, domain.NewValidationError("file",
			fmt.Sprintf("File size exceeds maximum of %dMB", MaxFileSize/1024/1024))
	}

	filename := generateFilename(sanitizeFilename(input.OriginalFilename))

	// Размеры извлекаем до записи на диск: битый файл не должен
	// оставлять ни файла, ни записи.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(input.Data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			// байты не распознаны ни одним декодером
			return nil, domain.NewValidationError("file", "Invalid image dimensions")
		}
		return nil, &domain.StorageError{
			Message: fmt.Sprintf("failed to decode image: %v", err),
			Err:     err,
		}
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, domain.NewValidationError("file", "Invalid image dimensions")
	}

	if err := uc.fileStorage.SaveFile(ctx, filename, bytes.NewReader(input.Data)); err != nil {
		return nil, &domain.StorageError{
			Message: fmt.Sprintf("failed to store image file: %v", err),
			Err:     err,
		}
	}

	id, err := uc.imageStorage.NextImageID(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при генерации ID изображения: %w", err)
	}

	img := &domain.Image{
		ID:         id,
		Filename:   filename,
		URL:        uc.fileStorage.PublicURL(filename),
		Size:       input.Size,
		Width:      cfg.Width,
		Height:     cfg.Height,
		UploadedAt: time.Now(),
	}

	if err := uc.imageStorage.SaveImage(ctx, img); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при сохранении метаданных изображения: %w", err)
	}

	log.Printf("usecase: Изображение %s успешно загружено (%dx%d, %d байт).", img.ID, img.Width, img.Height, img.Size)
	return img, nil
}

// DeleteImage удаляет файл с диска, затем метаданные.
// Файл мог быть удалён вручную — это не мешает удалению записи.
func (uc *imageUseCase) DeleteImage(ctx context.Context, id string) (*domain.Image, error) {
	img, err := uc.imageStorage.GetImageByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении изображения по ID %s: %w", id, err)
	}
	if img == nil {
		return nil, &domain.NotFoundError{Message: "Image not found"}
	}

	if err := uc.fileStorage.DeleteFile(ctx, img.Filename); err != nil {
		return nil, &domain.StorageError{
			Message: fmt.Sprintf("failed to delete image file: %v", err),
			Err:     err,
		}
	}

	deleted, err := uc.imageStorage.DeleteImage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при удалении метаданных изображения %s: %w", id, err)
	}
	if deleted == nil {
		return nil, &domain.NotFoundError{Message: "Image not found"}
	}

	log.Printf("usecase: Изображение %s успешно удалено.", id)
	return deleted, nil
}
