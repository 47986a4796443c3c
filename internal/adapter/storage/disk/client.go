// internal/adapter/storage/disk/client.go
package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Client представляет собой адаптер файлового хранилища на локальном диске.
// Файлы пишутся в baseDir, публичные URL строятся от publicPath.
type Client struct {
	baseDir    string
	publicPath string
	logger     *slog.Logger
}

// NewClient создаёт дисковый клиент.
// baseDir — каталог на диске (например, public/uploads/images),
// publicPath — URL-префикс, под которым файлы отдаются клиенту.
func NewClient(baseDir, publicPath string, logger *slog.Logger) *Client {
	return &Client{
		baseDir:    baseDir,
		publicPath: publicPath,
		logger:     logger,
	}
}

// BaseDir возвращает каталог, в который пишутся файлы.
func (c *Client) BaseDir() string {
	return c.baseDir
}

// SaveFile записывает содержимое reader в файл filename,
// создавая каталог хранилища при его отсутствии.
func (c *Client) SaveFile(_ context.Context, filename string, reader io.Reader) error {
	if err := os.MkdirAll(c.baseDir, 0o755); err != nil {
		return fmt.Errorf("ошибка создания каталога загрузок %s: %w", c.baseDir, err)
	}

	path := filepath.Join(c.baseDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка создания файла %s: %w", path, err)
	}

	if _, err := io.Copy(f, reader); err != nil {
		f.Close()
		// недописанный файл не оставляем
		os.Remove(path)
		return fmt.Errorf("ошибка записи файла %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия файла %s: %w", path, err)
	}

	c.logger.Info("file written to disk", "path", path)
	return nil
}

// DeleteFile удаляет файл по имени.
// Отсутствие файла ошибкой не считается: запись могла быть удалена вручную.
func (c *Client) DeleteFile(_ context.Context, filename string) error {
	path := filepath.Join(c.baseDir, filename)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.logger.Warn("file already absent on delete", "path", path)
			return nil
		}
		return fmt.Errorf("ошибка удаления файла %s: %w", path, err)
	}

	c.logger.Info("file removed from disk", "path", path)
	return nil
}

// PublicURL возвращает публичный URL файла, детерминированно от его имени.
func (c *Client) PublicURL(filename string) string {
	return c.publicPath + "/" + filename
}
