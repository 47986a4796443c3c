package ports

import (
	"context"
	"io"
)

// FileStorage определяет интерфейс для работы с файловым хранилищем
// (локальный диск; при необходимости заменяется на S3-совместимый адаптер).
type FileStorage interface {
	// SaveFile записывает содержимое reader под именем filename,
	// создавая каталог хранилища при его отсутствии.
	SaveFile(ctx context.Context, filename string, reader io.Reader) error

	// DeleteFile удаляет файл по имени.
	// Отсутствие файла ошибкой не считается.
	DeleteFile(ctx context.Context, filename string) error

	// PublicURL возвращает публичный URL, по которому файл отдаётся клиенту.
	PublicURL(filename string) string
}
