package usecase

import (
	"context"

	"github.com/GoArmGo/GalleryApp/internal/domain"
)

// UserPage — страница списка пользователей.
// Total — размер всего хранилища, Count — размер возвращённого среза.
type UserPage struct {
	Users []domain.User
	Total int
	Count int
}

// UserUseCase определяет интерфейс бизнес-логики работы с пользователями.
// Тела create/update приходят как map, потому что PATCH применяет только
// присутствующие в теле поля и "поле отсутствует" отличимо от "поле пустое".
type UserUseCase interface {
	// ListUsers возвращает срез [offset, offset+limit) упорядоченного списка.
	// nil-параметр означает отсутствие ограничения.
	ListUsers(ctx context.Context, limit, offset *int) (*UserPage, error)

	// CreateUser валидирует name и email, проверяет уникальность email
	// и добавляет нового пользователя.
	CreateUser(ctx context.Context, body map[string]any) (*domain.User, error)

	// GetUser возвращает пользователя по ID.
	GetUser(ctx context.Context, id string) (*domain.User, error)

	// UpdateUser применяет присутствующие в теле поля к существующей записи.
	// PUT и PATCH проходят через этот же метод.
	UpdateUser(ctx context.Context, id string, body map[string]any) (*domain.User, error)

	// DeleteUser удаляет пользователя и возвращает удалённую запись.
	DeleteUser(ctx context.Context, id string) (*domain.User, error)
}
