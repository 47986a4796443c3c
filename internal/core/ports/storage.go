package ports

import (
	"context"

	"github.com/GoArmGo/GalleryApp/internal/domain"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей.
// Методы с поиском по ID возвращают (nil, nil), если запись не найдена.
type UserStorage interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)

	// FindUserByEmail ищет пользователя по точному совпадению email
	// (используется для проверки уникальности при create/update).
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	SaveUser(ctx context.Context, user *domain.User) error

	// ReplaceUser заменяет запись с данным ID на месте, сохраняя её позицию.
	// Возвращает false, если записи нет.
	ReplaceUser(ctx context.Context, id string, user domain.User) (bool, error)

	// DeleteUser удаляет запись и возвращает её; nil — если записи не было.
	DeleteUser(ctx context.Context, id string) (*domain.User, error)

	CountUsers(ctx context.Context) (int, error)

	// NextUserID выдаёт следующий уникальный идентификатор.
	NextUserID(ctx context.Context) (string, error)
}

// ImageStorage определяет методы для взаимодействия с хранилищем метаданных изображений.
type ImageStorage interface {
	ListImages(ctx context.Context) ([]domain.Image, error)
	GetImageByID(ctx context.Context, id string) (*domain.Image, error)
	SaveImage(ctx context.Context, image *domain.Image) error
	DeleteImage(ctx context.Context, id string) (*domain.Image, error)
	CountImages(ctx context.Context) (int, error)
	NextImageID(ctx context.Context) (string, error)
}
