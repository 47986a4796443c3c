package memory

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/GalleryApp/internal/domain"
)

// UserStore — in-memory реализация ports.UserStorage поверх Collection.
type UserStore struct {
	users  *Collection[domain.User]
	logger *slog.Logger
}

// NewUserStore создаёт пустое хранилище пользователей.
func NewUserStore(logger *slog.Logger) *UserStore {
	return &UserStore{
		users:  NewCollection(func(u domain.User) string { return u.ID }),
		logger: logger,
	}
}

// ListUsers возвращает всех пользователей в порядке вставки.
func (s *UserStore) ListUsers(_ context.Context) ([]domain.User, error) {
	return s.users.GetAll(), nil
}

// GetUserByID возвращает пользователя по ID; (nil, nil) — если не найден.
func (s *UserStore) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := s.users.GetByID(id)
	if !ok {
		s.logger.Warn("user not found by id", "id", id)
		return nil, nil
	}
	return &user, nil
}

// FindUserByEmail ищет пользователя по точному совпадению email.
func (s *UserStore) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := s.users.Find(func(u domain.User) bool { return u.Email == email })
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// SaveUser добавляет пользователя в хранилище.
func (s *UserStore) SaveUser(_ context.Context, user *domain.User) error {
	s.users.Add(*user)
	s.logger.Info("user saved", "id", user.ID, "email", user.Email)
	return nil
}

// ReplaceUser заменяет запись на месте, сохраняя позицию.
func (s *UserStore) ReplaceUser(_ context.Context, id string, user domain.User) (bool, error) {
	replaced := s.users.Replace(id, user)
	if replaced {
		s.logger.Info("user replaced", "id", id)
	}
	return replaced, nil
}

// DeleteUser удаляет запись и возвращает её; nil — если записи не было.
func (s *UserStore) DeleteUser(_ context.Context, id string) (*domain.User, error) {
	user, ok := s.users.Remove(id)
	if !ok {
		return nil, nil
	}
	s.logger.Info("user deleted", "id", id)
	return &user, nil
}

// CountUsers возвращает текущее количество пользователей.
func (s *UserStore) CountUsers(_ context.Context) (int, error) {
	return s.users.Count(), nil
}

// NextUserID выдаёт следующий уникальный идентификатор пользователя.
func (s *UserStore) NextUserID(_ context.Context) (string, error) {
	return s.users.NextID(), nil
}
