package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/GoArmGo/GalleryApp/internal/core/ports"
	"github.com/GoArmGo/GalleryApp/internal/domain"
	"github.com/GoArmGo/GalleryApp/internal/validation"
)

// userUseCase implements UserUseCase
type userUseCase struct {
	userStorage ports.UserStorage
}

// NewUserUseCase создает новый экземпляр UserUseCase
// принимает реализацию порта UserStorage
func NewUserUseCase(userStorage ports.UserStorage) UserUseCase {
	return &userUseCase{userStorage: userStorage}
}

// ListUsers возвращает срез списка пользователей с пагинацией
func (uc *userUseCase) ListUsers(ctx context.Context, limit, offset *int) (*UserPage, error) {
	users, err := uc.userStorage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении списка пользователей: %w", err)
	}

	page := paginate(users, limit, offset)
	return &UserPage{Users: page, Total: len(users), Count: len(page)}, nil
}

// CreateUser валидирует тело запроса, проверяет уникальность email
// и добавляет нового пользователя в хранилище.
// Запись попадает в хранилище только после полной валидации.
func (uc *userUseCase) CreateUser(ctx context.Context, body map[string]any) (*domain.User, error) {
	validated, err := validation.RequiredFields(body, []string{"name", "email"})
	if err != nil {
		return nil, err
	}

	name, err := validation.NonEmptyString(validated["name"], "name")
	if err != nil {
		return nil, err
	}
	email, err := validation.Email(validated["email"], "email")
	if err != nil {
		return nil, err
	}

	// Проверяем уникальность email среди текущих пользователей
	existing, err := uc.userStorage.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при проверке уникальности email: %w", err)
	}
	if existing != nil {
		return nil, &domain.ConflictError{Message: "User with this email already exists"}
	}

	id, err := uc.userStorage.NextUserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при генерации ID пользователя: %w", err)
	}

	user := &domain.User{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}

	if err := uc.userStorage.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при сохранении пользователя: %w", err)
	}

	log.Printf("usecase: Пользователь %s успешно создан (email: %s).", user.ID, user.Email)
	return user, nil
}

// GetUser возвращает пользователя по ID
func (uc *userUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.userStorage.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении пользователя по ID %s: %w", id, err)
	}
	if user == nil {
		return nil, &domain.NotFoundError{Message: "User not found"}
	}
	return user, nil
}

// UpdateUser применяет присутствующие в теле поля к существующей записи.
// Отсутствующие поля не трогаются, CreatedAt неизменяем.
func (uc *userUseCase) UpdateUser(ctx context.Context, id string, body map[string]any) (*domain.User, error) {
	existing, err := uc.userStorage.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении пользователя по ID %s: %w", id, err)
	}
	if existing == nil {
		return nil, &domain.NotFoundError{Message: "User not found"}
	}

	updated := *existing

	if rawName, present := body["name"]; present {
		name, err := validation.NonEmptyString(rawName, "name")
		if err != nil {
			return nil, err
		}
		updated.Name = name
	}

	if rawEmail, present := body["email"]; present {
		email, err := validation.Email(rawEmail, "email")
		if err != nil {
			return nil, err
		}
		// email не должен принадлежать другому пользователю
		holder, err := uc.userStorage.FindUserByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("usecase: ошибка при проверке уникальности email: %w", err)
		}
		if holder != nil && holder.ID != id {
			return nil, &domain.ConflictError{Message: "Email is already taken by another user"}
		}
		updated.Email = email
	}

	if _, err := uc.userStorage.ReplaceUser(ctx, id, updated); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при обновлении пользователя %s: %w", id, err)
	}

	log.Printf("usecase: Пользователь %s успешно обновлён.", id)
	return &updated, nil
}

// DeleteUser удаляет пользователя и возвращает удалённую запись
func (uc *userUseCase) DeleteUser(ctx context.Context, id string) (*domain.User, error) {
	deleted, err := uc.userStorage.DeleteUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при удалении пользователя %s: %w", id, err)
	}
	if deleted == nil {
		return nil, &domain.NotFoundError{Message: "User not found"}
	}

	log.Printf("usecase: Пользователь %s успешно удалён.", id)
	return deleted, nil
}
