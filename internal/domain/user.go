package domain

import (
	"time"
)

// User представляет модель пользователя в системе.
// Идентификатор выдаётся хранилищем, CreatedAt устанавливается один раз при создании.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
