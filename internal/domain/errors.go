package domain

// Типизированные ошибки уровня бизнес-логики.
// Обработчики HTTP транслируют их в коды ответа: 400, 404, 409, 500.

// ValidationError — входные данные не прошли проверку (400).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError создаёт ValidationError с сообщением вида "<field> must be ...".
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError — запись с указанным ID отсутствует в хранилище (404).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError — операция нарушает уникальность (дубликат email) (409).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StorageError — сбой диска или декодирования изображения (500).
// Исходная ошибка сохраняется для errors.Is/As.
type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	return e.Message
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
