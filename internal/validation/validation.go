package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/GoArmGo/GalleryApp/internal/domain"
)

// Пакет validation содержит чистые функции проверки входных данных.
// Каждая функция возвращает нормализованное значение либо *domain.ValidationError
// с сообщением, которое уходит клиенту как есть.

var emailRegex = regexp.MustCompile(`(?i)^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required проверяет, что значение присутствует (не nil).
func Required(value any, fieldName string) (any, error) {
	if value == nil {
		return nil, domain.NewValidationError(fieldName, fmt.Sprintf("%s is required", fieldName))
	}
	return value, nil
}

// NonEmptyString проверяет, что значение — строка с непустым содержимым,
// и возвращает её обрезанную форму.
func NonEmptyString(value any, fieldName string) (string, error) {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", domain.NewValidationError(fieldName, fmt.Sprintf("%s must be a non-empty string", fieldName))
	}
	return strings.TrimSpace(s), nil
}

// Email проверяет строку на форму local@domain.tld (регистронезависимо).
func Email(value any, fieldName string) (string, error) {
	email, err := NonEmptyString(value, fieldName)
	if err != nil {
		return "", err
	}
	if !emailRegex.MatchString(email) {
		return "", domain.NewValidationError(fieldName, fmt.Sprintf("%s must be a valid email address", fieldName))
	}
	return email, nil
}

// Number проверяет, что значение — конечное число.
func Number(value any, fieldName string) (float64, error) {
	n, ok := value.(float64)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, domain.NewValidationError(fieldName, fmt.Sprintf("%s must be a number", fieldName))
	}
	return n, nil
}

// NumberInRange проверяет, что число лежит в диапазоне [min, max] включительно.
func NumberInRange(value any, min, max float64, fieldName string) (float64, error) {
	n, err := Number(value, fieldName)
	if err != nil {
		return 0, err
	}
	if n < min || n > max {
		return 0, domain.NewValidationError(fieldName,
			fmt.Sprintf("%s must be between %v and %v", fieldName, min, max))
	}
	return n, nil
}

// UUID проверяет строку на каноническую форму UUID (8-4-4-4-12, hex).
func UUID(value any, fieldName string) (string, error) {
	s, err := NonEmptyString(value, fieldName)
	if err != nil {
		return "", err
	}
	// uuid.Parse принимает и неканонические формы (urn:, фигурные скобки),
	// поэтому дополнительно требуем длину 36.
	if len(s) != 36 {
		return "", domain.NewValidationError(fieldName, fmt.Sprintf("%s must be a valid UUID", fieldName))
	}
	if _, parseErr := uuid.Parse(s); parseErr != nil {
		return "", domain.NewValidationError(fieldName, fmt.Sprintf("%s must be a valid UUID", fieldName))
	}
	return s, nil
}

// RequiredFields проверяет, что в теле запроса присутствуют все обязательные поля.
// Возвращает ошибку по первому отсутствующему или nil-полю.
func RequiredFields(body map[string]any, requiredFields []string) (map[string]any, error) {
	if body == nil {
		return nil, domain.NewValidationError("body", "request body must be an object")
	}
	for _, field := range requiredFields {
		value, present := body[field]
		if !present || value == nil {
			return nil, domain.NewValidationError(field, fmt.Sprintf("%s is required", field))
		}
	}
	return body, nil
}
